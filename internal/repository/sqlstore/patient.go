package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/medorahq/clinic-api/internal/model"
	"github.com/medorahq/clinic-api/internal/repository"
)

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := r.db.Rebind(`
		INSERT INTO patients (name, phone, dob, created_at)
		VALUES (?, ?, ?, ?) RETURNING id
	`)
	patient.CreatedAt = time.Now().UTC()

	err := r.db.QueryRowContext(ctx, query,
		patient.Name, patient.Phone, patient.DOB, patient.CreatedAt,
	).Scan(&patient.ID)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `SELECT id, name, phone, dob, created_at FROM patients ORDER BY id DESC`

	patients := []*model.Patient{}
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}
