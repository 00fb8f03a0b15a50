package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/medorahq/clinic-api/internal/model"
	"github.com/medorahq/clinic-api/internal/repository"
)

type prescriptionRepository struct {
	db *sqlx.DB
}

func NewPrescriptionRepository(db *sqlx.DB) repository.PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (r *prescriptionRepository) Create(ctx context.Context, prescription *model.Prescription) error {
	query := r.db.Rebind(`
		INSERT INTO prescriptions (patient_id, medication, dosage, frequency, duration, instructions, prescribed_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id
	`)
	prescription.CreatedAt = time.Now().UTC()

	err := r.db.QueryRowContext(ctx, query,
		prescription.PatientID, prescription.Medication, prescription.Dosage,
		prescription.Frequency, prescription.Duration, prescription.Instructions,
		prescription.PrescribedBy, prescription.CreatedAt,
	).Scan(&prescription.ID)
	if err != nil {
		return fmt.Errorf("failed to create prescription: %w", err)
	}
	return nil
}

func (r *prescriptionRepository) List(ctx context.Context) ([]*model.Prescription, error) {
	query := `
		SELECT r.id, r.patient_id, p.name AS patient_name, r.medication, r.dosage,
		       r.frequency, r.duration, r.instructions, r.prescribed_by, r.created_at
		FROM prescriptions r
		JOIN patients p ON p.id = r.patient_id
		ORDER BY r.id DESC
	`

	prescriptions := []*model.Prescription{}
	if err := r.db.SelectContext(ctx, &prescriptions, query); err != nil {
		return nil, fmt.Errorf("failed to list prescriptions: %w", err)
	}
	return prescriptions, nil
}
