package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/medorahq/clinic-api/internal/model"
	"github.com/medorahq/clinic-api/internal/repository"
)

type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := r.db.Rebind(`
		INSERT INTO appointments (patient_id, datetime, reason, status, created_at)
		VALUES (?, ?, ?, ?, ?) RETURNING id
	`)
	appointment.CreatedAt = time.Now().UTC()

	err := r.db.QueryRowContext(ctx, query,
		appointment.PatientID, appointment.Datetime, appointment.Reason,
		appointment.Status, appointment.CreatedAt,
	).Scan(&appointment.ID)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	query := `
		SELECT a.id, a.patient_id, p.name AS patient_name, a.datetime, a.reason, a.status, a.created_at
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		ORDER BY a.datetime DESC
	`

	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
