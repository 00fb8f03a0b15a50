package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/medorahq/clinic-api/internal/model"
	"github.com/medorahq/clinic-api/internal/repository"
)

type treatmentPlanRepository struct {
	db *sqlx.DB
}

func NewTreatmentPlanRepository(db *sqlx.DB) repository.TreatmentPlanRepository {
	return &treatmentPlanRepository{db: db}
}

func (r *treatmentPlanRepository) Create(ctx context.Context, plan *model.TreatmentPlan) error {
	query := r.db.Rebind(`
		INSERT INTO treatment_plans (patient_id, diagnosis, plan, estimated_cost, status, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id
	`)
	plan.CreatedAt = time.Now().UTC()

	err := r.db.QueryRowContext(ctx, query,
		plan.PatientID, plan.Diagnosis, plan.Plan, plan.EstimatedCost,
		plan.Status, plan.CreatedBy, plan.CreatedAt,
	).Scan(&plan.ID)
	if err != nil {
		return fmt.Errorf("failed to create treatment plan: %w", err)
	}
	return nil
}

func (r *treatmentPlanRepository) List(ctx context.Context) ([]*model.TreatmentPlan, error) {
	query := `
		SELECT t.id, t.patient_id, p.name AS patient_name, t.diagnosis, t.plan,
		       t.estimated_cost, t.status, t.created_by, t.created_at
		FROM treatment_plans t
		JOIN patients p ON p.id = t.patient_id
		ORDER BY t.id DESC
	`

	plans := []*model.TreatmentPlan{}
	if err := r.db.SelectContext(ctx, &plans, query); err != nil {
		return nil, fmt.Errorf("failed to list treatment plans: %w", err)
	}
	return plans, nil
}
