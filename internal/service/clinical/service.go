// Package clinical covers the doctor-authored records: notes, treatment
// plans and prescriptions. All three are append-only and stamped with the
// authenticated author, never a client-supplied name.
package clinical

import (
	"context"

	"github.com/medorahq/clinic-api/internal/model"
	"github.com/medorahq/clinic-api/internal/repository"
	"github.com/medorahq/clinic-api/internal/repository/sqlstore"
	apperrors "github.com/medorahq/clinic-api/pkg/errors"
)

type Service struct {
	noteRepo         repository.NoteRepository
	planRepo         repository.TreatmentPlanRepository
	prescriptionRepo repository.PrescriptionRepository
}

func NewService(
	noteRepo repository.NoteRepository,
	planRepo repository.TreatmentPlanRepository,
	prescriptionRepo repository.PrescriptionRepository,
) *Service {
	return &Service{
		noteRepo:         noteRepo,
		planRepo:         planRepo,
		prescriptionRepo: prescriptionRepo,
	}
}

func (s *Service) CreateNote(ctx context.Context, req *model.CreateNoteRequest, author string) (*model.Note, error) {
	note := &model.Note{
		PatientID: req.PatientID,
		Note:      req.Note,
		CreatedBy: author,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, mapCreateError(err)
	}
	return note, nil
}

func (s *Service) ListNotes(ctx context.Context) ([]*model.Note, error) {
	notes, err := s.noteRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return notes, nil
}

func (s *Service) CreateTreatmentPlan(ctx context.Context, req *model.CreateTreatmentPlanRequest, author string) (*model.TreatmentPlan, error) {
	status := req.Status
	if status == "" {
		status = model.TreatmentPlanStatusProposed
	}

	plan := &model.TreatmentPlan{
		PatientID:     req.PatientID,
		Diagnosis:     req.Diagnosis,
		Plan:          req.Plan,
		EstimatedCost: req.EstimatedCost,
		Status:        status,
		CreatedBy:     author,
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, mapCreateError(err)
	}
	return plan, nil
}

func (s *Service) ListTreatmentPlans(ctx context.Context) ([]*model.TreatmentPlan, error) {
	plans, err := s.planRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return plans, nil
}

func (s *Service) CreatePrescription(ctx context.Context, req *model.CreatePrescriptionRequest, author string) (*model.Prescription, error) {
	prescription := &model.Prescription{
		PatientID:    req.PatientID,
		Medication:   req.Medication,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		Duration:     req.Duration,
		Instructions: req.Instructions,
		PrescribedBy: author,
	}
	if err := s.prescriptionRepo.Create(ctx, prescription); err != nil {
		return nil, mapCreateError(err)
	}
	return prescription, nil
}

func (s *Service) ListPrescriptions(ctx context.Context) ([]*model.Prescription, error) {
	prescriptions, err := s.prescriptionRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return prescriptions, nil
}

func mapCreateError(err error) error {
	if sqlstore.IsForeignKeyViolation(err) {
		return apperrors.Validation("patient_id does not reference an existing patient", err)
	}
	return apperrors.Internal(err)
}
