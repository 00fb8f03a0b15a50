package patient

import (
	"context"

	"github.com/medorahq/clinic-api/internal/model"
	"github.com/medorahq/clinic-api/internal/repository"
	apperrors "github.com/medorahq/clinic-api/pkg/errors"
)

type Service struct {
	patientRepo repository.PatientRepository
}

func NewService(patientRepo repository.PatientRepository) *Service {
	return &Service{patientRepo: patientRepo}
}

func (s *Service) Create(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	patient := &model.Patient{
		Name:  req.Name,
		Phone: req.Phone,
		DOB:   req.DOB,
	}
	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, apperrors.Internal(err)
	}
	return patient, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.patientRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return patients, nil
}
