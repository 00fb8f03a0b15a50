package appointment

import (
	"context"

	"github.com/medorahq/clinic-api/internal/model"
	"github.com/medorahq/clinic-api/internal/repository"
	"github.com/medorahq/clinic-api/internal/repository/sqlstore"
	apperrors "github.com/medorahq/clinic-api/pkg/errors"
)

type Service struct {
	appointmentRepo repository.AppointmentRepository
}

func NewService(appointmentRepo repository.AppointmentRepository) *Service {
	return &Service{appointmentRepo: appointmentRepo}
}

func (s *Service) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	appointment := &model.Appointment{
		PatientID: req.PatientID,
		Datetime:  req.Datetime,
		Reason:    req.Reason,
		Status:    model.AppointmentStatusScheduled,
	}
	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		if sqlstore.IsForeignKeyViolation(err) {
			return nil, apperrors.Validation("patient_id does not reference an existing patient", err)
		}
		return nil, apperrors.Internal(err)
	}
	return appointment, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Appointment, error) {
	appointments, err := s.appointmentRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return appointments, nil
}
