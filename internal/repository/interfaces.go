package repository

import (
	"context"

	"github.com/medorahq/clinic-api/internal/model"
)

// Repositories expose create/list only: records are never updated or
// deleted once written.

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Count(ctx context.Context) (int, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	List(ctx context.Context) ([]*model.Patient, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	List(ctx context.Context) ([]*model.Appointment, error)
}

type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) error
	List(ctx context.Context) ([]*model.Note, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	List(ctx context.Context) ([]*model.Invoice, error)
	GetDetail(ctx context.Context, id int64) (*model.InvoiceDetail, error)
}

type TreatmentPlanRepository interface {
	Create(ctx context.Context, plan *model.TreatmentPlan) error
	List(ctx context.Context) ([]*model.TreatmentPlan, error)
}

type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *model.Prescription) error
	List(ctx context.Context) ([]*model.Prescription, error)
}
