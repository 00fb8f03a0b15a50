package billing

import (
	"context"
	"errors"

	"github.com/medorahq/clinic-api/internal/model"
	"github.com/medorahq/clinic-api/internal/repository"
	"github.com/medorahq/clinic-api/internal/repository/sqlstore"
	apperrors "github.com/medorahq/clinic-api/pkg/errors"
)

type Service struct {
	invoiceRepo repository.InvoiceRepository
}

func NewService(invoiceRepo repository.InvoiceRepository) *Service {
	return &Service{invoiceRepo: invoiceRepo}
}

func (s *Service) Create(ctx context.Context, req *model.CreateInvoiceRequest) (*model.Invoice, error) {
	status := req.Status
	if status == "" {
		status = model.InvoiceStatusUnpaid
	}

	invoice := &model.Invoice{
		PatientID:   req.PatientID,
		Amount:      *req.Amount,
		Status:      status,
		Description: req.Description,
	}
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		if sqlstore.IsForeignKeyViolation(err) {
			return nil, apperrors.Validation("patient_id does not reference an existing patient", err)
		}
		return nil, apperrors.Internal(err)
	}
	return invoice, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Invoice, error) {
	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return invoices, nil
}

// GetDetail resolves an invoice joined with its patient for rendering.
func (s *Service) GetDetail(ctx context.Context, id int64) (*model.InvoiceDetail, error) {
	detail, err := s.invoiceRepo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, sqlstore.ErrNotFound) {
			return nil, apperrors.NotFound("invoice")
		}
		return nil, apperrors.Internal(err)
	}
	return detail, nil
}
