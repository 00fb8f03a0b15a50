package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/medorahq/clinic-api/internal/model"
	"github.com/medorahq/clinic-api/internal/repository"
)

type invoiceRepository struct {
	db *sqlx.DB
}

func NewInvoiceRepository(db *sqlx.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *model.Invoice) error {
	query := r.db.Rebind(`
		INSERT INTO invoices (patient_id, amount, status, description, created_at)
		VALUES (?, ?, ?, ?, ?) RETURNING id
	`)
	invoice.CreatedAt = time.Now().UTC()

	err := r.db.QueryRowContext(ctx, query,
		invoice.PatientID, invoice.Amount, invoice.Status,
		invoice.Description, invoice.CreatedAt,
	).Scan(&invoice.ID)
	if err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

func (r *invoiceRepository) List(ctx context.Context) ([]*model.Invoice, error) {
	query := `
		SELECT i.id, i.patient_id, p.name AS patient_name, i.amount, i.status, i.description, i.created_at
		FROM invoices i
		JOIN patients p ON p.id = i.patient_id
		ORDER BY i.id DESC
	`

	invoices := []*model.Invoice{}
	if err := r.db.SelectContext(ctx, &invoices, query); err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepository) GetDetail(ctx context.Context, id int64) (*model.InvoiceDetail, error) {
	query := r.db.Rebind(`
		SELECT i.id, i.patient_id, p.name AS patient_name, p.phone, p.dob,
		       i.amount, i.status, i.description, i.created_at
		FROM invoices i
		JOIN patients p ON p.id = i.patient_id
		WHERE i.id = ?
	`)

	var detail model.InvoiceDetail
	err := r.db.GetContext(ctx, &detail, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return &detail, nil
}
