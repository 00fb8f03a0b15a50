package model

import "time"

// Invoice statuses
const (
	InvoiceStatusUnpaid  = "unpaid"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusPartial = "partial"
)

type Invoice struct {
	ID          int64     `json:"id" db:"id"`
	PatientID   int64     `json:"patient_id" db:"patient_id"`
	PatientName string    `json:"patient_name" db:"patient_name"`
	Amount      float64   `json:"amount" db:"amount"`
	Status      string    `json:"status" db:"status"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// InvoiceDetail joins in the patient identity fields needed by the PDF
// renderer.
type InvoiceDetail struct {
	Invoice
	PatientPhone string `json:"phone" db:"phone"`
	PatientDOB   string `json:"dob" db:"dob"`
}

// Amount is a pointer so a missing field fails binding while an explicit
// zero invoice stays valid.
type CreateInvoiceRequest struct {
	PatientID   int64    `json:"patient_id" binding:"required"`
	Amount      *float64 `json:"amount" binding:"required,gte=0"`
	Status      string   `json:"status" binding:"omitempty,oneof=unpaid paid partial"`
	Description string   `json:"description"`
}
