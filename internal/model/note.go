package model

import "time"

// Note is an append-only clinical note authored by the requesting user.
type Note struct {
	ID          int64     `json:"id" db:"id"`
	PatientID   int64     `json:"patient_id" db:"patient_id"`
	PatientName string    `json:"patient_name" db:"patient_name"`
	Note        string    `json:"note" db:"note"`
	CreatedBy   string    `json:"created_by" db:"created_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type CreateNoteRequest struct {
	PatientID int64  `json:"patient_id" binding:"required"`
	Note      string `json:"note" binding:"required"`
}
