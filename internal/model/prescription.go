package model

import "time"

type Prescription struct {
	ID           int64     `json:"id" db:"id"`
	PatientID    int64     `json:"patient_id" db:"patient_id"`
	PatientName  string    `json:"patient_name" db:"patient_name"`
	Medication   string    `json:"medication" db:"medication"`
	Dosage       string    `json:"dosage" db:"dosage"`
	Frequency    string    `json:"frequency" db:"frequency"`
	Duration     string    `json:"duration" db:"duration"`
	Instructions string    `json:"instructions" db:"instructions"`
	PrescribedBy string    `json:"prescribed_by" db:"prescribed_by"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type CreatePrescriptionRequest struct {
	PatientID    int64  `json:"patient_id" binding:"required"`
	Medication   string `json:"medication" binding:"required"`
	Dosage       string `json:"dosage" binding:"required"`
	Frequency    string `json:"frequency" binding:"required"`
	Duration     string `json:"duration" binding:"required"`
	Instructions string `json:"instructions"`
}
