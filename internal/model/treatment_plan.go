package model

import "time"

const TreatmentPlanStatusProposed = "proposed"

type TreatmentPlan struct {
	ID            int64     `json:"id" db:"id"`
	PatientID     int64     `json:"patient_id" db:"patient_id"`
	PatientName   string    `json:"patient_name" db:"patient_name"`
	Diagnosis     string    `json:"diagnosis" db:"diagnosis"`
	Plan          string    `json:"plan" db:"plan"`
	EstimatedCost float64   `json:"estimated_cost" db:"estimated_cost"`
	Status        string    `json:"status" db:"status"`
	CreatedBy     string    `json:"created_by" db:"created_by"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

type CreateTreatmentPlanRequest struct {
	PatientID     int64   `json:"patient_id" binding:"required"`
	Diagnosis     string  `json:"diagnosis" binding:"required"`
	Plan          string  `json:"plan" binding:"required"`
	EstimatedCost float64 `json:"estimated_cost" binding:"gte=0"`
	Status        string  `json:"status"`
}
