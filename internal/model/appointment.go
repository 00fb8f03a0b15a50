package model

import "time"

const AppointmentStatusScheduled = "scheduled"

type Appointment struct {
	ID          int64     `json:"id" db:"id"`
	PatientID   int64     `json:"patient_id" db:"patient_id"`
	PatientName string    `json:"patient_name" db:"patient_name"`
	Datetime    time.Time `json:"datetime" db:"datetime"`
	Reason      string    `json:"reason" db:"reason"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Status is not part of the request: every appointment starts scheduled.
type CreateAppointmentRequest struct {
	PatientID int64     `json:"patient_id" binding:"required"`
	Datetime  time.Time `json:"datetime" binding:"required"`
	Reason    string    `json:"reason"`
}
