package model

import "time"

// Patient is the root clinical entity; every other record references one.
type Patient struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Phone     string    `json:"phone" db:"phone"`
	DOB       string    `json:"dob" db:"dob"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreatePatientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	DOB   string `json:"dob"`
}
