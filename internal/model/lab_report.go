package model

import (
	"time"

	"github.com/google/uuid"
)

type LabReport struct {
	Base
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	DoctorID  uuid.UUID `db:"doctor_id" json:"doctor_id"`
	TestName  string    `db:"test_name" json:"test_name"`
	TestType  string    `db:"test_type" json:"test_type"`
	TestDate  time.Time `db:"test_date" json:"test_date"`
	Results   JSONMap   `db:"results" json:"results"`
	Status    string    `db:"status" json:"status"`
	Notes     string    `db:"notes" json:"notes"`
}
