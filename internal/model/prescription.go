package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type PrescriptionStatus string

const (
	PrescriptionStatusActive       PrescriptionStatus = "active"
	PrescriptionStatusCompleted    PrescriptionStatus = "completed"
	PrescriptionStatusDiscontinued PrescriptionStatus = "discontinued"
)

type MedicationEntry struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
}

type Medications []MedicationEntry

func (m Medications) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *Medications) Scan(src interface{}) error {
	return scanJSON(src, m)
}

type Prescription struct {
	Base
	PatientID    uuid.UUID          `db:"patient_id" json:"patient_id"`
	DoctorID     uuid.UUID          `db:"doctor_id" json:"doctor_id"`
	DoctorName   string             `db:"doctor_name" json:"doctor_name"`
	PrescribedAt time.Time          `db:"prescribed_date" json:"prescribed_date"`
	Medications  Medications        `db:"medications" json:"medications"`
	Status       PrescriptionStatus `db:"status" json:"status"`
	Notes        string             `db:"notes" json:"notes"`
}
