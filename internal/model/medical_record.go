package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type VitalSigns struct {
	BloodPressure    string `json:"blood_pressure,omitempty"`
	HeartRate        string `json:"heart_rate,omitempty"`
	Temperature      string `json:"temperature,omitempty"`
	OxygenSaturation string `json:"oxygen_saturation,omitempty"`
}

func (v VitalSigns) Value() (driver.Value, error) {
	return json.Marshal(v)
}

func (v *VitalSigns) Scan(src interface{}) error {
	return scanJSON(src, v)
}

// MedicalRecord is append-only: created once per visit, never updated.
type MedicalRecord struct {
	Base
	PatientID   uuid.UUID  `db:"patient_id" json:"patient_id"`
	PatientName string     `db:"patient_name" json:"patient_name"`
	DoctorID    uuid.UUID  `db:"doctor_id" json:"doctor_id"`
	DoctorName  string     `db:"doctor_name" json:"doctor_name"`
	VisitDate   time.Time  `db:"visit_date" json:"visit_date"`
	Diagnosis   string     `db:"diagnosis" json:"diagnosis"`
	Symptoms    StringList `db:"symptoms" json:"symptoms"`
	Treatment   string     `db:"treatment" json:"treatment"`
	VitalSigns  VitalSigns `db:"vital_signs" json:"vital_signs"`
	Notes       string     `db:"notes" json:"notes"`
}
