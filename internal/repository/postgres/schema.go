package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Migrate creates the tables and indexes. The partial unique index on
// active slots is what makes concurrent check-then-insert safe across
// processes: at most one scheduled/confirmed appointment may occupy a
// (doctor, instant) pair.
func Migrate(db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS patients (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			age INT NOT NULL,
			gender TEXT NOT NULL,
			contact TEXT NOT NULL,
			email TEXT,
			address TEXT,
			blood_group TEXT,
			emergency_contact TEXT,
			allergies TEXT,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_patients_contact ON patients (contact)`,
		`CREATE INDEX IF NOT EXISTS idx_patients_email ON patients (email)`,

		`CREATE TABLE IF NOT EXISTS doctors (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			specialization TEXT NOT NULL,
			department TEXT NOT NULL,
			qualification TEXT NOT NULL,
			contact TEXT NOT NULL,
			email TEXT NOT NULL,
			experience_years INT NOT NULL,
			consultation_fee INT,
			available_days JSONB,
			available_hours TEXT,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_doctors_specialization ON doctors (specialization)`,
		`CREATE INDEX IF NOT EXISTS idx_doctors_department ON doctors (department)`,
		`CREATE INDEX IF NOT EXISTS idx_doctors_name ON doctors (name)`,

		`CREATE TABLE IF NOT EXISTS appointments (
			id UUID PRIMARY KEY,
			patient_id UUID NOT NULL REFERENCES patients (id),
			doctor_id UUID NOT NULL REFERENCES doctors (id),
			patient_name TEXT NOT NULL,
			doctor_name TEXT NOT NULL,
			appointment_datetime TIMESTAMPTZ NOT NULL,
			reason TEXT NOT NULL,
			symptoms TEXT,
			status TEXT NOT NULL,
			cancelled_at TIMESTAMPTZ,
			cancellation_reason TEXT,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_patient ON appointments (patient_id)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_doctor ON appointments (doctor_id)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_datetime ON appointments (appointment_datetime)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_status ON appointments (status)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_appointments_active_slot
			ON appointments (doctor_id, appointment_datetime)
			WHERE status IN ('scheduled', 'confirmed')`,

		`CREATE TABLE IF NOT EXISTS medical_records (
			id UUID PRIMARY KEY,
			patient_id UUID NOT NULL REFERENCES patients (id),
			patient_name TEXT NOT NULL,
			doctor_id UUID NOT NULL REFERENCES doctors (id),
			doctor_name TEXT NOT NULL,
			visit_date TIMESTAMPTZ NOT NULL,
			diagnosis TEXT NOT NULL,
			symptoms JSONB,
			treatment TEXT NOT NULL,
			vital_signs JSONB,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_medical_records_patient ON medical_records (patient_id)`,
		`CREATE INDEX IF NOT EXISTS idx_medical_records_doctor ON medical_records (doctor_id)`,
		`CREATE INDEX IF NOT EXISTS idx_medical_records_visit_date ON medical_records (visit_date)`,

		`CREATE TABLE IF NOT EXISTS prescriptions (
			id UUID PRIMARY KEY,
			patient_id UUID NOT NULL REFERENCES patients (id),
			doctor_id UUID NOT NULL REFERENCES doctors (id),
			doctor_name TEXT NOT NULL,
			prescribed_date TIMESTAMPTZ NOT NULL,
			medications JSONB NOT NULL,
			status TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_prescriptions_patient ON prescriptions (patient_id)`,
		`CREATE INDEX IF NOT EXISTS idx_prescriptions_status ON prescriptions (status)`,
		`CREATE INDEX IF NOT EXISTS idx_prescriptions_date ON prescriptions (prescribed_date)`,

		`CREATE TABLE IF NOT EXISTS lab_reports (
			id UUID PRIMARY KEY,
			patient_id UUID NOT NULL REFERENCES patients (id),
			doctor_id UUID NOT NULL REFERENCES doctors (id),
			test_name TEXT NOT NULL,
			test_type TEXT NOT NULL,
			test_date TIMESTAMPTZ NOT NULL,
			results JSONB,
			status TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lab_reports_patient ON lab_reports (patient_id)`,
		`CREATE INDEX IF NOT EXISTS idx_lab_reports_test_date ON lab_reports (test_date)`,

		`CREATE TABLE IF NOT EXISTS outbox_events (
			id UUID PRIMARY KEY,
			event_type TEXT NOT NULL,
			payload JSONB NOT NULL,
			status TEXT NOT NULL,
			error_message TEXT,
			retry_count INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL,
			processed_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outbox_events_status ON outbox_events (status)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
