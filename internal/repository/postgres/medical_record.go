package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/hospitalkit/hospital-api/internal/model"
)

func (r *medicalRecordRepository) Create(ctx context.Context, record *model.MedicalRecord) error {
	query := `
		INSERT INTO medical_records (
			id, patient_id, patient_name, doctor_id, doctor_name,
			visit_date, diagnosis, symptoms, treatment, vital_signs, notes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.PatientID,
		record.PatientName,
		record.DoctorID,
		record.DoctorName,
		record.VisitDate,
		record.Diagnosis,
		record.Symptoms,
		record.Treatment,
		record.VitalSigns,
		record.Notes,
		record.CreatedAt,
	)
	return translate("medical record", err)
}

func (r *medicalRecordRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*model.MedicalRecord, error) {
	query := `
		SELECT id, patient_id, patient_name, doctor_id, doctor_name,
			   visit_date, diagnosis, symptoms, treatment, vital_signs, notes,
			   created_at, updated_at
		FROM medical_records
		WHERE patient_id = $1
		ORDER BY visit_date DESC
		LIMIT $2
	`
	var records []*model.MedicalRecord
	if err := r.db.SelectContext(ctx, &records, query, patientID, limit); err != nil {
		return nil, translate("medical record", err)
	}
	return records, nil
}

// Latest returns nil, nil when the patient has no visit history.
func (r *medicalRecordRepository) Latest(ctx context.Context, patientID uuid.UUID) (*model.MedicalRecord, error) {
	query := `
		SELECT id, patient_id, patient_name, doctor_id, doctor_name,
			   visit_date, diagnosis, symptoms, treatment, vital_signs, notes,
			   created_at, updated_at
		FROM medical_records
		WHERE patient_id = $1
		ORDER BY visit_date DESC
		LIMIT 1
	`
	var record model.MedicalRecord
	if err := r.db.GetContext(ctx, &record, query, patientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, translate("medical record", err)
	}
	return &record, nil
}

func (r *medicalRecordRepository) CountByPatient(ctx context.Context, patientID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM medical_records WHERE patient_id = $1`
	if err := r.db.GetContext(ctx, &count, query, patientID); err != nil {
		return 0, translate("medical record", err)
	}
	return count, nil
}
