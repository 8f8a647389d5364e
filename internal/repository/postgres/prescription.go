package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/hospitalkit/hospital-api/internal/model"
)

func (r *prescriptionRepository) Create(ctx context.Context, prescription *model.Prescription) error {
	query := `
		INSERT INTO prescriptions (
			id, patient_id, doctor_id, doctor_name, prescribed_date,
			medications, status, notes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		prescription.ID,
		prescription.PatientID,
		prescription.DoctorID,
		prescription.DoctorName,
		prescription.PrescribedAt,
		prescription.Medications,
		prescription.Status,
		prescription.Notes,
		prescription.CreatedAt,
	)
	return translate("prescription", err)
}

func (r *prescriptionRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, activeOnly bool) ([]*model.Prescription, error) {
	query := `
		SELECT id, patient_id, doctor_id, doctor_name, prescribed_date,
			   medications, status, notes, created_at, updated_at
		FROM prescriptions
		WHERE patient_id = $1
	`
	if activeOnly {
		query += " AND status = 'active'"
	}
	query += " ORDER BY prescribed_date DESC"

	var prescriptions []*model.Prescription
	if err := r.db.SelectContext(ctx, &prescriptions, query, patientID); err != nil {
		return nil, translate("prescription", err)
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) CountActive(ctx context.Context, patientID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM prescriptions WHERE patient_id = $1 AND status = 'active'`
	if err := r.db.GetContext(ctx, &count, query, patientID); err != nil {
		return 0, translate("prescription", err)
	}
	return count, nil
}
