package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/hospitalkit/hospital-api/internal/model"
)

func (r *labReportRepository) Create(ctx context.Context, report *model.LabReport) error {
	query := `
		INSERT INTO lab_reports (
			id, patient_id, doctor_id, test_name, test_type,
			test_date, results, status, notes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		report.ID,
		report.PatientID,
		report.DoctorID,
		report.TestName,
		report.TestType,
		report.TestDate,
		report.Results,
		report.Status,
		report.Notes,
		report.CreatedAt,
	)
	return translate("lab report", err)
}

func (r *labReportRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*model.LabReport, error) {
	query := `
		SELECT id, patient_id, doctor_id, test_name, test_type,
			   test_date, results, status, notes, created_at, updated_at
		FROM lab_reports
		WHERE patient_id = $1
		ORDER BY test_date DESC
		LIMIT $2
	`
	var reports []*model.LabReport
	if err := r.db.SelectContext(ctx, &reports, query, patientID, limit); err != nil {
		return nil, translate("lab report", err)
	}
	return reports, nil
}
