package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hospitalkit/hospital-api/internal/model"
)

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, patient_id, doctor_id, patient_name, doctor_name,
			appointment_datetime, reason, symptoms, status,
			cancelled_at, cancellation_reason, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.PatientName,
		appointment.DoctorName,
		appointment.Datetime,
		appointment.Reason,
		appointment.Symptoms,
		appointment.Status,
		appointment.CancelledAt,
		appointment.CancellationReason,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)
	return translate("appointment", err)
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `
		SELECT id, patient_id, doctor_id, patient_name, doctor_name,
			   appointment_datetime, reason, symptoms, status,
			   cancelled_at, cancellation_reason, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`
	var appointment model.Appointment
	if err := r.db.GetContext(ctx, &appointment, query, id); err != nil {
		return nil, translate("appointment", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	query := `
		UPDATE appointments
		SET appointment_datetime = $1, status = $2,
			cancelled_at = $3, cancellation_reason = $4, updated_at = $5
		WHERE id = $6
	`
	now := time.Now().UTC()
	appointment.UpdatedAt = &now

	result, err := r.db.ExecContext(ctx, query,
		appointment.Datetime,
		appointment.Status,
		appointment.CancelledAt,
		appointment.CancellationReason,
		appointment.UpdatedAt,
		appointment.ID,
	)
	if err != nil {
		return translate("appointment", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return translate("appointment", err)
	}
	if rows == 0 {
		return translate("appointment", errNoRows())
	}
	return nil
}

func (r *appointmentRepository) List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	query := `
		SELECT id, patient_id, doctor_id, patient_name, doctor_name,
			   appointment_datetime, reason, symptoms, status,
			   cancelled_at, cancellation_reason, created_at, updated_at
		FROM appointments
		WHERE 1=1
	`
	args := []interface{}{}
	argCount := 1

	if filters.PatientID != uuid.Nil {
		query += fmt.Sprintf(" AND patient_id = $%d", argCount)
		args = append(args, filters.PatientID)
		argCount++
	}

	if filters.DoctorID != uuid.Nil {
		query += fmt.Sprintf(" AND doctor_id = $%d", argCount)
		args = append(args, filters.DoctorID)
		argCount++
	}

	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argCount)
		args = append(args, filters.Status)
		argCount++
	}

	if filters.ActiveOnly {
		query += " AND status IN ('scheduled', 'confirmed')"
	}

	if filters.From != nil {
		query += fmt.Sprintf(" AND appointment_datetime >= $%d", argCount)
		args = append(args, *filters.From)
		argCount++
	}

	if filters.To != nil {
		query += fmt.Sprintf(" AND appointment_datetime <= $%d", argCount)
		args = append(args, *filters.To)
		argCount++
	}

	query += " ORDER BY appointment_datetime ASC"

	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query, args...); err != nil {
		return nil, translate("appointment", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) HasActiveAt(ctx context.Context, doctorID uuid.UUID, at time.Time, excludeID *uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE doctor_id = $1
			  AND appointment_datetime = $2
			  AND status IN ('scheduled', 'confirmed')
	`
	args := []interface{}{doctorID, at}
	if excludeID != nil {
		query += " AND id != $3"
		args = append(args, *excludeID)
	}
	query += ")"

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, args...); err != nil {
		return false, translate("appointment", err)
	}
	return exists, nil
}

func (r *appointmentRepository) CountActiveFrom(ctx context.Context, patientID uuid.UUID, from time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM appointments
		WHERE patient_id = $1
		  AND appointment_datetime >= $2
		  AND status IN ('scheduled', 'confirmed')
	`
	var count int
	if err := r.db.GetContext(ctx, &count, query, patientID, from); err != nil {
		return 0, translate("appointment", err)
	}
	return count, nil
}
