package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hospitalkit/hospital-api/internal/model"
)

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (
			id, name, specialization, department, qualification, contact, email,
			experience_years, consultation_fee, available_days, available_hours, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		doctor.ID,
		doctor.Name,
		doctor.Specialization,
		doctor.Department,
		doctor.Qualification,
		doctor.Contact,
		doctor.Email,
		doctor.ExperienceYears,
		doctor.ConsultationFee,
		doctor.AvailableDays,
		doctor.AvailableHours,
		doctor.CreatedAt,
	)
	return translate("doctor", err)
}

func (r *doctorRepository) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	query := `
		SELECT id, name, specialization, department, qualification, contact, email,
			   experience_years, consultation_fee, available_days, available_hours,
			   created_at, updated_at
		FROM doctors
		WHERE id = $1
	`
	var doctor model.Doctor
	if err := r.db.GetContext(ctx, &doctor, query, id); err != nil {
		return nil, translate("doctor", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) Search(ctx context.Context, filters *model.DoctorFilters) ([]*model.Doctor, error) {
	query := `
		SELECT id, name, specialization, department, qualification, contact, email,
			   experience_years, consultation_fee, available_days, available_hours,
			   created_at, updated_at
		FROM doctors
		WHERE 1=1
	`
	args := []interface{}{}
	argCount := 1

	if filters.Specialization != "" {
		query += fmt.Sprintf(" AND specialization ILIKE $%d", argCount)
		args = append(args, "%"+filters.Specialization+"%")
		argCount++
	}

	if filters.Department != "" {
		query += fmt.Sprintf(" AND department ILIKE $%d", argCount)
		args = append(args, "%"+filters.Department+"%")
		argCount++
	}

	if filters.Name != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argCount)
		args = append(args, "%"+filters.Name+"%")
		argCount++
	}

	query += " ORDER BY name ASC LIMIT 100"

	var doctors []*model.Doctor
	if err := r.db.SelectContext(ctx, &doctors, query, args...); err != nil {
		return nil, translate("doctor", err)
	}
	return doctors, nil
}
