package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hospitalkit/hospital-api/internal/model"
)

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (
			id, name, age, gender, contact, email, address,
			blood_group, emergency_contact, allergies, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		patient.ID,
		patient.Name,
		patient.Age,
		patient.Gender,
		patient.Contact,
		patient.Email,
		patient.Address,
		patient.BloodGroup,
		patient.EmergencyContact,
		patient.Allergies,
		patient.CreatedAt,
		patient.UpdatedAt,
	)
	return translate("patient", err)
}

func (r *patientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	query := `
		SELECT id, name, age, gender, contact, email, address,
			   blood_group, emergency_contact, allergies, created_at, updated_at
		FROM patients
		WHERE id = $1
	`
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, id); err != nil {
		return nil, translate("patient", err)
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	query := `
		UPDATE patients
		SET contact = $1, email = $2, address = $3,
			emergency_contact = $4, allergies = $5, updated_at = $6
		WHERE id = $7
	`
	now := time.Now().UTC()
	patient.UpdatedAt = &now

	result, err := r.db.ExecContext(ctx, query,
		patient.Contact,
		patient.Email,
		patient.Address,
		patient.EmergencyContact,
		patient.Allergies,
		patient.UpdatedAt,
		patient.ID,
	)
	if err != nil {
		return translate("patient", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return translate("patient", err)
	}
	if rows == 0 {
		return translate("patient", errNoRows())
	}
	return nil
}
