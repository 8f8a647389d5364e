package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hospitalkit/hospital-api/internal/model"
	apperrors "github.com/hospitalkit/hospital-api/pkg/errors"
)

func (r *PatientRepository) Create(ctx context.Context, patient *model.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patients[patient.ID] = *patient
	return nil
}

func (r *PatientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	patient, ok := r.patients[id]
	if !ok {
		return nil, apperrors.NotFound("patient", nil)
	}
	return &patient, nil
}

func (r *PatientRepository) Update(ctx context.Context, patient *model.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.patients[patient.ID]; !ok {
		return apperrors.NotFound("patient", nil)
	}
	now := time.Now().UTC()
	patient.UpdatedAt = &now
	r.patients[patient.ID] = *patient
	return nil
}
