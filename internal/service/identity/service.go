// Package identity resolves patient and doctor references. Every
// operation that takes a party ID goes through here so malformed and
// unknown IDs fail the same way everywhere.
package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/hospitalkit/hospital-api/internal/model"
	"github.com/hospitalkit/hospital-api/internal/repository"
	apperrors "github.com/hospitalkit/hospital-api/pkg/errors"
)

type Service struct {
	patients repository.PatientRepository
	doctors  repository.DoctorRepository
}

func NewService(patients repository.PatientRepository, doctors repository.DoctorRepository) *Service {
	return &Service{patients: patients, doctors: doctors}
}

func (s *Service) ResolvePatient(ctx context.Context, id string) (*model.Patient, error) {
	patientID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid patient ID format", err)
	}
	return s.patients.Get(ctx, patientID)
}

func (s *Service) ResolveDoctor(ctx context.Context, id string) (*model.Doctor, error) {
	doctorID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid doctor ID format", err)
	}
	return s.doctors.Get(ctx, doctorID)
}
