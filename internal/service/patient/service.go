package patient

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hospitalkit/hospital-api/internal/model"
	"github.com/hospitalkit/hospital-api/internal/repository"
	apperrors "github.com/hospitalkit/hospital-api/pkg/errors"
	"github.com/hospitalkit/hospital-api/pkg/validator"
)

type Service struct {
	repo     repository.PatientRepository
	validate validator.Validator
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

func (s *Service) Register(ctx context.Context, req *model.RegisterPatientRequest) (*model.Patient, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.InvalidInput(err.Error(), err)
	}

	patient := &model.Patient{
		Base: model.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
		},
		Name:             req.Name,
		Age:              req.Age,
		Gender:           req.Gender,
		Contact:          req.Contact,
		Email:            req.Email,
		Address:          req.Address,
		BloodGroup:       req.BloodGroup,
		EmergencyContact: req.EmergencyContact,
		Allergies:        req.Allergies,
	}
	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Patient, error) {
	patientID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid patient ID format", err)
	}
	return s.repo.Get(ctx, patientID)
}

// UpdateProfile applies a patch to the mutable contact fields. Nil
// fields are left untouched; a patch with no fields set is rejected.
func (s *Service) UpdateProfile(ctx context.Context, id string, patch *model.UpdatePatientRequest) (*model.Patient, error) {
	if patch == nil || patch.Empty() {
		return nil, apperrors.InvalidInput("no fields to update", nil)
	}

	patient, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Contact != nil {
		patient.Contact = *patch.Contact
	}
	if patch.Email != nil {
		patient.Email = patch.Email
	}
	if patch.Address != nil {
		patient.Address = patch.Address
	}
	if patch.EmergencyContact != nil {
		patient.EmergencyContact = patch.EmergencyContact
	}
	if patch.Allergies != nil {
		patient.Allergies = patch.Allergies
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}
