package doctor

import (
	"context"

	"github.com/google/uuid"

	"github.com/hospitalkit/hospital-api/internal/model"
	"github.com/hospitalkit/hospital-api/internal/repository"
	apperrors "github.com/hospitalkit/hospital-api/pkg/errors"
)

type Service struct {
	repo repository.DoctorRepository
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id string) (*model.Doctor, error) {
	doctorID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid doctor ID format", err)
	}
	return s.repo.Get(ctx, doctorID)
}

// Search matches case-insensitive substrings on any combination of
// specialization, department and name. Results are capped at 100.
func (s *Service) Search(ctx context.Context, filters *model.DoctorFilters) ([]*model.Doctor, error) {
	if filters == nil {
		filters = &model.DoctorFilters{}
	}
	return s.repo.Search(ctx, filters)
}
