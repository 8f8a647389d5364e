package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/hospitalkit/hospital-api/internal/model"
	apperrors "github.com/hospitalkit/hospital-api/pkg/errors"
)

const searchLimit = 100

func (r *DoctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doctors[doctor.ID] = *doctor
	return nil
}

func (r *DoctorRepository) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doctor, ok := r.doctors[id]
	if !ok {
		return nil, apperrors.NotFound("doctor", nil)
	}
	return &doctor, nil
}

func (r *DoctorRepository) Search(ctx context.Context, filters *model.DoctorFilters) ([]*model.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*model.Doctor, 0)
	for _, doctor := range r.doctors {
		if !matchFold(doctor.Specialization, filters.Specialization) {
			continue
		}
		if !matchFold(doctor.Department, filters.Department) {
			continue
		}
		if !matchFold(doctor.Name, filters.Name) {
			continue
		}
		d := doctor
		matched = append(matched, &d)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Name < matched[j].Name
	})
	if len(matched) > searchLimit {
		matched = matched[:searchLimit]
	}
	return matched, nil
}

func matchFold(value, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}
