package doctor_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitalkit/hospital-api/internal/model"
	"github.com/hospitalkit/hospital-api/internal/repository/memory"
	"github.com/hospitalkit/hospital-api/internal/service/doctor"
	apperrors "github.com/hospitalkit/hospital-api/pkg/errors"
)

func seedDoctors(t *testing.T, repo *memory.DoctorRepository) []*model.Doctor {
	t.Helper()
	ctx := context.Background()
	doctors := []*model.Doctor{
		{Base: model.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()}, Name: "Dr. Sarah Johnson", Specialization: "Cardiology", Department: "Cardiology", Qualification: "MD", Contact: "+1-555-0101", Email: "sarah@hospital.com"},
		{Base: model.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()}, Name: "Dr. Michael Chen", Specialization: "Pediatrics", Department: "Pediatrics", Qualification: "MD", Contact: "+1-555-0102", Email: "michael@hospital.com"},
		{Base: model.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()}, Name: "Dr. Priya Sharma", Specialization: "Gynecology", Department: "Obstetrics & Gynecology", Qualification: "MD", Contact: "+1-555-0107", Email: "priya@hospital.com"},
	}
	for _, d := range doctors {
		require.NoError(t, repo.Create(ctx, d))
	}
	return doctors
}

func TestSearchDoctors(t *testing.T) {
	repo := memory.NewDoctorRepository()
	seedDoctors(t, repo)
	svc := doctor.NewService(repo)
	ctx := context.Background()

	all, err := svc.Search(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Case-insensitive substring match.
	cardio, err := svc.Search(ctx, &model.DoctorFilters{Specialization: "cardio"})
	require.NoError(t, err)
	require.Len(t, cardio, 1)
	assert.Equal(t, "Dr. Sarah Johnson", cardio[0].Name)

	obgyn, err := svc.Search(ctx, &model.DoctorFilters{Department: "obstetrics"})
	require.NoError(t, err)
	require.Len(t, obgyn, 1)
	assert.Equal(t, "Dr. Priya Sharma", obgyn[0].Name)

	byName, err := svc.Search(ctx, &model.DoctorFilters{Name: "chen"})
	require.NoError(t, err)
	require.Len(t, byName, 1)

	combined, err := svc.Search(ctx, &model.DoctorFilters{Specialization: "pediatrics", Name: "sharma"})
	require.NoError(t, err)
	assert.Empty(t, combined)
}

func TestGetDoctor(t *testing.T) {
	repo := memory.NewDoctorRepository()
	doctors := seedDoctors(t, repo)
	svc := doctor.NewService(repo)
	ctx := context.Background()

	found, err := svc.Get(ctx, doctors[0].ID.String())
	require.NoError(t, err)
	assert.Equal(t, doctors[0].Name, found.Name)

	_, err = svc.Get(ctx, uuid.New().String())
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.Get(ctx, "not-a-uuid")
	assert.True(t, apperrors.IsInvalidInput(err))
}
