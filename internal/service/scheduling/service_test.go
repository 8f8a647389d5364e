package scheduling_test

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitalkit/hospital-api/internal/model"
	"github.com/hospitalkit/hospital-api/internal/repository/memory"
	"github.com/hospitalkit/hospital-api/internal/service/identity"
	"github.com/hospitalkit/hospital-api/internal/service/scheduling"
	apperrors "github.com/hospitalkit/hospital-api/pkg/errors"
	"github.com/hospitalkit/hospital-api/pkg/logger"
	"github.com/hospitalkit/hospital-api/pkg/metrics"
)

var testMetrics = metrics.NewMetrics("scheduling_test")

type fixture struct {
	svc     *scheduling.Service
	outbox  *memory.OutboxRepository
	patient *model.Patient
	doctor  *model.Doctor
	doctor2 *model.Doctor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	patients := memory.NewPatientRepository()
	doctors := memory.NewDoctorRepository()
	appointments := memory.NewAppointmentRepository()
	outbox := memory.NewOutboxRepository()

	patient := &model.Patient{
		Base:    model.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		Name:    "John Smith",
		Age:     45,
		Gender:  "Male",
		Contact: "+1-555-1001",
	}
	require.NoError(t, patients.Create(ctx, patient))

	doctor := &model.Doctor{
		Base:            model.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		Name:            "Dr. Sarah Johnson",
		Specialization:  "Cardiology",
		Department:      "Cardiology",
		Qualification:   "MD",
		Contact:         "+1-555-0101",
		Email:           "sarah.johnson@hospital.com",
		ExperienceYears: 15,
	}
	require.NoError(t, doctors.Create(ctx, doctor))

	doctor2 := &model.Doctor{
		Base:            model.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		Name:            "Dr. Michael Chen",
		Specialization:  "Pediatrics",
		Department:      "Pediatrics",
		Qualification:   "MD",
		Contact:         "+1-555-0102",
		Email:           "michael.chen@hospital.com",
		ExperienceYears: 10,
	}
	require.NoError(t, doctors.Create(ctx, doctor2))

	quiet := logger.NewLogger(&logger.Config{
		Level:      logger.ErrorLevel,
		TimeFormat: time.RFC3339,
		Output:     io.Discard,
	})

	identitySvc := identity.NewService(patients, doctors)
	svc := scheduling.NewService(appointments, outbox, identitySvc, quiet, testMetrics)

	return &fixture{
		svc:     svc,
		outbox:  outbox,
		patient: patient,
		doctor:  doctor,
		doctor2: doctor2,
	}
}

func (f *fixture) book(t *testing.T, date, clock string) *model.Appointment {
	t.Helper()
	booked, err := f.svc.Book(context.Background(), &model.BookAppointmentRequest{
		PatientID: f.patient.ID.String(),
		DoctorID:  f.doctor.ID.String(),
		Date:      date,
		Time:      clock,
		Reason:    "Routine checkup",
	})
	require.NoError(t, err)
	return booked
}

func futureDate(daysAhead int) string {
	return time.Now().UTC().AddDate(0, 0, daysAhead).Format("2006-01-02")
}

func TestBookAppointment(t *testing.T) {
	f := newFixture(t)

	booked := f.book(t, futureDate(2), "10:30")

	assert.Equal(t, model.AppointmentStatusScheduled, booked.Status)
	assert.Equal(t, f.patient.ID, booked.PatientID)
	assert.Equal(t, f.doctor.ID, booked.DoctorID)
	assert.Equal(t, "John Smith", booked.PatientName)
	assert.Equal(t, "Dr. Sarah Johnson", booked.DoctorName)
	assert.Equal(t, 10, booked.Datetime.Hour())
	assert.Equal(t, 30, booked.Datetime.Minute())
	assert.Equal(t, time.UTC, booked.Datetime.Location())

	found, err := f.svc.Get(context.Background(), booked.ID.String())
	require.NoError(t, err)
	assert.Equal(t, booked.ID, found.ID)
	assert.True(t, booked.Datetime.Equal(found.Datetime))
}

func TestBookAppointmentValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Book(ctx, &model.BookAppointmentRequest{
		PatientID: "not-a-uuid",
		DoctorID:  f.doctor.ID.String(),
		Date:      futureDate(1),
		Time:      "10:00",
		Reason:    "Checkup",
	})
	assert.True(t, apperrors.IsInvalidInput(err))

	_, err = f.svc.Book(ctx, &model.BookAppointmentRequest{
		PatientID: uuid.New().String(),
		DoctorID:  f.doctor.ID.String(),
		Date:      futureDate(1),
		Time:      "10:00",
		Reason:    "Checkup",
	})
	assert.True(t, apperrors.IsNotFound(err))

	_, err = f.svc.Book(ctx, &model.BookAppointmentRequest{
		PatientID: f.patient.ID.String(),
		DoctorID:  uuid.New().String(),
		Date:      futureDate(1),
		Time:      "10:00",
		Reason:    "Checkup",
	})
	assert.True(t, apperrors.IsNotFound(err))

	_, err = f.svc.Book(ctx, &model.BookAppointmentRequest{
		PatientID: f.patient.ID.String(),
		DoctorID:  f.doctor.ID.String(),
		Date:      "03/15/2026",
		Time:      "10:00",
		Reason:    "Checkup",
	})
	assert.True(t, apperrors.IsInvalidInput(err))

	_, err = f.svc.Book(ctx, &model.BookAppointmentRequest{
		PatientID: f.patient.ID.String(),
		DoctorID:  f.doctor.ID.String(),
		Date:      futureDate(1),
		Time:      "25:99",
		Reason:    "Checkup",
	})
	assert.True(t, apperrors.IsInvalidInput(err))

	// Unpadded dates and times are rejected even though the layout
	// alone would parse them.
	_, err = f.svc.Book(ctx, &model.BookAppointmentRequest{
		PatientID: f.patient.ID.String(),
		DoctorID:  f.doctor.ID.String(),
		Date:      "2027-3-10",
		Time:      "10:00",
		Reason:    "Checkup",
	})
	assert.True(t, apperrors.IsInvalidInput(err))

	_, err = f.svc.Book(ctx, &model.BookAppointmentRequest{
		PatientID: f.patient.ID.String(),
		DoctorID:  f.doctor.ID.String(),
		Date:      futureDate(1),
		Time:      "9:05",
		Reason:    "Checkup",
	})
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestBookSlotConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	date := futureDate(3)

	f.book(t, date, "09:00")

	_, err := f.svc.Book(ctx, &model.BookAppointmentRequest{
		PatientID: f.patient.ID.String(),
		DoctorID:  f.doctor.ID.String(),
		Date:      date,
		Time:      "09:00",
		Reason:    "Second booking",
	})
	assert.True(t, apperrors.IsSlotConflict(err))

	// Adjacent minute is a distinct slot.
	adjacent, err := f.svc.Book(ctx, &model.BookAppointmentRequest{
		PatientID: f.patient.ID.String(),
		DoctorID:  f.doctor.ID.String(),
		Date:      date,
		Time:      "09:01",
		Reason:    "Adjacent slot",
	})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusScheduled, adjacent.Status)

	// Same instant with another doctor is free.
	_, err = f.svc.Book(ctx, &model.BookAppointmentRequest{
		PatientID: f.patient.ID.String(),
		DoctorID:  f.doctor2.ID.String(),
		Date:      date,
		Time:      "09:00",
		Reason:    "Other doctor",
	})
	require.NoError(t, err)
}

func TestConcurrentBookingSameSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	date := futureDate(4)

	const attempts = 20
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.Book(ctx, &model.BookAppointmentRequest{
				PatientID: f.patient.ID.String(),
				DoctorID:  f.doctor.ID.String(),
				Date:      date,
				Time:      "11:00",
				Reason:    "Race",
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, apperrors.IsSlotConflict(err))
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestReschedule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	date := futureDate(5)

	booked := f.book(t, date, "10:00")
	blocker := f.book(t, date, "12:00")

	// Moving onto an occupied slot fails.
	_, err := f.svc.Reschedule(ctx, booked.ID.String(), &model.RescheduleAppointmentRequest{
		NewDate: date,
		NewTime: "12:00",
	})
	assert.True(t, apperrors.IsSlotConflict(err))

	// Re-confirming its own slot is not a conflict.
	same, err := f.svc.Reschedule(ctx, booked.ID.String(), &model.RescheduleAppointmentRequest{
		NewDate: date,
		NewTime: "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusScheduled, same.Status)

	moved, err := f.svc.Reschedule(ctx, booked.ID.String(), &model.RescheduleAppointmentRequest{
		NewDate: date,
		NewTime: "14:30",
	})
	require.NoError(t, err)
	assert.Equal(t, 14, moved.Datetime.Hour())
	assert.Equal(t, 30, moved.Datetime.Minute())

	// The vacated slot can be taken again.
	_, err = f.svc.Book(ctx, &model.BookAppointmentRequest{
		PatientID: f.patient.ID.String(),
		DoctorID:  f.doctor.ID.String(),
		Date:      date,
		Time:      "10:00",
		Reason:    "Reclaimed slot",
	})
	require.NoError(t, err)

	_, err = f.svc.Reschedule(ctx, uuid.New().String(), &model.RescheduleAppointmentRequest{
		NewDate: date,
		NewTime: "15:00",
	})
	assert.True(t, apperrors.IsNotFound(err))

	_, err = f.svc.Cancel(ctx, blocker.ID.String(), nil)
	require.NoError(t, err)
	_, err = f.svc.Reschedule(ctx, blocker.ID.String(), &model.RescheduleAppointmentRequest{
		NewDate: date,
		NewTime: "16:00",
	})
	assert.True(t, apperrors.IsInvalidTransition(err))
}

func TestCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	date := futureDate(6)

	booked := f.book(t, date, "10:00")

	reason := "Feeling better"
	confirmation, err := f.svc.Cancel(ctx, booked.ID.String(), &model.CancelAppointmentRequest{Reason: &reason})
	require.NoError(t, err)
	assert.Equal(t, booked.ID, confirmation.AppointmentID)
	assert.Equal(t, model.AppointmentStatusCancelled, confirmation.Status)
	assert.False(t, confirmation.CancelledAt.IsZero())

	cancelled, err := f.svc.Get(ctx, booked.ID.String())
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancellationReason)
	assert.Equal(t, reason, *cancelled.CancellationReason)
	require.NotNil(t, cancelled.CancelledAt)

	// Cancelling twice reports no change.
	_, err = f.svc.Cancel(ctx, booked.ID.String(), nil)
	assert.True(t, apperrors.IsInvalidTransition(err))

	_, err = f.svc.Cancel(ctx, uuid.New().String(), nil)
	assert.True(t, apperrors.IsNotFound(err))

	// A cancelled slot no longer blocks new bookings.
	_, err = f.svc.Book(ctx, &model.BookAppointmentRequest{
		PatientID: f.patient.ID.String(),
		DoctorID:  f.doctor.ID.String(),
		Date:      date,
		Time:      "10:00",
		Reason:    "Freed slot",
	})
	require.NoError(t, err)
}

func TestConfirmAndComplete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	date := futureDate(7)

	booked := f.book(t, date, "09:00")

	confirmed, err := f.svc.Confirm(ctx, booked.ID.String())
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusConfirmed, confirmed.Status)

	_, err = f.svc.Confirm(ctx, booked.ID.String())
	assert.True(t, apperrors.IsInvalidTransition(err))

	completed, err := f.svc.Complete(ctx, booked.ID.String())
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCompleted, completed.Status)

	_, err = f.svc.Complete(ctx, booked.ID.String())
	assert.True(t, apperrors.IsInvalidTransition(err))

	_, err = f.svc.Cancel(ctx, booked.ID.String(), nil)
	assert.True(t, apperrors.IsInvalidTransition(err))

	_, err = f.svc.Reschedule(ctx, booked.ID.String(), &model.RescheduleAppointmentRequest{
		NewDate: date,
		NewTime: "17:00",
	})
	assert.True(t, apperrors.IsInvalidTransition(err))
}

func TestListAppointments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	later := f.book(t, futureDate(9), "10:00")
	earlier := f.book(t, futureDate(8), "10:00")
	cancelled := f.book(t, futureDate(10), "10:00")
	_, err := f.svc.Cancel(ctx, cancelled.ID.String(), nil)
	require.NoError(t, err)

	all, err := f.svc.List(ctx, f.patient.ID.String(), "", false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, earlier.ID, all[0].ID)
	assert.Equal(t, later.ID, all[1].ID)

	scheduled, err := f.svc.List(ctx, f.patient.ID.String(), model.AppointmentStatusScheduled, false)
	require.NoError(t, err)
	assert.Len(t, scheduled, 2)

	_, err = f.svc.List(ctx, f.patient.ID.String(), "unknown", false)
	assert.True(t, apperrors.IsInvalidInput(err))

	_, err = f.svc.List(ctx, uuid.New().String(), "", false)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpcomingWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inWindow := f.book(t, futureDate(2), "10:00")
	outOfWindow := f.book(t, futureDate(20), "10:00")
	cancelled := f.book(t, futureDate(3), "10:00")
	_, err := f.svc.Cancel(ctx, cancelled.ID.String(), nil)
	require.NoError(t, err)

	upcoming, err := f.svc.UpcomingWindow(ctx, f.patient.ID.String(), 7)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, inWindow.ID, upcoming[0].ID)

	wide, err := f.svc.UpcomingWindow(ctx, f.patient.ID.String(), 30)
	require.NoError(t, err)
	require.Len(t, wide, 2)
	assert.Equal(t, inWindow.ID, wide[0].ID)
	assert.Equal(t, outOfWindow.ID, wide[1].ID)

	none, err := f.svc.UpcomingWindow(ctx, f.patient.ID.String(), 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = f.svc.UpcomingWindow(ctx, f.patient.ID.String(), -1)
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestLifecycleEventsRecorded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	date := futureDate(11)

	booked := f.book(t, date, "10:00")
	_, err := f.svc.Reschedule(ctx, booked.ID.String(), &model.RescheduleAppointmentRequest{
		NewDate: date,
		NewTime: "11:00",
	})
	require.NoError(t, err)
	_, err = f.svc.Confirm(ctx, booked.ID.String())
	require.NoError(t, err)
	_, err = f.svc.Cancel(ctx, booked.ID.String(), nil)
	require.NoError(t, err)

	events, err := f.outbox.GetPendingEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 4)

	types := make([]string, 0, len(events))
	for _, e := range events {
		assert.Equal(t, model.OutboxStatusPending, e.Status)
		assert.NotEmpty(t, e.Payload)
		types = append(types, e.EventType)
	}
	assert.Contains(t, types, model.EventAppointmentBooked)
	assert.Contains(t, types, model.EventAppointmentRescheduled)
	assert.Contains(t, types, model.EventAppointmentConfirmed)
	assert.Contains(t, types, model.EventAppointmentCancelled)
}
