package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hospitalkit/hospital-api/internal/model"
	apperrors "github.com/hospitalkit/hospital-api/pkg/errors"
)

func (r *AppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if appointment.Status.Active() && r.slotTakenLocked(appointment.DoctorID, appointment.Datetime, nil) {
		return apperrors.SlotConflict("this time slot is already booked")
	}
	r.appointments[appointment.ID] = *appointment
	return nil
}

func (r *AppointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, apperrors.NotFound("appointment", nil)
	}
	return &appointment, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appointments[appointment.ID]; !ok {
		return apperrors.NotFound("appointment", nil)
	}
	if appointment.Status.Active() && r.slotTakenLocked(appointment.DoctorID, appointment.Datetime, &appointment.ID) {
		return apperrors.SlotConflict("this time slot is already booked")
	}
	now := time.Now().UTC()
	appointment.UpdatedAt = &now
	r.appointments[appointment.ID] = *appointment
	return nil
}

func (r *AppointmentRepository) List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]*model.Appointment, 0)
	for _, appointment := range r.appointments {
		if filters.PatientID != uuid.Nil && appointment.PatientID != filters.PatientID {
			continue
		}
		if filters.DoctorID != uuid.Nil && appointment.DoctorID != filters.DoctorID {
			continue
		}
		if filters.Status != "" && appointment.Status != filters.Status {
			continue
		}
		if filters.ActiveOnly && !appointment.Status.Active() {
			continue
		}
		if filters.From != nil && appointment.Datetime.Before(*filters.From) {
			continue
		}
		if filters.To != nil && appointment.Datetime.After(*filters.To) {
			continue
		}
		a := appointment
		matched = append(matched, &a)
	}

	sortAppointmentsAsc(matched)
	return matched, nil
}

func (r *AppointmentRepository) HasActiveAt(ctx context.Context, doctorID uuid.UUID, at time.Time, excludeID *uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slotTakenLocked(doctorID, at, excludeID), nil
}

func (r *AppointmentRepository) CountActiveFrom(ctx context.Context, patientID uuid.UUID, from time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, appointment := range r.appointments {
		if appointment.PatientID != patientID {
			continue
		}
		if !appointment.Status.Active() {
			continue
		}
		if appointment.Datetime.Before(from) {
			continue
		}
		count++
	}
	return count, nil
}

func (r *AppointmentRepository) slotTakenLocked(doctorID uuid.UUID, at time.Time, excludeID *uuid.UUID) bool {
	for _, appointment := range r.appointments {
		if excludeID != nil && appointment.ID == *excludeID {
			continue
		}
		if appointment.DoctorID == doctorID && appointment.Status.Active() && appointment.Datetime.Equal(at) {
			return true
		}
	}
	return false
}
