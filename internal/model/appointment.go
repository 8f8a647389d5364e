package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// ActiveStatuses are the statuses that occupy a slot.
func ActiveStatuses() []AppointmentStatus {
	return []AppointmentStatus{AppointmentStatusScheduled, AppointmentStatusConfirmed}
}

func (s AppointmentStatus) Active() bool {
	return s == AppointmentStatusScheduled || s == AppointmentStatusConfirmed
}

func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusCancelled || s == AppointmentStatusCompleted
}

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed,
		AppointmentStatusCancelled, AppointmentStatusCompleted:
		return true
	}
	return false
}

type Appointment struct {
	Base
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	DoctorID  uuid.UUID `db:"doctor_id" json:"doctor_id"`
	// Name snapshots copied from the profiles at booking time; a later
	// profile rename must not alter historical appointments.
	PatientName        string            `db:"patient_name" json:"patient_name"`
	DoctorName         string            `db:"doctor_name" json:"doctor_name"`
	Datetime           time.Time         `db:"appointment_datetime" json:"appointment_datetime"`
	Reason             string            `db:"reason" json:"reason"`
	Symptoms           *string           `db:"symptoms" json:"symptoms,omitempty"`
	Status             AppointmentStatus `db:"status" json:"status"`
	CancelledAt        *time.Time        `db:"cancelled_at" json:"cancelled_at,omitempty"`
	CancellationReason *string           `db:"cancellation_reason" json:"cancellation_reason,omitempty"`
}

type BookAppointmentRequest struct {
	PatientID string  `json:"patient_id" binding:"required"`
	DoctorID  string  `json:"doctor_id" binding:"required"`
	Date      string  `json:"appointment_date" binding:"required"`
	Time      string  `json:"appointment_time" binding:"required"`
	Reason    string  `json:"reason" binding:"required"`
	Symptoms  *string `json:"symptoms"`
}

type RescheduleAppointmentRequest struct {
	NewDate string `json:"new_date" binding:"required"`
	NewTime string `json:"new_time" binding:"required"`
}

type CancelAppointmentRequest struct {
	Reason *string `json:"reason"`
}

// CancelConfirmation is returned instead of the full record on cancellation.
type CancelConfirmation struct {
	AppointmentID uuid.UUID         `json:"appointment_id"`
	Status        AppointmentStatus `json:"status"`
	CancelledAt   time.Time         `json:"cancelled_at"`
}

type AppointmentFilters struct {
	PatientID  uuid.UUID
	DoctorID   uuid.UUID
	Status     AppointmentStatus
	ActiveOnly bool
	From       *time.Time
	To         *time.Time
}
