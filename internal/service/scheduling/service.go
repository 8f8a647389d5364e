// Package scheduling owns the appointment lifecycle: booking,
// rescheduling, confirmation, completion and cancellation, plus the
// slot conflict rules that keep a doctor from being double-booked.
package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hospitalkit/hospital-api/internal/model"
	"github.com/hospitalkit/hospital-api/internal/repository"
	"github.com/hospitalkit/hospital-api/internal/service/identity"
	apperrors "github.com/hospitalkit/hospital-api/pkg/errors"
	"github.com/hospitalkit/hospital-api/pkg/logger"
	"github.com/hospitalkit/hospital-api/pkg/metrics"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type Service struct {
	appointments repository.AppointmentRepository
	outbox       repository.OutboxRepository
	identity     *identity.Service
	logger       *logger.Logger
	metrics      *metrics.Metrics

	// Serializes check-then-insert per doctor. The store's partial
	// unique index on active slots backstops concurrent processes.
	slotMu sync.Mutex
	slots  map[uuid.UUID]*sync.Mutex
}

func NewService(
	appointments repository.AppointmentRepository,
	outbox repository.OutboxRepository,
	identitySvc *identity.Service,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *Service {
	return &Service{
		appointments: appointments,
		outbox:       outbox,
		identity:     identitySvc,
		logger:       logger,
		metrics:      metrics,
		slots:        make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *Service) doctorLock(doctorID uuid.UUID) *sync.Mutex {
	s.slotMu.Lock()
	defer s.slotMu.Unlock()
	lock, ok := s.slots[doctorID]
	if !ok {
		lock = &sync.Mutex{}
		s.slots[doctorID] = lock
	}
	return lock
}

// parseSlot combines a calendar date and wall-clock time into the UTC
// instant that identifies the slot. Precision is one minute. Only the
// zero-padded forms YYYY-MM-DD and HH:MM are accepted; the round-trip
// check rejects the unpadded variants the layout would otherwise allow.
func parseSlot(date, clock string) (time.Time, error) {
	raw := date + " " + clock
	layout := dateLayout + " " + timeLayout
	at, err := time.ParseInLocation(layout, raw, time.UTC)
	if err != nil || at.Format(layout) != raw {
		return time.Time{}, apperrors.InvalidInput("invalid date or time format, expected YYYY-MM-DD and HH:MM", err)
	}
	return at, nil
}

func (s *Service) Book(ctx context.Context, req *model.BookAppointmentRequest) (*model.Appointment, error) {
	patient, err := s.identity.ResolvePatient(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}
	doctor, err := s.identity.ResolveDoctor(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}
	at, err := parseSlot(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	lock := s.doctorLock(doctor.ID)
	lock.Lock()
	defer lock.Unlock()

	taken, err := s.appointments.HasActiveAt(ctx, doctor.ID, at, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		s.metrics.SlotConflictsTotal.Inc()
		return nil, apperrors.SlotConflict("this time slot is already booked")
	}

	appointment := &model.Appointment{
		Base: model.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
		},
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		PatientName: patient.Name,
		DoctorName:  doctor.Name,
		Datetime:    at,
		Reason:      req.Reason,
		Symptoms:    req.Symptoms,
		Status:      model.AppointmentStatusScheduled,
	}

	if err := s.appointments.Create(ctx, appointment); err != nil {
		if apperrors.IsSlotConflict(err) {
			s.metrics.SlotConflictsTotal.Inc()
		}
		return nil, err
	}

	s.metrics.BookingsTotal.Inc()
	s.emit(ctx, model.EventAppointmentBooked, appointment)
	return appointment, nil
}

func (s *Service) Reschedule(ctx context.Context, id string, req *model.RescheduleAppointmentRequest) (*model.Appointment, error) {
	appointment, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment.Status.Terminal() {
		return nil, apperrors.InvalidTransition(fmt.Sprintf("cannot reschedule a %s appointment", appointment.Status))
	}
	at, err := parseSlot(req.NewDate, req.NewTime)
	if err != nil {
		return nil, err
	}

	lock := s.doctorLock(appointment.DoctorID)
	lock.Lock()
	defer lock.Unlock()

	taken, err := s.appointments.HasActiveAt(ctx, appointment.DoctorID, at, &appointment.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		s.metrics.SlotConflictsTotal.Inc()
		return nil, apperrors.SlotConflict("this time slot is already booked")
	}

	appointment.Datetime = at
	if err := s.appointments.Update(ctx, appointment); err != nil {
		if apperrors.IsSlotConflict(err) {
			s.metrics.SlotConflictsTotal.Inc()
		}
		return nil, err
	}

	s.metrics.ReschedulesTotal.Inc()
	s.emit(ctx, model.EventAppointmentRescheduled, appointment)
	return appointment, nil
}

func (s *Service) Cancel(ctx context.Context, id string, req *model.CancelAppointmentRequest) (*model.CancelConfirmation, error) {
	appointment, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment.Status.Terminal() {
		return nil, apperrors.InvalidTransition(fmt.Sprintf("appointment is already %s, no change applied", appointment.Status))
	}

	now := time.Now().UTC()
	appointment.Status = model.AppointmentStatusCancelled
	appointment.CancelledAt = &now
	if req != nil {
		appointment.CancellationReason = req.Reason
	}

	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, err
	}

	s.metrics.CancellationsTotal.Inc()
	s.emit(ctx, model.EventAppointmentCancelled, appointment)
	return &model.CancelConfirmation{
		AppointmentID: appointment.ID,
		Status:        appointment.Status,
		CancelledAt:   now,
	}, nil
}

func (s *Service) Confirm(ctx context.Context, id string) (*model.Appointment, error) {
	appointment, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment.Status != model.AppointmentStatusScheduled {
		return nil, apperrors.InvalidTransition(fmt.Sprintf("cannot confirm a %s appointment", appointment.Status))
	}

	appointment.Status = model.AppointmentStatusConfirmed
	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, err
	}

	s.emit(ctx, model.EventAppointmentConfirmed, appointment)
	return appointment, nil
}

func (s *Service) Complete(ctx context.Context, id string) (*model.Appointment, error) {
	appointment, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !appointment.Status.Active() {
		return nil, apperrors.InvalidTransition(fmt.Sprintf("cannot complete a %s appointment", appointment.Status))
	}

	appointment.Status = model.AppointmentStatusCompleted
	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, err
	}

	s.emit(ctx, model.EventAppointmentCompleted, appointment)
	return appointment, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Appointment, error) {
	return s.get(ctx, id)
}

// List returns a patient's appointments ascending by datetime,
// optionally narrowed by status or to future slots only.
func (s *Service) List(ctx context.Context, patientID string, status model.AppointmentStatus, upcomingOnly bool) ([]*model.Appointment, error) {
	patient, err := s.identity.ResolvePatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if status != "" && !status.Valid() {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown appointment status %q", status), nil)
	}

	filters := &model.AppointmentFilters{
		PatientID: patient.ID,
		Status:    status,
	}
	if upcomingOnly {
		now := time.Now().UTC()
		filters.From = &now
	}
	return s.appointments.List(ctx, filters)
}

// UpcomingWindow returns active appointments within [now, now+days*24h]
// inclusive. days of zero covers exactly the current instant.
func (s *Service) UpcomingWindow(ctx context.Context, patientID string, days int) ([]*model.Appointment, error) {
	if days < 0 {
		return nil, apperrors.InvalidInput("days must not be negative", nil)
	}
	patient, err := s.identity.ResolvePatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	from := time.Now().UTC()
	to := from.Add(time.Duration(days) * 24 * time.Hour)
	return s.appointments.List(ctx, &model.AppointmentFilters{
		PatientID:  patient.ID,
		ActiveOnly: true,
		From:       &from,
		To:         &to,
	})
}

func (s *Service) get(ctx context.Context, id string) (*model.Appointment, error) {
	appointmentID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid appointment ID format", err)
	}
	return s.appointments.Get(ctx, appointmentID)
}

// emit records a lifecycle event in the outbox. Failures are logged
// and never fail the operation that triggered them.
func (s *Service) emit(ctx context.Context, eventType string, appointment *model.Appointment) {
	payload, err := json.Marshal(appointment)
	if err != nil {
		s.logger.Error(err, "Failed to marshal outbox payload", "event_type", eventType)
		return
	}
	event := &model.OutboxEvent{
		ID:        uuid.New(),
		EventType: eventType,
		Payload:   payload,
		Status:    model.OutboxStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.outbox.Create(ctx, event); err != nil {
		s.logger.Error(err, "Failed to record outbox event",
			"event_type", eventType,
			"appointment_id", appointment.ID.String())
	}
}
