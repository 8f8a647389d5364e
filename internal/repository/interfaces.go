package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hospitalkit/hospital-api/internal/model"
)

// All repository interfaces in one file. Implementations translate their
// backend's failures into the pkg/errors taxonomy: absent rows become
// NotFound, an active-slot uniqueness violation becomes SlotConflict and
// anything else becomes StoreError.
type (
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) error
	}

	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor) error
		Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
		Search(ctx context.Context, filters *model.DoctorFilters) ([]*model.Doctor, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment) error
		// List returns appointments ascending by datetime.
		List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error)
		// HasActiveAt reports whether an active-status appointment occupies
		// the doctor's slot at the given instant, optionally excluding one
		// appointment (the one being rescheduled).
		HasActiveAt(ctx context.Context, doctorID uuid.UUID, at time.Time, excludeID *uuid.UUID) (bool, error)
		CountActiveFrom(ctx context.Context, patientID uuid.UUID, from time.Time) (int, error)
	}

	MedicalRecordRepository interface {
		Create(ctx context.Context, record *model.MedicalRecord) error
		// ListByPatient returns records newest visit first.
		ListByPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*model.MedicalRecord, error)
		// Latest returns (nil, nil) when the patient has no records.
		Latest(ctx context.Context, patientID uuid.UUID) (*model.MedicalRecord, error)
		CountByPatient(ctx context.Context, patientID uuid.UUID) (int, error)
	}

	PrescriptionRepository interface {
		Create(ctx context.Context, prescription *model.Prescription) error
		// ListByPatient returns prescriptions newest first.
		ListByPatient(ctx context.Context, patientID uuid.UUID, activeOnly bool) ([]*model.Prescription, error)
		CountActive(ctx context.Context, patientID uuid.UUID) (int, error)
	}

	LabReportRepository interface {
		Create(ctx context.Context, report *model.LabReport) error
		// ListByPatient returns reports newest test first.
		ListByPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*model.LabReport, error)
	}

	OutboxRepository interface {
		Create(ctx context.Context, event *model.OutboxEvent) error
		GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
		MarkProcessed(ctx context.Context, id uuid.UUID) error
		MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error
	}
)
