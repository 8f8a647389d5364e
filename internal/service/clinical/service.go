// Package clinical serves a patient's medical history, prescriptions,
// lab reports and the aggregated health summary.
package clinical

import (
	"context"
	"time"

	"github.com/hospitalkit/hospital-api/internal/model"
	"github.com/hospitalkit/hospital-api/internal/repository"
	"github.com/hospitalkit/hospital-api/internal/service/identity"
)

const defaultListLimit = 10

type Service struct {
	records       repository.MedicalRecordRepository
	prescriptions repository.PrescriptionRepository
	labReports    repository.LabReportRepository
	appointments  repository.AppointmentRepository
	identity      *identity.Service
}

func NewService(
	records repository.MedicalRecordRepository,
	prescriptions repository.PrescriptionRepository,
	labReports repository.LabReportRepository,
	appointments repository.AppointmentRepository,
	identitySvc *identity.Service,
) *Service {
	return &Service{
		records:       records,
		prescriptions: prescriptions,
		labReports:    labReports,
		appointments:  appointments,
		identity:      identitySvc,
	}
}

func (s *Service) MedicalHistory(ctx context.Context, patientID string, limit int) ([]*model.MedicalRecord, error) {
	patient, err := s.identity.ResolvePatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.records.ListByPatient(ctx, patient.ID, limit)
}

func (s *Service) Prescriptions(ctx context.Context, patientID string, activeOnly bool) ([]*model.Prescription, error) {
	patient, err := s.identity.ResolvePatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return s.prescriptions.ListByPatient(ctx, patient.ID, activeOnly)
}

func (s *Service) LabReports(ctx context.Context, patientID string, limit int) ([]*model.LabReport, error) {
	patient, err := s.identity.ResolvePatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.labReports.ListByPatient(ctx, patient.ID, limit)
}

// HealthSummary gathers four independent reads. The counters are not
// snapshotted together, so concurrent writes may skew them relative to
// each other.
func (s *Service) HealthSummary(ctx context.Context, patientID string) (*model.HealthSummary, error) {
	patient, err := s.identity.ResolvePatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	totalVisits, err := s.records.CountByPatient(ctx, patient.ID)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.appointments.CountActiveFrom(ctx, patient.ID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	activePrescriptions, err := s.prescriptions.CountActive(ctx, patient.ID)
	if err != nil {
		return nil, err
	}
	lastVisit, err := s.records.Latest(ctx, patient.ID)
	if err != nil {
		return nil, err
	}

	return &model.HealthSummary{
		PatientName:          patient.Name,
		TotalVisits:          totalVisits,
		UpcomingAppointments: upcoming,
		ActivePrescriptions:  activePrescriptions,
		LastVisit:            lastVisit,
		BloodGroup:           patient.BloodGroup,
		Allergies:            patient.Allergies,
	}, nil
}
