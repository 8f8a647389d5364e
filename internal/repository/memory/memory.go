// Package memory provides mutex-guarded in-memory repository
// implementations. They honor the same error taxonomy and slot
// uniqueness rules as the Postgres implementations, which keeps
// service tests hermetic.
package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/hospitalkit/hospital-api/internal/model"
	"github.com/hospitalkit/hospital-api/internal/repository"
)

type PatientRepository struct {
	mu       sync.RWMutex
	patients map[uuid.UUID]model.Patient
}

func NewPatientRepository() *PatientRepository {
	return &PatientRepository{patients: make(map[uuid.UUID]model.Patient)}
}

type DoctorRepository struct {
	mu      sync.RWMutex
	doctors map[uuid.UUID]model.Doctor
}

func NewDoctorRepository() *DoctorRepository {
	return &DoctorRepository{doctors: make(map[uuid.UUID]model.Doctor)}
}

type AppointmentRepository struct {
	mu           sync.Mutex
	appointments map[uuid.UUID]model.Appointment
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{appointments: make(map[uuid.UUID]model.Appointment)}
}

type MedicalRecordRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]model.MedicalRecord
}

func NewMedicalRecordRepository() *MedicalRecordRepository {
	return &MedicalRecordRepository{records: make(map[uuid.UUID]model.MedicalRecord)}
}

type PrescriptionRepository struct {
	mu            sync.RWMutex
	prescriptions map[uuid.UUID]model.Prescription
}

func NewPrescriptionRepository() *PrescriptionRepository {
	return &PrescriptionRepository{prescriptions: make(map[uuid.UUID]model.Prescription)}
}

type LabReportRepository struct {
	mu      sync.RWMutex
	reports map[uuid.UUID]model.LabReport
}

func NewLabReportRepository() *LabReportRepository {
	return &LabReportRepository{reports: make(map[uuid.UUID]model.LabReport)}
}

type OutboxRepository struct {
	mu     sync.Mutex
	events map[uuid.UUID]model.OutboxEvent
}

func NewOutboxRepository() *OutboxRepository {
	return &OutboxRepository{events: make(map[uuid.UUID]model.OutboxEvent)}
}

var (
	_ repository.PatientRepository       = (*PatientRepository)(nil)
	_ repository.DoctorRepository        = (*DoctorRepository)(nil)
	_ repository.AppointmentRepository   = (*AppointmentRepository)(nil)
	_ repository.MedicalRecordRepository = (*MedicalRecordRepository)(nil)
	_ repository.PrescriptionRepository  = (*PrescriptionRepository)(nil)
	_ repository.LabReportRepository     = (*LabReportRepository)(nil)
	_ repository.OutboxRepository        = (*OutboxRepository)(nil)
)

func sortAppointmentsAsc(appointments []*model.Appointment) {
	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].Datetime.Before(appointments[j].Datetime)
	})
}
