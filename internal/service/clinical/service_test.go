package clinical_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitalkit/hospital-api/internal/model"
	"github.com/hospitalkit/hospital-api/internal/repository/memory"
	"github.com/hospitalkit/hospital-api/internal/service/clinical"
	"github.com/hospitalkit/hospital-api/internal/service/identity"
	apperrors "github.com/hospitalkit/hospital-api/pkg/errors"
)

type fixture struct {
	svc           *clinical.Service
	records       *memory.MedicalRecordRepository
	prescriptions *memory.PrescriptionRepository
	labReports    *memory.LabReportRepository
	appointments  *memory.AppointmentRepository
	patient       *model.Patient
	doctor        *model.Doctor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	patients := memory.NewPatientRepository()
	doctors := memory.NewDoctorRepository()
	records := memory.NewMedicalRecordRepository()
	prescriptions := memory.NewPrescriptionRepository()
	labReports := memory.NewLabReportRepository()
	appointments := memory.NewAppointmentRepository()

	bloodGroup := "O+"
	allergies := "Penicillin"
	patient := &model.Patient{
		Base:       model.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		Name:       "John Smith",
		Age:        45,
		Gender:     "Male",
		Contact:    "+1-555-1001",
		BloodGroup: &bloodGroup,
		Allergies:  &allergies,
	}
	require.NoError(t, patients.Create(ctx, patient))

	doctor := &model.Doctor{
		Base:           model.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		Name:           "Dr. Sarah Johnson",
		Specialization: "Cardiology",
		Department:     "Cardiology",
		Qualification:  "MD",
		Contact:        "+1-555-0101",
		Email:          "sarah.johnson@hospital.com",
	}
	require.NoError(t, doctors.Create(ctx, doctor))

	svc := clinical.NewService(records, prescriptions, labReports, appointments, identity.NewService(patients, doctors))
	return &fixture{
		svc:           svc,
		records:       records,
		prescriptions: prescriptions,
		labReports:    labReports,
		appointments:  appointments,
		patient:       patient,
		doctor:        doctor,
	}
}

func (f *fixture) addRecord(t *testing.T, daysAgo int, diagnosis string) *model.MedicalRecord {
	t.Helper()
	record := &model.MedicalRecord{
		Base:        model.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		PatientID:   f.patient.ID,
		PatientName: f.patient.Name,
		DoctorID:    f.doctor.ID,
		DoctorName:  f.doctor.Name,
		VisitDate:   time.Now().UTC().AddDate(0, 0, -daysAgo),
		Diagnosis:   diagnosis,
		Symptoms:    model.StringList{"Fatigue"},
		Treatment:   "Rest",
	}
	require.NoError(t, f.records.Create(context.Background(), record))
	return record
}

func (f *fixture) addPrescription(t *testing.T, daysAgo int, status model.PrescriptionStatus) *model.Prescription {
	t.Helper()
	prescription := &model.Prescription{
		Base:         model.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		PatientID:    f.patient.ID,
		DoctorID:     f.doctor.ID,
		DoctorName:   f.doctor.Name,
		PrescribedAt: time.Now().UTC().AddDate(0, 0, -daysAgo),
		Medications: model.Medications{
			{Name: "Lisinopril", Dosage: "10mg", Frequency: "Once daily", Duration: "6 months"},
		},
		Status: status,
	}
	require.NoError(t, f.prescriptions.Create(context.Background(), prescription))
	return prescription
}

func TestMedicalHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	old := f.addRecord(t, 30, "Hypertension")
	recent := f.addRecord(t, 7, "Atrial Fibrillation")

	history, err := f.svc.MedicalHistory(ctx, f.patient.ID.String(), 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, recent.ID, history[0].ID)
	assert.Equal(t, old.ID, history[1].ID)

	limited, err := f.svc.MedicalHistory(ctx, f.patient.ID.String(), 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, recent.ID, limited[0].ID)

	_, err = f.svc.MedicalHistory(ctx, uuid.New().String(), 0)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = f.svc.MedicalHistory(ctx, "bogus", 0)
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestMedicalHistoryDefaultLimit(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 15; i++ {
		f.addRecord(t, i+1, "Visit")
	}

	history, err := f.svc.MedicalHistory(context.Background(), f.patient.ID.String(), 0)
	require.NoError(t, err)
	assert.Len(t, history, 10)
}

func TestPrescriptions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	active := f.addPrescription(t, 3, model.PrescriptionStatusActive)
	completed := f.addPrescription(t, 30, model.PrescriptionStatusCompleted)

	activeOnly, err := f.svc.Prescriptions(ctx, f.patient.ID.String(), true)
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, active.ID, activeOnly[0].ID)

	all, err := f.svc.Prescriptions(ctx, f.patient.ID.String(), false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, active.ID, all[0].ID)
	assert.Equal(t, completed.ID, all[1].ID)
}

func TestLabReports(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	old := &model.LabReport{
		Base:      model.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		PatientID: f.patient.ID,
		DoctorID:  f.doctor.ID,
		TestName:  "Lipid Panel",
		TestType:  "Blood Chemistry",
		TestDate:  time.Now().UTC().AddDate(0, 0, -30),
		Status:    "completed",
	}
	require.NoError(t, f.labReports.Create(ctx, old))

	recent := &model.LabReport{
		Base:      model.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		PatientID: f.patient.ID,
		DoctorID:  f.doctor.ID,
		TestName:  "ECG",
		TestType:  "Cardiac",
		TestDate:  time.Now().UTC().AddDate(0, 0, -7),
		Results:   model.JSONMap{"finding": "Atrial Fibrillation detected"},
		Status:    "completed",
	}
	require.NoError(t, f.labReports.Create(ctx, recent))

	reports, err := f.svc.LabReports(ctx, f.patient.ID.String(), 0)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, recent.ID, reports[0].ID)
	assert.Equal(t, old.ID, reports[1].ID)
}

func TestHealthSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addRecord(t, 30, "Hypertension")
	latest := f.addRecord(t, 7, "Atrial Fibrillation")
	f.addPrescription(t, 3, model.PrescriptionStatusActive)
	f.addPrescription(t, 30, model.PrescriptionStatusDiscontinued)

	upcoming := &model.Appointment{
		Base:        model.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		PatientID:   f.patient.ID,
		DoctorID:    f.doctor.ID,
		PatientName: f.patient.Name,
		DoctorName:  f.doctor.Name,
		Datetime:    time.Now().UTC().AddDate(0, 0, 2),
		Reason:      "Follow-up",
		Status:      model.AppointmentStatusScheduled,
	}
	require.NoError(t, f.appointments.Create(ctx, upcoming))

	past := &model.Appointment{
		Base:        model.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		PatientID:   f.patient.ID,
		DoctorID:    f.doctor.ID,
		PatientName: f.patient.Name,
		DoctorName:  f.doctor.Name,
		Datetime:    time.Now().UTC().AddDate(0, 0, -7),
		Reason:      "Checkup",
		Status:      model.AppointmentStatusCompleted,
	}
	require.NoError(t, f.appointments.Create(ctx, past))

	summary, err := f.svc.HealthSummary(ctx, f.patient.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "John Smith", summary.PatientName)
	assert.Equal(t, 2, summary.TotalVisits)
	assert.Equal(t, 1, summary.UpcomingAppointments)
	assert.Equal(t, 1, summary.ActivePrescriptions)
	require.NotNil(t, summary.LastVisit)
	assert.Equal(t, latest.ID, summary.LastVisit.ID)
	require.NotNil(t, summary.BloodGroup)
	assert.Equal(t, "O+", *summary.BloodGroup)
	require.NotNil(t, summary.Allergies)
	assert.Equal(t, "Penicillin", *summary.Allergies)

	_, err = f.svc.HealthSummary(ctx, uuid.New().String())
	assert.True(t, apperrors.IsNotFound(err))
}

func TestHealthSummaryEmptyPatient(t *testing.T) {
	f := newFixture(t)

	summary, err := f.svc.HealthSummary(context.Background(), f.patient.ID.String())
	require.NoError(t, err)
	assert.Zero(t, summary.TotalVisits)
	assert.Zero(t, summary.UpcomingAppointments)
	assert.Zero(t, summary.ActivePrescriptions)
	assert.Nil(t, summary.LastVisit)
}
