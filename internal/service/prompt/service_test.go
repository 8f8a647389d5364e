package prompt_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/hospitalkit/hospital-api/internal/model"
	"github.com/hospitalkit/hospital-api/internal/service/prompt"
)

func TestCheckupReminder(t *testing.T) {
	svc := prompt.NewService()

	reminder := svc.CheckupReminder("John Smith")
	assert.Contains(t, reminder, "Dear John Smith,")
	assert.Contains(t, reminder, "Regular Check-ups")
}

func TestAppointmentPreparation(t *testing.T) {
	svc := prompt.NewService()

	assert.Contains(t, svc.AppointmentPreparation(prompt.PreparationLab), "Fasting")
	assert.Contains(t, svc.AppointmentPreparation(prompt.PreparationSpecialist), "Referral letter")
	assert.Contains(t, svc.AppointmentPreparation(prompt.PreparationGeneral), "insurance card")

	// Unknown kinds fall back to the general template.
	assert.Equal(t, svc.AppointmentPreparation(prompt.PreparationGeneral), svc.AppointmentPreparation("surgery"))
}

func TestRenderPatient(t *testing.T) {
	svc := prompt.NewService()

	bloodGroup := "O+"
	rendered := svc.RenderPatient(&model.Patient{
		Base:       model.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		Name:       "John Smith",
		Age:        45,
		Gender:     "Male",
		Contact:    "+1-555-1001",
		BloodGroup: &bloodGroup,
	})

	assert.Contains(t, rendered, "Patient Profile")
	assert.Contains(t, rendered, "Name: John Smith")
	assert.Contains(t, rendered, "Blood Group: O+")
	assert.Contains(t, rendered, "Allergies: None recorded")
	assert.Contains(t, rendered, "Email: N/A")
}

func TestRenderAppointment(t *testing.T) {
	svc := prompt.NewService()

	at := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	rendered := svc.RenderAppointment(&model.Appointment{
		Base:        model.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		PatientName: "John Smith",
		DoctorName:  "Dr. Sarah Johnson",
		Datetime:    at,
		Reason:      "Chest pain",
		Status:      model.AppointmentStatusScheduled,
	})

	assert.Contains(t, rendered, "Appointment Details")
	assert.Contains(t, rendered, "Patient: John Smith")
	assert.Contains(t, rendered, "Doctor: Dr. Sarah Johnson")
	assert.Contains(t, rendered, "Date & Time: 2026-03-15 10:30")
	assert.Contains(t, rendered, "Status: scheduled")
	assert.Contains(t, rendered, "Symptoms: N/A")
}
