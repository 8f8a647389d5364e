// Package prompt renders patient-facing text: reminder and
// preparation templates plus plain-text record summaries.
package prompt

import (
	"fmt"
	"strings"

	"github.com/hospitalkit/hospital-api/internal/model"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// PreparationKind selects an appointment preparation template.
// Unknown kinds fall back to the general template.
const (
	PreparationGeneral    = "general"
	PreparationLab        = "lab"
	PreparationSpecialist = "specialist"
)

func (s *Service) CheckupReminder(patientName string) string {
	return fmt.Sprintf(`Dear %s,

This is a friendly reminder about maintaining your health:

1. Regular Check-ups: Schedule routine health screenings
2. Medication Adherence: Take prescribed medicines on time
3. Healthy Lifestyle: Maintain proper diet and exercise
4. Follow-up Visits: Don't miss scheduled appointments

Would you like to:
- Book a general health checkup?
- Review your upcoming appointments?
- Check your active prescriptions?

Stay healthy and take care!
`, patientName)
}

func (s *Service) AppointmentPreparation(kind string) string {
	switch strings.ToLower(kind) {
	case PreparationLab:
		return `Preparing for Lab Tests:

1. Fasting: Check if you need to fast (usually 8-12 hours)
2. Medications: Ask if you should take regular meds
3. Hydration: Drink water unless instructed otherwise
4. Clothing: Wear loose, comfortable clothing
5. Documentation: Bring prescription and ID

Remember to collect your reports on time!
`
	case PreparationSpecialist:
		return `Preparing for Specialist Visit:

1. Referral letter from primary doctor
2. Complete medical history
3. Previous test results and imaging
4. List of current medications
5. Insurance pre-authorization (if required)

Prepare detailed questions about:
- Diagnosis and treatment options
- Potential side effects
- Expected outcomes
- Follow-up schedule
`
	default:
		return `Preparing for Your Appointment:

1. Bring your ID and insurance card
2. List current medications and allergies
3. Write down symptoms and questions
4. Arrive 15 minutes early
5. Bring previous medical records if available

What to tell your doctor:
- Current symptoms and when they started
- Medications you're taking
- Family medical history
- Lifestyle factors (diet, exercise, stress)
`
	}
}

func (s *Service) RenderPatient(p *model.Patient) string {
	var b strings.Builder
	b.WriteString("Patient Profile\n")
	b.WriteString("===============\n")
	fmt.Fprintf(&b, "ID: %s\n", p.ID)
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Age: %d\n", p.Age)
	fmt.Fprintf(&b, "Gender: %s\n", p.Gender)
	fmt.Fprintf(&b, "Contact: %s\n", p.Contact)
	fmt.Fprintf(&b, "Email: %s\n", orDefault(p.Email, "N/A"))
	fmt.Fprintf(&b, "Blood Group: %s\n", orDefault(p.BloodGroup, "N/A"))
	fmt.Fprintf(&b, "Allergies: %s\n", orDefault(p.Allergies, "None recorded"))
	fmt.Fprintf(&b, "Emergency Contact: %s\n", orDefault(p.EmergencyContact, "N/A"))
	return b.String()
}

func (s *Service) RenderAppointment(a *model.Appointment) string {
	var b strings.Builder
	b.WriteString("Appointment Details\n")
	b.WriteString("==================\n")
	fmt.Fprintf(&b, "ID: %s\n", a.ID)
	fmt.Fprintf(&b, "Patient: %s\n", a.PatientName)
	fmt.Fprintf(&b, "Doctor: %s\n", a.DoctorName)
	fmt.Fprintf(&b, "Date & Time: %s\n", a.Datetime.UTC().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Reason: %s\n", a.Reason)
	fmt.Fprintf(&b, "Status: %s\n", a.Status)
	fmt.Fprintf(&b, "Symptoms: %s\n", orDefault(a.Symptoms, "N/A"))
	return b.String()
}

func orDefault(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}
