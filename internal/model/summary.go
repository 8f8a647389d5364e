package model

// HealthSummary aggregates independent read queries; no cross-consistency
// guarantee holds between the counters.
type HealthSummary struct {
	PatientName          string         `json:"patient_name"`
	TotalVisits          int            `json:"total_visits"`
	UpcomingAppointments int            `json:"upcoming_appointments"`
	ActivePrescriptions  int            `json:"active_prescriptions"`
	LastVisit            *MedicalRecord `json:"last_visit"`
	BloodGroup           *string        `json:"blood_group,omitempty"`
	Allergies            *string        `json:"allergies,omitempty"`
}
