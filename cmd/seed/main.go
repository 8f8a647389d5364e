// Command seed bootstraps the schema and loads a realistic sample
// dataset for local development.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hospitalkit/hospital-api/internal/config"
	"github.com/hospitalkit/hospital-api/internal/model"
	"github.com/hospitalkit/hospital-api/internal/repository"
	"github.com/hospitalkit/hospital-api/internal/repository/postgres"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Minute)

	doctors := seedDoctors(ctx, postgres.NewDoctorRepository(db), now)
	patients := seedPatients(ctx, postgres.NewPatientRepository(db), now)
	seedAppointments(ctx, postgres.NewAppointmentRepository(db), patients, doctors, now)
	seedMedicalRecords(ctx, postgres.NewMedicalRecordRepository(db), patients, doctors, now)
	seedPrescriptions(ctx, postgres.NewPrescriptionRepository(db), patients, doctors, now)
	seedLabReports(ctx, postgres.NewLabReportRepository(db), patients, doctors, now)

	log.Info().Msg("seed complete")
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func seedDoctors(ctx context.Context, repo repository.DoctorRepository, now time.Time) []*model.Doctor {
	doctors := []*model.Doctor{
		doctor(now, "Dr. Sarah Johnson", "Cardiology", "Cardiology", "MD, FACC, Board Certified Cardiologist", "+1-555-0101", "sarah.johnson@hospital.com", 15, 150, []string{"Monday", "Wednesday", "Friday"}, "9:00 AM - 5:00 PM"),
		doctor(now, "Dr. Michael Chen", "Pediatrics", "Pediatrics", "MD, FAAP, Pediatric Specialist", "+1-555-0102", "michael.chen@hospital.com", 10, 120, []string{"Tuesday", "Thursday", "Saturday"}, "10:00 AM - 6:00 PM"),
		doctor(now, "Dr. Emily Rodriguez", "Orthopedics", "Orthopedics", "MD, FAAOS, Orthopedic Surgeon", "+1-555-0103", "emily.rodriguez@hospital.com", 12, 180, []string{"Monday", "Tuesday", "Thursday"}, "8:00 AM - 4:00 PM"),
		doctor(now, "Dr. James Wilson", "General Medicine", "Internal Medicine", "MD, Internal Medicine", "+1-555-0104", "james.wilson@hospital.com", 8, 100, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, "9:00 AM - 5:00 PM"),
		doctor(now, "Dr. Lisa Anderson", "Dermatology", "Dermatology", "MD, FAAD, Board Certified Dermatologist", "+1-555-0105", "lisa.anderson@hospital.com", 11, 130, []string{"Wednesday", "Thursday", "Friday"}, "10:00 AM - 6:00 PM"),
		doctor(now, "Dr. Robert Martinez", "Neurology", "Neurology", "MD, PhD, FAAN, Neurologist", "+1-555-0106", "robert.martinez@hospital.com", 18, 200, []string{"Monday", "Wednesday", "Friday"}, "9:00 AM - 3:00 PM"),
		doctor(now, "Dr. Priya Sharma", "Gynecology", "Obstetrics & Gynecology", "MD, FACOG, OB-GYN Specialist", "+1-555-0107", "priya.sharma@hospital.com", 14, 140, []string{"Tuesday", "Thursday", "Saturday"}, "9:00 AM - 5:00 PM"),
		doctor(now, "Dr. David Kim", "Psychiatry", "Mental Health", "MD, Psychiatrist", "+1-555-0108", "david.kim@hospital.com", 9, 160, []string{"Monday", "Tuesday", "Wednesday", "Thursday"}, "11:00 AM - 7:00 PM"),
	}
	for _, d := range doctors {
		if err := repo.Create(ctx, d); err != nil {
			log.Fatal().Err(err).Str("doctor", d.Name).Msg("failed to seed doctor")
		}
	}
	log.Info().Int("count", len(doctors)).Msg("seeded doctors")
	return doctors
}

func doctor(now time.Time, name, specialization, department, qualification, contact, email string, years, fee int, days []string, hours string) *model.Doctor {
	return &model.Doctor{
		Base:            model.Base{ID: uuid.New(), CreatedAt: now},
		Name:            name,
		Specialization:  specialization,
		Department:      department,
		Qualification:   qualification,
		Contact:         contact,
		Email:           email,
		ExperienceYears: years,
		ConsultationFee: intPtr(fee),
		AvailableDays:   days,
		AvailableHours:  strPtr(hours),
	}
}

func seedPatients(ctx context.Context, repo repository.PatientRepository, now time.Time) []*model.Patient {
	patients := []*model.Patient{
		patient(now, "John Smith", 45, "Male", "+1-555-1001", "john.smith@email.com", "123 Oak Street, Springfield, IL 62701", "O+", "+1-555-1002", "Penicillin, Peanuts"),
		patient(now, "Emily Davis", 32, "Female", "+1-555-1003", "emily.davis@email.com", "456 Maple Avenue, Chicago, IL 60601", "A+", "+1-555-1004", "None"),
		patient(now, "Michael Brown", 28, "Male", "+1-555-1005", "michael.brown@email.com", "789 Pine Road, Boston, MA 02101", "B+", "+1-555-1006", "Latex"),
		patient(now, "Sarah Johnson", 55, "Female", "+1-555-1007", "sarah.johnson@email.com", "321 Elm Street, New York, NY 10001", "AB+", "+1-555-1008", "Aspirin, Sulfa drugs"),
		patient(now, "David Martinez", 38, "Male", "+1-555-1009", "david.martinez@email.com", "654 Cedar Lane, Los Angeles, CA 90001", "O-", "+1-555-1010", "None"),
		patient(now, "Jennifer Wilson", 42, "Female", "+1-555-1011", "jennifer.wilson@email.com", "987 Birch Court, Miami, FL 33101", "A-", "+1-555-1012", "Shellfish"),
		patient(now, "Robert Taylor", 67, "Male", "+1-555-1013", "robert.taylor@email.com", "159 Willow Street, Seattle, WA 98101", "B-", "+1-555-1014", "Codeine"),
		patient(now, "Lisa Anderson", 29, "Female", "+1-555-1015", "lisa.anderson@email.com", "753 Spruce Avenue, Austin, TX 78701", "AB-", "+1-555-1016", "None"),
	}
	for _, p := range patients {
		if err := repo.Create(ctx, p); err != nil {
			log.Fatal().Err(err).Str("patient", p.Name).Msg("failed to seed patient")
		}
	}
	log.Info().Int("count", len(patients)).Msg("seeded patients")
	return patients
}

func patient(now time.Time, name string, age int, gender, contact, email, address, bloodGroup, emergency, allergies string) *model.Patient {
	return &model.Patient{
		Base:             model.Base{ID: uuid.New(), CreatedAt: now},
		Name:             name,
		Age:              age,
		Gender:           gender,
		Contact:          contact,
		Email:            strPtr(email),
		Address:          strPtr(address),
		BloodGroup:       strPtr(bloodGroup),
		EmergencyContact: strPtr(emergency),
		Allergies:        strPtr(allergies),
	}
}

func seedAppointments(ctx context.Context, repo repository.AppointmentRepository, patients []*model.Patient, doctors []*model.Doctor, now time.Time) {
	appointments := []*model.Appointment{
		appointment(now, patients[0], doctors[0], now.AddDate(0, 0, -7), "Chest pain and irregular heartbeat", "Shortness of breath, chest discomfort", model.AppointmentStatusCompleted),
		appointment(now, patients[1], doctors[1], now.AddDate(0, 0, -3), "Child's fever and cough", "High temperature, persistent cough", model.AppointmentStatusCompleted),
		appointment(now, patients[2], doctors[2], now.AddDate(0, 0, 2).Add(10*time.Hour), "Knee pain after sports injury", "Swelling, difficulty walking", model.AppointmentStatusScheduled),
		appointment(now, patients[3], doctors[3], now.AddDate(0, 0, 5).Add(14*time.Hour), "Annual health checkup", "None, routine examination", model.AppointmentStatusScheduled),
		appointment(now, patients[4], doctors[4], now.AddDate(0, 0, 1).Add(11*time.Hour), "Skin rash and itching", "Red patches on arms and legs", model.AppointmentStatusConfirmed),
		appointment(now, patients[5], doctors[5], now.AddDate(0, 0, 7).Add(9*time.Hour), "Frequent headaches and dizziness", "Severe migraines, balance issues", model.AppointmentStatusScheduled),
	}
	for _, a := range appointments {
		if err := repo.Create(ctx, a); err != nil {
			log.Fatal().Err(err).Str("patient", a.PatientName).Msg("failed to seed appointment")
		}
	}
	log.Info().Int("count", len(appointments)).Msg("seeded appointments")
}

func appointment(now time.Time, p *model.Patient, d *model.Doctor, at time.Time, reason, symptoms string, status model.AppointmentStatus) *model.Appointment {
	return &model.Appointment{
		Base:        model.Base{ID: uuid.New(), CreatedAt: now},
		PatientID:   p.ID,
		DoctorID:    d.ID,
		PatientName: p.Name,
		DoctorName:  d.Name,
		Datetime:    at,
		Reason:      reason,
		Symptoms:    strPtr(symptoms),
		Status:      status,
	}
}

func seedMedicalRecords(ctx context.Context, repo repository.MedicalRecordRepository, patients []*model.Patient, doctors []*model.Doctor, now time.Time) {
	records := []*model.MedicalRecord{
		{
			Base:        model.Base{ID: uuid.New(), CreatedAt: now.AddDate(0, 0, -7)},
			PatientID:   patients[0].ID,
			PatientName: patients[0].Name,
			DoctorID:    doctors[0].ID,
			DoctorName:  doctors[0].Name,
			VisitDate:   now.AddDate(0, 0, -7),
			Diagnosis:   "Atrial Fibrillation (AFib)",
			Symptoms:    model.StringList{"Chest pain", "Irregular heartbeat", "Shortness of breath"},
			Treatment:   "Prescribed blood thinners and beta-blockers",
			VitalSigns: model.VitalSigns{
				BloodPressure:    "145/92 mmHg",
				HeartRate:        "105 bpm",
				Temperature:      "98.6F",
				OxygenSaturation: "96%",
			},
			Notes: "Patient advised to reduce stress and follow up in 2 weeks. ECG shows irregular rhythm.",
		},
		{
			Base:        model.Base{ID: uuid.New(), CreatedAt: now.AddDate(0, 0, -3)},
			PatientID:   patients[1].ID,
			PatientName: patients[1].Name,
			DoctorID:    doctors[1].ID,
			DoctorName:  doctors[1].Name,
			VisitDate:   now.AddDate(0, 0, -3),
			Diagnosis:   "Acute Bronchitis",
			Symptoms:    model.StringList{"Fever", "Persistent cough", "Fatigue"},
			Treatment:   "Antibiotics and cough suppressant prescribed",
			VitalSigns: model.VitalSigns{
				BloodPressure:    "118/76 mmHg",
				HeartRate:        "88 bpm",
				Temperature:      "100.2F",
				OxygenSaturation: "98%",
			},
			Notes: "Rest recommended. Follow up if symptoms persist beyond 1 week.",
		},
		{
			Base:        model.Base{ID: uuid.New(), CreatedAt: now.AddDate(0, 0, -30)},
			PatientID:   patients[0].ID,
			PatientName: patients[0].Name,
			DoctorID:    doctors[3].ID,
			DoctorName:  doctors[3].Name,
			VisitDate:   now.AddDate(0, 0, -30),
			Diagnosis:   "Hypertension",
			Symptoms:    model.StringList{"High blood pressure", "Occasional headaches"},
			Treatment:   "Lifestyle modifications and ACE inhibitors",
			VitalSigns: model.VitalSigns{
				BloodPressure:    "150/95 mmHg",
				HeartRate:        "78 bpm",
				Temperature:      "98.4F",
				OxygenSaturation: "97%",
			},
			Notes: "Patient advised on diet and exercise. Monthly monitoring required.",
		},
	}
	for _, r := range records {
		if err := repo.Create(ctx, r); err != nil {
			log.Fatal().Err(err).Str("patient", r.PatientName).Msg("failed to seed medical record")
		}
	}
	log.Info().Int("count", len(records)).Msg("seeded medical records")
}

func seedPrescriptions(ctx context.Context, repo repository.PrescriptionRepository, patients []*model.Patient, doctors []*model.Doctor, now time.Time) {
	prescriptions := []*model.Prescription{
		{
			Base:         model.Base{ID: uuid.New(), CreatedAt: now.AddDate(0, 0, -7)},
			PatientID:    patients[0].ID,
			DoctorID:     doctors[0].ID,
			DoctorName:   doctors[0].Name,
			PrescribedAt: now.AddDate(0, 0, -7),
			Medications: model.Medications{
				{Name: "Warfarin", Dosage: "5mg", Frequency: "Once daily", Duration: "3 months", Instructions: "Take with food"},
				{Name: "Metoprolol", Dosage: "50mg", Frequency: "Twice daily", Duration: "3 months", Instructions: "Take morning and evening"},
			},
			Status: model.PrescriptionStatusActive,
			Notes:  "Monitor INR levels weekly",
		},
		{
			Base:         model.Base{ID: uuid.New(), CreatedAt: now.AddDate(0, 0, -3)},
			PatientID:    patients[1].ID,
			DoctorID:     doctors[1].ID,
			DoctorName:   doctors[1].Name,
			PrescribedAt: now.AddDate(0, 0, -3),
			Medications: model.Medications{
				{Name: "Amoxicillin", Dosage: "500mg", Frequency: "Three times daily", Duration: "7 days", Instructions: "Complete full course"},
				{Name: "Dextromethorphan", Dosage: "10ml", Frequency: "Every 6 hours", Duration: "5 days", Instructions: "Take as needed for cough"},
			},
			Status: model.PrescriptionStatusActive,
			Notes:  "Complete antibiotic course even if feeling better",
		},
		{
			Base:         model.Base{ID: uuid.New(), CreatedAt: now.AddDate(0, 0, -30)},
			PatientID:    patients[0].ID,
			DoctorID:     doctors[3].ID,
			DoctorName:   doctors[3].Name,
			PrescribedAt: now.AddDate(0, 0, -30),
			Medications: model.Medications{
				{Name: "Lisinopril", Dosage: "10mg", Frequency: "Once daily", Duration: "6 months", Instructions: "Take in the morning"},
			},
			Status: model.PrescriptionStatusActive,
			Notes:  "Monitor blood pressure at home",
		},
	}
	for _, p := range prescriptions {
		if err := repo.Create(ctx, p); err != nil {
			log.Fatal().Err(err).Msg("failed to seed prescription")
		}
	}
	log.Info().Int("count", len(prescriptions)).Msg("seeded prescriptions")
}

func seedLabReports(ctx context.Context, repo repository.LabReportRepository, patients []*model.Patient, doctors []*model.Doctor, now time.Time) {
	reports := []*model.LabReport{
		{
			Base:      model.Base{ID: uuid.New(), CreatedAt: now.AddDate(0, 0, -7)},
			PatientID: patients[0].ID,
			DoctorID:  doctors[0].ID,
			TestName:  "Electrocardiogram (ECG)",
			TestType:  "Cardiac",
			TestDate:  now.AddDate(0, 0, -7),
			Results: model.JSONMap{
				"finding":        "Atrial Fibrillation detected",
				"heart_rate":     "105 bpm (irregular)",
				"interpretation": "Abnormal rhythm pattern consistent with AFib",
			},
			Status: "completed",
			Notes:  "Urgent cardiology follow-up recommended",
		},
		{
			Base:      model.Base{ID: uuid.New(), CreatedAt: now.AddDate(0, 0, -30)},
			PatientID: patients[0].ID,
			DoctorID:  doctors[3].ID,
			TestName:  "Lipid Panel",
			TestType:  "Blood Chemistry",
			TestDate:  now.AddDate(0, 0, -30),
			Results: model.JSONMap{
				"total_cholesterol": "245 mg/dL (High)",
				"ldl":               "160 mg/dL (High)",
				"hdl":               "45 mg/dL (Low)",
				"triglycerides":     "200 mg/dL (High)",
			},
			Status: "completed",
			Notes:  "Lifestyle modifications and possible statin therapy recommended",
		},
		{
			Base:      model.Base{ID: uuid.New(), CreatedAt: now.AddDate(0, 0, -3)},
			PatientID: patients[1].ID,
			DoctorID:  doctors[1].ID,
			TestName:  "Chest X-Ray",
			TestType:  "Radiology",
			TestDate:  now.AddDate(0, 0, -3),
			Results: model.JSONMap{
				"finding":        "Mild bronchial thickening",
				"interpretation": "Consistent with acute bronchitis, no pneumonia",
			},
			Status: "completed",
			Notes:  "Antibiotic therapy appropriate",
		},
	}
	for _, r := range reports {
		if err := repo.Create(ctx, r); err != nil {
			log.Fatal().Err(err).Msg("failed to seed lab report")
		}
	}
	log.Info().Int("count", len(reports)).Msg("seeded lab reports")
}
