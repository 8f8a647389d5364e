package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/hospitalkit/hospital-api/internal/model"
)

func (r *MedicalRecordRepository) Create(ctx context.Context, record *model.MedicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = *record
	return nil
}

func (r *MedicalRecordRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*model.MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*model.MedicalRecord, 0)
	for _, record := range r.records {
		if record.PatientID != patientID {
			continue
		}
		rec := record
		matched = append(matched, &rec)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].VisitDate.After(matched[j].VisitDate)
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *MedicalRecordRepository) Latest(ctx context.Context, patientID uuid.UUID) (*model.MedicalRecord, error) {
	records, err := r.ListByPatient(ctx, patientID, 1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

func (r *MedicalRecordRepository) CountByPatient(ctx context.Context, patientID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, record := range r.records {
		if record.PatientID == patientID {
			count++
		}
	}
	return count, nil
}

func (r *PrescriptionRepository) Create(ctx context.Context, prescription *model.Prescription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prescriptions[prescription.ID] = *prescription
	return nil
}

func (r *PrescriptionRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, activeOnly bool) ([]*model.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*model.Prescription, 0)
	for _, prescription := range r.prescriptions {
		if prescription.PatientID != patientID {
			continue
		}
		if activeOnly && prescription.Status != model.PrescriptionStatusActive {
			continue
		}
		p := prescription
		matched = append(matched, &p)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].PrescribedAt.After(matched[j].PrescribedAt)
	})
	return matched, nil
}

func (r *PrescriptionRepository) CountActive(ctx context.Context, patientID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, prescription := range r.prescriptions {
		if prescription.PatientID == patientID && prescription.Status == model.PrescriptionStatusActive {
			count++
		}
	}
	return count, nil
}

func (r *LabReportRepository) Create(ctx context.Context, report *model.LabReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[report.ID] = *report
	return nil
}

func (r *LabReportRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*model.LabReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*model.LabReport, 0)
	for _, report := range r.reports {
		if report.PatientID != patientID {
			continue
		}
		rep := report
		matched = append(matched, &rep)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].TestDate.After(matched[j].TestDate)
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}
