package model

type Doctor struct {
	Base
	Name            string     `db:"name" json:"name"`
	Specialization  string     `db:"specialization" json:"specialization"`
	Department      string     `db:"department" json:"department"`
	Qualification   string     `db:"qualification" json:"qualification"`
	Contact         string     `db:"contact" json:"contact"`
	Email           string     `db:"email" json:"email"`
	ExperienceYears int        `db:"experience_years" json:"experience_years"`
	ConsultationFee *int       `db:"consultation_fee" json:"consultation_fee,omitempty"`
	AvailableDays   StringList `db:"available_days" json:"available_days,omitempty"`
	AvailableHours  *string    `db:"available_hours" json:"available_hours,omitempty"`
}

// DoctorFilters matches case-insensitively on any combination of fields.
type DoctorFilters struct {
	Specialization string `form:"specialization"`
	Department     string `form:"department"`
	Name           string `form:"name"`
}
