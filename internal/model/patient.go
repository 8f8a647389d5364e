package model

type Patient struct {
	Base
	Name             string  `db:"name" json:"name"`
	Age              int     `db:"age" json:"age"`
	Gender           string  `db:"gender" json:"gender"`
	Contact          string  `db:"contact" json:"contact"`
	Email            *string `db:"email" json:"email,omitempty"`
	Address          *string `db:"address" json:"address,omitempty"`
	BloodGroup       *string `db:"blood_group" json:"blood_group,omitempty"`
	EmergencyContact *string `db:"emergency_contact" json:"emergency_contact,omitempty"`
	Allergies        *string `db:"allergies" json:"allergies,omitempty"`
}

type RegisterPatientRequest struct {
	Name             string  `json:"name" binding:"required" validate:"required"`
	Age              int     `json:"age" binding:"required,gt=0" validate:"required,gt=0"`
	Gender           string  `json:"gender" binding:"required" validate:"required"`
	Contact          string  `json:"contact" binding:"required" validate:"required"`
	Email            *string `json:"email" binding:"omitempty,email" validate:"omitempty,email"`
	Address          *string `json:"address"`
	BloodGroup       *string `json:"blood_group"`
	EmergencyContact *string `json:"emergency_contact"`
	Allergies        *string `json:"allergies"`
}

// UpdatePatientRequest is a patch: nil fields are left untouched.
type UpdatePatientRequest struct {
	Email            *string `json:"email" binding:"omitempty,email" validate:"omitempty,email"`
	Contact          *string `json:"contact"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergency_contact"`
	Allergies        *string `json:"allergies"`
}

func (r *UpdatePatientRequest) Empty() bool {
	return r.Email == nil && r.Contact == nil && r.Address == nil &&
		r.EmergencyContact == nil && r.Allergies == nil
}
