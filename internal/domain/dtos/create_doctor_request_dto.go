package dtos

// CreateDoctorRequest defines the payload for registering a doctor.
type CreateDoctorRequest struct {
	Name           string `json:"name" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
	Contact        string `json:"contact" validate:"required"`
}
