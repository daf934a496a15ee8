package dtos

// CreatePatientRequest defines the payload for creating a new patient.
type CreatePatientRequest struct {
	Name    string `json:"name" validate:"required"`
	Age     int    `json:"age"`
	Gender  string `json:"gender" validate:"required"`
	Contact string `json:"contact" validate:"required"`
}
