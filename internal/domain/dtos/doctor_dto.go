package dtos

import "clinic-record-service/internal/domain/entities"

// DoctorDTO represents doctor data in API responses.
type DoctorDTO struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Contact        string `json:"contact"`
}

func NewDoctorDTO(d *entities.Doctor) DoctorDTO {
	return DoctorDTO{ID: d.ID, Name: d.Name, Specialization: d.Specialization, Contact: d.Contact}
}

func NewDoctorDTOs(doctors []*entities.Doctor) []DoctorDTO {
	out := make([]DoctorDTO, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, NewDoctorDTO(d))
	}
	return out
}
