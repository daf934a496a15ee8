package dtos

import "clinic-record-service/internal/domain/entities"

// AppointmentDTO represents an appointment with its patient and doctor summarised.
type AppointmentDTO struct {
	ID             string `json:"id"`
	PatientID      string `json:"patientId"`
	PatientName    string `json:"patientName,omitempty"`
	DoctorID       string `json:"doctorId"`
	DoctorName     string `json:"doctorName,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Status         string `json:"status"`
}

func NewAppointmentDTO(a *entities.Appointment) AppointmentDTO {
	dto := AppointmentDTO{
		ID:        a.ID,
		PatientID: a.PatientID,
		DoctorID:  a.DoctorID,
		Date:      a.Date,
		Time:      a.Time,
		Status:    string(a.Status),
	}
	if a.Patient != nil {
		dto.PatientName = a.Patient.Name
	}
	if a.Doctor != nil {
		dto.DoctorName = a.Doctor.Name
		dto.Specialization = a.Doctor.Specialization
	}
	return dto
}

func NewAppointmentDTOs(appointments []*entities.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, NewAppointmentDTO(a))
	}
	return out
}
