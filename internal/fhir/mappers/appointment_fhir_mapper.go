package mappers

import (
	"fmt"

	"clinic-record-service/internal/domain/entities"
)

// FHIRReference points at another resource in the bundle.
type FHIRReference struct {
	Reference string `json:"reference"`
	Display   string `json:"display,omitempty"`
}

// FHIRParticipant is a simplified Appointment.participant entry.
type FHIRParticipant struct {
	Actor  FHIRReference `json:"actor"`
	Status string        `json:"status"` // accepted
}

// FHIRAppointmentResource represents a simplified FHIR Appointment resource.
// Date and time stay free text, so they are carried in Description rather than start/end.
type FHIRAppointmentResource struct {
	ResourceType string            `json:"resourceType"` // "Appointment"
	ID           string            `json:"id,omitempty"`
	Status       string            `json:"status"`
	Description  string            `json:"description,omitempty"`
	Participant  []FHIRParticipant `json:"participant"`
}

// MapAppointmentStatus converts a registry status to the FHIR appointment status code.
func MapAppointmentStatus(status entities.AppointmentStatus) string {
	switch status {
	case entities.StatusScheduled:
		return "booked"
	case entities.StatusCompleted:
		return "fulfilled"
	case entities.StatusCancelled:
		return "cancelled"
	default:
		return "proposed"
	}
}

// BuildAppointmentResource converts an Appointment entity to a FHIR Appointment.
func BuildAppointmentResource(appointment entities.Appointment) (FHIRAppointmentResource, error) {
	if appointment.PatientID == "" || appointment.DoctorID == "" {
		return FHIRAppointmentResource{}, fmt.Errorf("appointment %s has no patient or doctor reference", appointment.ID)
	}
	patientRef := FHIRReference{Reference: "Patient/" + appointment.PatientID}
	if appointment.Patient != nil {
		patientRef.Display = appointment.Patient.Name
	}
	doctorRef := FHIRReference{Reference: "Practitioner/" + appointment.DoctorID}
	if appointment.Doctor != nil {
		doctorRef.Display = appointment.Doctor.Name
	}
	return FHIRAppointmentResource{
		ResourceType: "Appointment",
		ID:           appointment.ID,
		Status:       MapAppointmentStatus(appointment.Status),
		Description:  fmt.Sprintf("%s at %s", appointment.Date, appointment.Time),
		Participant: []FHIRParticipant{
			{Actor: patientRef, Status: "accepted"},
			{Actor: doctorRef, Status: "accepted"},
		},
	}, nil
}
