package dtos

// ScheduleAppointmentRequest defines the payload for booking an appointment.
type ScheduleAppointmentRequest struct {
	PatientID string `json:"patientId" validate:"required"`
	DoctorID  string `json:"doctorId" validate:"required"`
	Date      string `json:"date" validate:"required"` // calendar date, e.g. 2025-12-25
	Time      string `json:"time" validate:"required"` // free-form, e.g. 10:30 AM
}

// UpdateAppointmentStatusRequest defines the payload for a status change.
// Accepted values are matched case-insensitively by the registry.
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AddNoteRequest defines the payload for a manual medical-history note.
type AddNoteRequest struct {
	Text string `json:"text" validate:"required"`
}
