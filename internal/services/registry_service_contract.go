package services

import (
	"context"

	"clinic-record-service/internal/domain/entities"
)

// RegistryServiceContract defines the operations of the clinic registry, the
// single owner of patients, doctors and appointments.
type RegistryServiceContract interface {
	// CreatePatient stores a new patient whose history starts with the creation note.
	CreatePatient(ctx context.Context, name string, age int, gender, contact string) (*entities.Patient, error)
	// CreateDoctor stores a new doctor.
	CreateDoctor(ctx context.Context, name, specialization, contact string) (*entities.Doctor, error)

	ListPatients(ctx context.Context) ([]*entities.Patient, error)
	ListDoctors(ctx context.Context) ([]*entities.Doctor, error)

	// FindPatientByID and FindDoctorByID match IDs case-insensitively. A miss is
	// reported through the boolean, never as an error.
	FindPatientByID(ctx context.Context, id string) (*entities.Patient, bool)
	FindDoctorByID(ctx context.Context, id string) (*entities.Doctor, bool)

	// ScheduleAppointment books a Scheduled appointment and appends a derived
	// note to the patient's history. Unknown IDs yield *entities.ReferenceError.
	ScheduleAppointment(ctx context.Context, patientID, doctorID, date, timeOfDay string) (*entities.Appointment, error)

	ListAppointments(ctx context.Context) ([]*entities.Appointment, error)
	ListAppointmentsByDoctor(ctx context.Context, doctorID string) ([]*entities.Appointment, error)
	ListAppointmentsByPatient(ctx context.Context, patientID string) ([]*entities.Appointment, error)

	// UpdateAppointmentStatus replaces the status. Every transition to Completed
	// appends a derived note to the patient's history.
	UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) (*entities.Appointment, error)

	AddPatientNote(ctx context.Context, patientID, text string) (*entities.Patient, error)
	GetPatientHistory(ctx context.Context, patientID string) ([]entities.HistoryNote, error)
}
