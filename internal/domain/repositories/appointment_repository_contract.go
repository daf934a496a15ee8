package repositories

import (
	"context"

	"clinic-record-service/internal/domain/entities"
)

// AppointmentRepositoryContract defines the storage operations for appointments.
// Every returned appointment has its Patient and Doctor references populated.
type AppointmentRepositoryContract interface {
	// Create stores the appointment and, when historyNote is not empty, appends
	// it to the patient's history. Either both writes happen or neither does.
	Create(ctx context.Context, appointment *entities.Appointment, historyNote string) (*entities.Appointment, error)
	GetByID(ctx context.Context, id string) (*entities.Appointment, error)
	ListAll(ctx context.Context) ([]*entities.Appointment, error)
	FindByPatientID(ctx context.Context, patientID string) ([]*entities.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]*entities.Appointment, error)
	// UpdateStatus replaces the status with the same all-or-nothing note handling as Create.
	UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus, historyNote string) (*entities.Appointment, error)
}
