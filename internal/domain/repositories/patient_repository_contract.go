package repositories

import (
	"context"

	"clinic-record-service/internal/domain/entities"
)

// PatientRepositoryContract defines the storage operations for patients.
// Lookups are case-insensitive on ID and return ErrRecordNotFound on a miss.
type PatientRepositoryContract interface {
	Create(ctx context.Context, patient *entities.Patient) error
	GetByID(ctx context.Context, id string) (*entities.Patient, error)
	ListAll(ctx context.Context) ([]*entities.Patient, error)
	// AppendNote adds a note to the end of the patient's history and returns the updated patient.
	AppendNote(ctx context.Context, patientID string, text string) (*entities.Patient, error)
}
