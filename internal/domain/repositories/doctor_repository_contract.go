package repositories

import (
	"context"

	"clinic-record-service/internal/domain/entities"
)

// DoctorRepositoryContract defines the storage operations for doctors.
type DoctorRepositoryContract interface {
	Create(ctx context.Context, doctor *entities.Doctor) error
	GetByID(ctx context.Context, id string) (*entities.Doctor, error)
	ListAll(ctx context.Context) ([]*entities.Doctor, error)
}
