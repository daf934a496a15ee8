package repositories

import (
	"context"
	"sync"

	"clinic-record-service/internal/domain/entities"
)

var _ DoctorRepositoryContract = (*InMemoryDoctorRepository)(nil)

// InMemoryDoctorRepository keeps doctors in a map plus an insertion-ordered slice.
type InMemoryDoctorRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entities.Doctor
	order []*entities.Doctor
}

func NewInMemoryDoctorRepository() *InMemoryDoctorRepository {
	return &InMemoryDoctorRepository{byID: make(map[string]*entities.Doctor)}
}

func (r *InMemoryDoctorRepository) Create(ctx context.Context, doctor *entities.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := NormalizeID(doctor.ID)
	if _, exists := r.byID[key]; exists {
		return ErrDuplicateID
	}
	stored := doctor.Clone()
	r.byID[key] = stored
	r.order = append(r.order, stored)
	return nil
}

func (r *InMemoryDoctorRepository) GetByID(ctx context.Context, id string) (*entities.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[NormalizeID(id)]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return d.Clone(), nil
}

func (r *InMemoryDoctorRepository) ListAll(ctx context.Context) ([]*entities.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entities.Doctor, 0, len(r.order))
	for _, d := range r.order {
		out = append(out, d.Clone())
	}
	return out, nil
}
