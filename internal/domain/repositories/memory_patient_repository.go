package repositories

import (
	"context"
	"sync"

	"clinic-record-service/internal/domain/entities"
)

// Compile-time check to ensure InMemoryPatientRepository implements PatientRepositoryContract
var _ PatientRepositoryContract = (*InMemoryPatientRepository)(nil)

// InMemoryPatientRepository keeps patients in a map plus an insertion-ordered slice.
// Stored patients are private copies; callers always receive clones.
type InMemoryPatientRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entities.Patient
	order []*entities.Patient
}

// NewInMemoryPatientRepository creates an empty repository.
func NewInMemoryPatientRepository() *InMemoryPatientRepository {
	return &InMemoryPatientRepository{byID: make(map[string]*entities.Patient)}
}

func (r *InMemoryPatientRepository) Create(ctx context.Context, patient *entities.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := NormalizeID(patient.ID)
	if _, exists := r.byID[key]; exists {
		return ErrDuplicateID
	}
	stored := patient.Clone()
	r.byID[key] = stored
	r.order = append(r.order, stored)
	return nil
}

func (r *InMemoryPatientRepository) GetByID(ctx context.Context, id string) (*entities.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[NormalizeID(id)]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return p.Clone(), nil
}

func (r *InMemoryPatientRepository) ListAll(ctx context.Context) ([]*entities.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entities.Patient, 0, len(r.order))
	for _, p := range r.order {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (r *InMemoryPatientRepository) AppendNote(ctx context.Context, patientID string, text string) (*entities.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[NormalizeID(patientID)]
	if !ok {
		return nil, ErrRecordNotFound
	}
	if err := p.AddNote(text); err != nil {
		return nil, err
	}
	return p.Clone(), nil
}
