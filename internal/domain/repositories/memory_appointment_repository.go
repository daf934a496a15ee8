package repositories

import (
	"context"
	"sync"

	"clinic-record-service/internal/domain/entities"
)

var _ AppointmentRepositoryContract = (*InMemoryAppointmentRepository)(nil)

// InMemoryAppointmentRepository keeps appointments in a map plus an insertion-ordered slice.
// Only the appointment row is stored; Patient and Doctor are loaded from their
// repositories on every read, and history notes are written through patients.
type InMemoryAppointmentRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entities.Appointment
	order []*entities.Appointment

	patients PatientRepositoryContract
	doctors  DoctorRepositoryContract
}

func NewInMemoryAppointmentRepository(patients PatientRepositoryContract, doctors DoctorRepositoryContract) *InMemoryAppointmentRepository {
	return &InMemoryAppointmentRepository{
		byID:     make(map[string]*entities.Appointment),
		patients: patients,
		doctors:  doctors,
	}
}

func (r *InMemoryAppointmentRepository) Create(ctx context.Context, appointment *entities.Appointment, historyNote string) (*entities.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := NormalizeID(appointment.ID)
	if _, exists := r.byID[key]; exists {
		return nil, ErrDuplicateID
	}
	// The note is the only step that can fail, so it goes first.
	if historyNote != "" {
		if _, err := r.patients.AppendNote(ctx, appointment.PatientID, historyNote); err != nil {
			return nil, err
		}
	}
	stored := appointment.Clone()
	stored.Patient, stored.Doctor = nil, nil
	r.byID[key] = stored
	r.order = append(r.order, stored)
	return r.load(ctx, stored), nil
}

func (r *InMemoryAppointmentRepository) GetByID(ctx context.Context, id string) (*entities.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[NormalizeID(id)]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return r.load(ctx, a), nil
}

func (r *InMemoryAppointmentRepository) ListAll(ctx context.Context) ([]*entities.Appointment, error) {
	return r.filter(ctx, func(*entities.Appointment) bool { return true }), nil
}

func (r *InMemoryAppointmentRepository) FindByPatientID(ctx context.Context, patientID string) ([]*entities.Appointment, error) {
	key := NormalizeID(patientID)
	return r.filter(ctx, func(a *entities.Appointment) bool { return NormalizeID(a.PatientID) == key }), nil
}

func (r *InMemoryAppointmentRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]*entities.Appointment, error) {
	key := NormalizeID(doctorID)
	return r.filter(ctx, func(a *entities.Appointment) bool { return NormalizeID(a.DoctorID) == key }), nil
}

func (r *InMemoryAppointmentRepository) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus, historyNote string) (*entities.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[NormalizeID(id)]
	if !ok {
		return nil, ErrRecordNotFound
	}
	if historyNote != "" {
		if _, err := r.patients.AppendNote(ctx, a.PatientID, historyNote); err != nil {
			return nil, err
		}
	}
	a.SetStatus(status)
	return r.load(ctx, a), nil
}

// load returns a copy of a with its references resolved. Callers hold r.mu.
func (r *InMemoryAppointmentRepository) load(ctx context.Context, a *entities.Appointment) *entities.Appointment {
	out := a.Clone()
	if p, err := r.patients.GetByID(ctx, a.PatientID); err == nil {
		out.Patient = p
	}
	if d, err := r.doctors.GetByID(ctx, a.DoctorID); err == nil {
		out.Doctor = d
	}
	return out
}

// filter returns matches in insertion order; never nil.
func (r *InMemoryAppointmentRepository) filter(ctx context.Context, match func(*entities.Appointment) bool) []*entities.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entities.Appointment, 0, len(r.order))
	for _, a := range r.order {
		if match(a) {
			out = append(out, r.load(ctx, a))
		}
	}
	return out
}
