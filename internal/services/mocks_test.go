package services

import (
	"context"
	"errors"
	"sync/atomic"

	"clinic-record-service/internal/domain/entities"
	"clinic-record-service/internal/domain/repositories"
)

// --- MockPatientRepository ---
// Compile-time check to ensure MockPatientRepository implements PatientRepositoryContract
var _ repositories.PatientRepositoryContract = (*MockPatientRepository)(nil)

// MockPatientRepository is a func-field mock of PatientRepositoryContract.
type MockPatientRepository struct {
	CreateFunc     func(ctx context.Context, patient *entities.Patient) error
	GetByIDFunc    func(ctx context.Context, id string) (*entities.Patient, error)
	ListAllFunc    func(ctx context.Context) ([]*entities.Patient, error)
	AppendNoteFunc func(ctx context.Context, patientID, text string) (*entities.Patient, error)

	CreateFuncCallCount int32
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *entities.Patient) error {
	atomic.AddInt32(&m.CreateFuncCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id string) (*entities.Patient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrRecordNotFound
}

func (m *MockPatientRepository) ListAll(ctx context.Context) ([]*entities.Patient, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockPatientRepository) AppendNote(ctx context.Context, patientID, text string) (*entities.Patient, error) {
	if m.AppendNoteFunc != nil {
		return m.AppendNoteFunc(ctx, patientID, text)
	}
	return nil, errors.New("AppendNoteFunc not implemented in mock")
}

// --- MockDoctorRepository ---
var _ repositories.DoctorRepositoryContract = (*MockDoctorRepository)(nil)

type MockDoctorRepository struct {
	CreateFunc  func(ctx context.Context, doctor *entities.Doctor) error
	GetByIDFunc func(ctx context.Context, id string) (*entities.Doctor, error)
	ListAllFunc func(ctx context.Context) ([]*entities.Doctor, error)
}

func (m *MockDoctorRepository) Create(ctx context.Context, doctor *entities.Doctor) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doctor)
	}
	return nil
}

func (m *MockDoctorRepository) GetByID(ctx context.Context, id string) (*entities.Doctor, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrRecordNotFound
}

func (m *MockDoctorRepository) ListAll(ctx context.Context) ([]*entities.Doctor, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

// --- MockAppointmentRepository ---
var _ repositories.AppointmentRepositoryContract = (*MockAppointmentRepository)(nil)

type MockAppointmentRepository struct {
	CreateFunc          func(ctx context.Context, appointment *entities.Appointment, historyNote string) (*entities.Appointment, error)
	GetByIDFunc         func(ctx context.Context, id string) (*entities.Appointment, error)
	ListAllFunc         func(ctx context.Context) ([]*entities.Appointment, error)
	FindByPatientIDFunc func(ctx context.Context, patientID string) ([]*entities.Appointment, error)
	FindByDoctorIDFunc  func(ctx context.Context, doctorID string) ([]*entities.Appointment, error)
	UpdateStatusFunc    func(ctx context.Context, id string, status entities.AppointmentStatus, historyNote string) (*entities.Appointment, error)

	CreateFuncCallCount int32
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entities.Appointment, historyNote string) (*entities.Appointment, error) {
	atomic.AddInt32(&m.CreateFuncCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment, historyNote)
	}
	return appointment, nil
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id string) (*entities.Appointment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrRecordNotFound
}

func (m *MockAppointmentRepository) ListAll(ctx context.Context) ([]*entities.Appointment, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindByPatientID(ctx context.Context, patientID string) ([]*entities.Appointment, error) {
	if m.FindByPatientIDFunc != nil {
		return m.FindByPatientIDFunc(ctx, patientID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]*entities.Appointment, error) {
	if m.FindByDoctorIDFunc != nil {
		return m.FindByDoctorIDFunc(ctx, doctorID)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus, historyNote string) (*entities.Appointment, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, historyNote)
	}
	return nil, errors.New("UpdateStatusFunc not implemented in mock")
}
