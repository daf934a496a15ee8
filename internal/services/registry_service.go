package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"clinic-record-service/internal/domain/entities"
	"clinic-record-service/internal/domain/repositories"
)

// ID prefixes and counter seeds. The first generated IDs are P1001, D501 and A2001.
const (
	PatientIDPrefix     = "P"
	DoctorIDPrefix      = "D"
	AppointmentIDPrefix = "A"

	patientSeqStart     int64 = 1000
	doctorSeqStart      int64 = 500
	appointmentSeqStart int64 = 2000
)

// RegistryServiceImpl implements RegistryServiceContract on top of the repositories.
// Mutations are serialized by mu, which also guards the ID counters.
type RegistryServiceImpl struct {
	patientRepo     repositories.PatientRepositoryContract
	doctorRepo      repositories.DoctorRepositoryContract
	appointmentRepo repositories.AppointmentRepositoryContract
	logger          zerolog.Logger

	mu             sync.Mutex
	patientSeq     int64
	doctorSeq      int64
	appointmentSeq int64
}

// NewRegistryService creates a registry with fresh ID counters.
func NewRegistryService(
	patientRepo repositories.PatientRepositoryContract,
	doctorRepo repositories.DoctorRepositoryContract,
	appointmentRepo repositories.AppointmentRepositoryContract,
	logger zerolog.Logger,
) RegistryServiceContract {
	return &RegistryServiceImpl{
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger.With().Str("component", "registry").Logger(),
		patientSeq:      patientSeqStart,
		doctorSeq:       doctorSeqStart,
		appointmentSeq:  appointmentSeqStart,
	}
}

// NewRegistryServiceFromStore wires a registry to all collections of a store.
func NewRegistryServiceFromStore(store *repositories.Store, logger zerolog.Logger) RegistryServiceContract {
	return NewRegistryService(store.Patients, store.Doctors, store.Appointments, logger)
}

func formatID(prefix string, seq int64) string {
	return fmt.Sprintf("%s%d", prefix, seq)
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return entities.NewValidationError(field, "must not be empty")
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *RegistryServiceImpl) CreatePatient(ctx context.Context, name string, age int, gender, contact string) (*entities.Patient, error) {
	if err := firstError(
		requireText("name", name),
		requireText("gender", gender),
		requireText("contact", contact),
	); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.patientSeq + 1
	patient := &entities.Patient{
		ID:        formatID(PatientIDPrefix, seq),
		Seq:       seq,
		Name:      strings.TrimSpace(name),
		Age:       age,
		Gender:    strings.TrimSpace(gender),
		Contact:   strings.TrimSpace(contact),
		CreatedAt: time.Now(),
	}
	if err := patient.AddNote(entities.PatientCreatedNote); err != nil {
		return nil, err
	}
	if err := s.patientRepo.Create(ctx, patient); err != nil {
		s.logger.Error().Err(err).Str("patient_id", patient.ID).Msg("failed to store patient")
		return nil, fmt.Errorf("storing patient %s: %w", patient.ID, err)
	}
	s.patientSeq = seq

	s.logger.Info().Str("patient_id", patient.ID).Msg("patient created")
	return patient, nil
}

func (s *RegistryServiceImpl) CreateDoctor(ctx context.Context, name, specialization, contact string) (*entities.Doctor, error) {
	if err := firstError(
		requireText("name", name),
		requireText("specialization", specialization),
		requireText("contact", contact),
	); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.doctorSeq + 1
	doctor := &entities.Doctor{
		ID:             formatID(DoctorIDPrefix, seq),
		Seq:            seq,
		Name:           strings.TrimSpace(name),
		Specialization: strings.TrimSpace(specialization),
		Contact:        strings.TrimSpace(contact),
		CreatedAt:      time.Now(),
	}
	if err := s.doctorRepo.Create(ctx, doctor); err != nil {
		s.logger.Error().Err(err).Str("doctor_id", doctor.ID).Msg("failed to store doctor")
		return nil, fmt.Errorf("storing doctor %s: %w", doctor.ID, err)
	}
	s.doctorSeq = seq

	s.logger.Info().Str("doctor_id", doctor.ID).Msg("doctor created")
	return doctor, nil
}

func (s *RegistryServiceImpl) ListPatients(ctx context.Context) ([]*entities.Patient, error) {
	patients, err := s.patientRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing patients: %w", err)
	}
	if patients == nil {
		patients = []*entities.Patient{}
	}
	return patients, nil
}

func (s *RegistryServiceImpl) ListDoctors(ctx context.Context) ([]*entities.Doctor, error) {
	doctors, err := s.doctorRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing doctors: %w", err)
	}
	if doctors == nil {
		doctors = []*entities.Doctor{}
	}
	return doctors, nil
}

func (s *RegistryServiceImpl) FindPatientByID(ctx context.Context, id string) (*entities.Patient, bool) {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repositories.ErrRecordNotFound) {
			s.logger.Error().Err(err).Str("patient_id", id).Msg("patient lookup failed")
		}
		return nil, false
	}
	return patient, true
}

func (s *RegistryServiceImpl) FindDoctorByID(ctx context.Context, id string) (*entities.Doctor, bool) {
	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repositories.ErrRecordNotFound) {
			s.logger.Error().Err(err).Str("doctor_id", id).Msg("doctor lookup failed")
		}
		return nil, false
	}
	return doctor, true
}

// scheduledNote is the derived note appended when an appointment is booked.
func scheduledNote(doctor *entities.Doctor, date, timeOfDay string) string {
	return fmt.Sprintf("Appointment scheduled with %s (%s) on %s at %s.", doctor.Name, doctor.Specialization, date, timeOfDay)
}

// completedNote is the derived note appended when an appointment is completed.
func completedNote(appointmentID, doctorName string) string {
	return fmt.Sprintf("Appointment %s completed with %s.", appointmentID, doctorName)
}

func (s *RegistryServiceImpl) ScheduleAppointment(ctx context.Context, patientID, doctorID, date, timeOfDay string) (*entities.Appointment, error) {
	if err := firstError(requireText("date", date), requireText("time", timeOfDay)); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	patient, ok := s.FindPatientByID(ctx, patientID)
	if !ok {
		s.logger.Warn().Str("patient_id", patientID).Msg("schedule rejected: unknown patient")
		return nil, entities.NewReferenceError(entities.KindPatient, patientID)
	}
	doctor, ok := s.FindDoctorByID(ctx, doctorID)
	if !ok {
		s.logger.Warn().Str("doctor_id", doctorID).Msg("schedule rejected: unknown doctor")
		return nil, entities.NewReferenceError(entities.KindDoctor, doctorID)
	}

	seq := s.appointmentSeq + 1
	now := time.Now()
	appointment := &entities.Appointment{
		ID:        formatID(AppointmentIDPrefix, seq),
		Seq:       seq,
		PatientID: patient.ID,
		Patient:   patient,
		DoctorID:  doctor.ID,
		Doctor:    doctor,
		Date:      strings.TrimSpace(date),
		Time:      strings.TrimSpace(timeOfDay),
		Status:    entities.StatusScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	stored, err := s.appointmentRepo.Create(ctx, appointment, scheduledNote(doctor, appointment.Date, appointment.Time))
	if err != nil {
		s.logger.Error().Err(err).Str("appointment_id", appointment.ID).Msg("failed to store appointment")
		return nil, fmt.Errorf("storing appointment %s: %w", appointment.ID, err)
	}
	s.appointmentSeq = seq

	s.logger.Info().
		Str("appointment_id", appointment.ID).
		Str("patient_id", patient.ID).
		Str("doctor_id", doctor.ID).
		Msg("appointment scheduled")
	return stored, nil
}

func (s *RegistryServiceImpl) ListAppointments(ctx context.Context) ([]*entities.Appointment, error) {
	return nonNil(s.appointmentRepo.ListAll(ctx))
}

func (s *RegistryServiceImpl) ListAppointmentsByDoctor(ctx context.Context, doctorID string) ([]*entities.Appointment, error) {
	return nonNil(s.appointmentRepo.FindByDoctorID(ctx, doctorID))
}

func (s *RegistryServiceImpl) ListAppointmentsByPatient(ctx context.Context, patientID string) ([]*entities.Appointment, error) {
	return nonNil(s.appointmentRepo.FindByPatientID(ctx, patientID))
}

func nonNil(appointments []*entities.Appointment, err error) ([]*entities.Appointment, error) {
	if err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	if appointments == nil {
		appointments = []*entities.Appointment{}
	}
	return appointments, nil
}

func (s *RegistryServiceImpl) UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) (*entities.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, entities.NewReferenceError(entities.KindAppointment, appointmentID)
		}
		return nil, fmt.Errorf("loading appointment %s: %w", appointmentID, err)
	}
	newStatus, err := entities.ParseAppointmentStatus(status)
	if err != nil {
		return nil, err
	}

	var note string
	if newStatus == entities.StatusCompleted {
		doctorName := current.DoctorID
		if current.Doctor != nil {
			doctorName = current.Doctor.Name
		}
		note = completedNote(current.ID, doctorName)
	}

	appointment, err := s.appointmentRepo.UpdateStatus(ctx, current.ID, newStatus, note)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, entities.NewReferenceError(entities.KindAppointment, appointmentID)
		}
		return nil, fmt.Errorf("updating appointment %s: %w", appointmentID, err)
	}

	s.logger.Info().
		Str("appointment_id", appointment.ID).
		Str("status", string(newStatus)).
		Msg("appointment status updated")
	return appointment, nil
}

func (s *RegistryServiceImpl) AddPatientNote(ctx context.Context, patientID, text string) (*entities.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	patient, err := s.patientRepo.AppendNote(ctx, patientID, text)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, entities.NewReferenceError(entities.KindPatient, patientID)
		}
		var verr *entities.ValidationError
		if errors.As(err, &verr) {
			return nil, verr
		}
		return nil, fmt.Errorf("adding note for patient %s: %w", patientID, err)
	}
	s.logger.Info().Str("patient_id", patient.ID).Msg("history note added")
	return patient, nil
}

func (s *RegistryServiceImpl) GetPatientHistory(ctx context.Context, patientID string) ([]entities.HistoryNote, error) {
	patient, ok := s.FindPatientByID(ctx, patientID)
	if !ok {
		return nil, entities.NewReferenceError(entities.KindPatient, patientID)
	}
	history := make([]entities.HistoryNote, len(patient.History))
	copy(history, patient.History)
	return history, nil
}
