package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-record-service/internal/domain/entities"
)

// storeFactories runs every contract test against each driver.
func storeFactories(t *testing.T) map[string]func() *Store {
	return map[string]func() *Store{
		DriverMemory: func() *Store { return NewInMemoryStore() },
		DriverSQLite: func() *Store {
			s, err := NewGormStore(DefaultSQLiteDSN)
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			return s
		},
	}
}

func newPatient(id string, seq int64, name string) *entities.Patient {
	p := &entities.Patient{ID: id, Seq: seq, Name: name, Age: 40, Gender: "Female", Contact: "555-0100"}
	_ = p.AddNote(entities.PatientCreatedNote)
	return p
}

func TestNewStore_Drivers(t *testing.T) {
	s, err := NewStore("", "")
	require.NoError(t, err)
	assert.NotNil(t, s.Patients)
	assert.NoError(t, s.Close())

	_, err = NewStore("postgres", "")
	assert.Error(t, err)
}

func TestPatientRepositories(t *testing.T) {
	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := factory().Patients

			list, err := repo.ListAll(ctx)
			require.NoError(t, err)
			assert.NotNil(t, list)
			assert.Empty(t, list)

			require.NoError(t, repo.Create(ctx, newPatient("P1001", 1001, "John Doe")))
			require.NoError(t, repo.Create(ctx, newPatient("P1002", 1002, "Jane Smith")))
			assert.ErrorIs(t, repo.Create(ctx, newPatient("p1001", 1003, "Dup")), ErrDuplicateID)

			got, err := repo.GetByID(ctx, "p1002")
			require.NoError(t, err)
			assert.Equal(t, "Jane Smith", got.Name)
			require.Len(t, got.History, 1)
			assert.Equal(t, entities.PatientCreatedNote, got.History[0].Text)

			_, err = repo.GetByID(ctx, "P9999")
			assert.ErrorIs(t, err, ErrRecordNotFound)

			updated, err := repo.AppendNote(ctx, "P1001", "Allergic to penicillin.")
			require.NoError(t, err)
			require.Len(t, updated.History, 2)
			assert.Equal(t, "Allergic to penicillin.", updated.History[1].Text)

			_, err = repo.AppendNote(ctx, "P1001", "  ")
			var verr *entities.ValidationError
			assert.True(t, errors.As(err, &verr))

			_, err = repo.AppendNote(ctx, "P4040", "text")
			assert.ErrorIs(t, err, ErrRecordNotFound)

			reloaded, err := repo.GetByID(ctx, "P1001")
			require.NoError(t, err)
			assert.Len(t, reloaded.History, 2)

			list, err = repo.ListAll(ctx)
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "P1001", list[0].ID)
			assert.Equal(t, "P1002", list[1].ID)
		})
	}
}

func TestDoctorRepositories(t *testing.T) {
	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := factory().Doctors

			require.NoError(t, repo.Create(ctx, &entities.Doctor{ID: "D501", Seq: 501, Name: "Dr. Alice Brown", Specialization: "Cardiology", Contact: "555-0201"}))
			assert.ErrorIs(t, repo.Create(ctx, &entities.Doctor{ID: "d501", Seq: 502}), ErrDuplicateID)

			got, err := repo.GetByID(ctx, "d501")
			require.NoError(t, err)
			assert.Equal(t, "Cardiology", got.Specialization)

			_, err = repo.GetByID(ctx, "D999")
			assert.ErrorIs(t, err, ErrRecordNotFound)

			list, err := repo.ListAll(ctx)
			require.NoError(t, err)
			assert.Len(t, list, 1)
		})
	}
}

func TestAppointmentRepositories(t *testing.T) {
	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory()

			john := newPatient("P1001", 1001, "John Doe")
			jane := newPatient("P1002", 1002, "Jane Smith")
			alice := &entities.Doctor{ID: "D501", Seq: 501, Name: "Dr. Alice Brown", Specialization: "Cardiology"}
			bob := &entities.Doctor{ID: "D502", Seq: 502, Name: "Dr. Bob White", Specialization: "Dermatology"}
			require.NoError(t, store.Patients.Create(ctx, john))
			require.NoError(t, store.Patients.Create(ctx, jane))
			require.NoError(t, store.Doctors.Create(ctx, alice))
			require.NoError(t, store.Doctors.Create(ctx, bob))

			mk := func(id string, seq int64, p *entities.Patient, d *entities.Doctor) *entities.Appointment {
				return &entities.Appointment{
					ID: id, Seq: seq,
					PatientID: p.ID, Patient: p,
					DoctorID: d.ID, Doctor: d,
					Date: "2025-12-25", Time: "10:30 AM",
					Status: entities.StatusScheduled,
				}
			}
			created, err := store.Appointments.Create(ctx, mk("A2001", 2001, john, alice), "Booked with Dr. Alice Brown.")
			require.NoError(t, err)
			require.NotNil(t, created.Patient)
			require.Len(t, created.Patient.History, 2)
			assert.Equal(t, "Booked with Dr. Alice Brown.", created.Patient.History[1].Text)

			_, err = store.Appointments.Create(ctx, mk("A2002", 2002, jane, alice), "")
			require.NoError(t, err)
			_, err = store.Appointments.Create(ctx, mk("A2003", 2003, john, bob), "")
			require.NoError(t, err)
			_, err = store.Appointments.Create(ctx, mk("a2001", 2004, john, bob), "")
			assert.ErrorIs(t, err, ErrDuplicateID)

			all, err := store.Appointments.ListAll(ctx)
			require.NoError(t, err)
			require.Len(t, all, 3)
			assert.Equal(t, []string{"A2001", "A2002", "A2003"}, []string{all[0].ID, all[1].ID, all[2].ID})
			require.NotNil(t, all[0].Doctor)
			assert.Equal(t, "Dr. Alice Brown", all[0].Doctor.Name)
			require.NotNil(t, all[0].Patient)
			assert.Equal(t, "John Doe", all[0].Patient.Name)

			byPatient, err := store.Appointments.FindByPatientID(ctx, "p1001")
			require.NoError(t, err)
			assert.Len(t, byPatient, 2)
			assert.Equal(t, "A2001", byPatient[0].ID)
			assert.Equal(t, "A2003", byPatient[1].ID)

			byDoctor, err := store.Appointments.FindByDoctorID(ctx, "D501")
			require.NoError(t, err)
			assert.Len(t, byDoctor, 2)

			none, err := store.Appointments.FindByDoctorID(ctx, "D999")
			require.NoError(t, err)
			assert.NotNil(t, none)
			assert.Empty(t, none)

			updated, err := store.Appointments.UpdateStatus(ctx, "a2002", entities.StatusCancelled, "")
			require.NoError(t, err)
			assert.Equal(t, entities.StatusCancelled, updated.Status)

			got, err := store.Appointments.GetByID(ctx, "A2002")
			require.NoError(t, err)
			assert.Equal(t, entities.StatusCancelled, got.Status)

			_, err = store.Appointments.UpdateStatus(ctx, "A9999", entities.StatusCompleted, "")
			assert.ErrorIs(t, err, ErrRecordNotFound)

			completed, err := store.Appointments.UpdateStatus(ctx, "A2003", entities.StatusCompleted, "Seen by Dr. Bob White.")
			require.NoError(t, err)
			assert.Equal(t, entities.StatusCompleted, completed.Status)
			require.NotNil(t, completed.Patient)
			last, ok := completed.Patient.LastNote()
			require.True(t, ok)
			assert.Equal(t, "Seen by Dr. Bob White.", last.Text)
		})
	}
}

func TestAppointmentRepositories_NoteAndWriteAreAtomic(t *testing.T) {
	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory()

			john := newPatient("P1001", 1001, "John Doe")
			alice := &entities.Doctor{ID: "D501", Seq: 501, Name: "Dr. Alice Brown", Specialization: "Cardiology"}
			require.NoError(t, store.Patients.Create(ctx, john))
			require.NoError(t, store.Doctors.Create(ctx, alice))

			// The note cannot be written for a patient that does not exist.
			orphan := &entities.Appointment{
				ID: "A2001", Seq: 2001, PatientID: "P9999", DoctorID: alice.ID,
				Date: "2025-12-25", Time: "10:30 AM", Status: entities.StatusScheduled,
			}
			_, err := store.Appointments.Create(ctx, orphan, "Booked.")
			assert.ErrorIs(t, err, ErrRecordNotFound)

			all, err := store.Appointments.ListAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, all)

			appt := &entities.Appointment{
				ID: "A2001", Seq: 2001, PatientID: john.ID, DoctorID: alice.ID,
				Date: "2025-12-25", Time: "10:30 AM", Status: entities.StatusScheduled,
			}
			_, err = store.Appointments.Create(ctx, appt, "Booked.")
			require.NoError(t, err)

			// A blank note is rejected, so the status must not change either.
			_, err = store.Appointments.UpdateStatus(ctx, "A2001", entities.StatusCompleted, "   ")
			var verr *entities.ValidationError
			require.True(t, errors.As(err, &verr))

			got, err := store.Appointments.GetByID(ctx, "A2001")
			require.NoError(t, err)
			assert.Equal(t, entities.StatusScheduled, got.Status)
			assert.Len(t, got.Patient.History, 2)
		})
	}
}

func TestRepositories_ReturnCopies(t *testing.T) {
	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory()

			john := newPatient("P1001", 1001, "John Doe")
			require.NoError(t, store.Patients.Create(ctx, john))
			require.NoError(t, john.AddNote("local only"))

			got, err := store.Patients.GetByID(ctx, "P1001")
			require.NoError(t, err)
			require.Len(t, got.History, 1)
			got.Name = "Changed"
			got.History[0].Text = "changed"

			again, err := store.Patients.GetByID(ctx, "P1001")
			require.NoError(t, err)
			assert.Equal(t, "John Doe", again.Name)
			assert.Equal(t, entities.PatientCreatedNote, again.History[0].Text)

			updated, err := store.Patients.AppendNote(ctx, "P1001", "stored")
			require.NoError(t, err)
			updated.History = nil

			again, err = store.Patients.GetByID(ctx, "P1001")
			require.NoError(t, err)
			assert.Len(t, again.History, 2)
		})
	}
}

// failingNotes wraps a patient repository whose AppendNote always fails.
type failingNotes struct {
	PatientRepositoryContract
	err error
}

func (f failingNotes) AppendNote(ctx context.Context, patientID, text string) (*entities.Patient, error) {
	return nil, f.err
}

func TestInMemoryAppointmentRepository_NoteFailureLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	patients := NewInMemoryPatientRepository()
	doctors := NewInMemoryDoctorRepository()
	require.NoError(t, patients.Create(ctx, newPatient("P1001", 1001, "John Doe")))
	require.NoError(t, doctors.Create(ctx, &entities.Doctor{ID: "D501", Seq: 501, Name: "Dr. Alice Brown"}))

	diskFull := errors.New("disk full")
	repo := NewInMemoryAppointmentRepository(failingNotes{PatientRepositoryContract: patients, err: diskFull}, doctors)

	appt := &entities.Appointment{ID: "A2001", Seq: 2001, PatientID: "P1001", DoctorID: "D501", Status: entities.StatusScheduled}
	_, err := repo.Create(ctx, appt, "Booked.")
	assert.ErrorIs(t, err, diskFull)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = repo.Create(ctx, appt, "")
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, "A2001", entities.StatusCompleted, "Done.")
	assert.ErrorIs(t, err, diskFull)

	got, err := repo.GetByID(ctx, "A2001")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusScheduled, got.Status)
	assert.Equal(t, "John Doe", got.Patient.Name)
}
