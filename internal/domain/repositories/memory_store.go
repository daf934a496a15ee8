package repositories

// NewInMemoryStore returns a store whose collections live only in process memory.
func NewInMemoryStore() *Store {
	patients := NewInMemoryPatientRepository()
	doctors := NewInMemoryDoctorRepository()
	return &Store{
		Patients:     patients,
		Doctors:      doctors,
		Appointments: NewInMemoryAppointmentRepository(patients, doctors),
	}
}
