package repositories

import (
	"errors"
	"strings"
)

var (
	// ErrRecordNotFound is returned by lookups that match nothing.
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicateID is returned when an entity is created with an ID already in use.
	ErrDuplicateID = errors.New("duplicate id")
)

// Store drivers accepted by NewStore.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// NormalizeID folds an entity ID to its stored form. Generated IDs are upper case.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// Store groups the three collections owned by one registry.
type Store struct {
	Patients     PatientRepositoryContract
	Doctors      DoctorRepositoryContract
	Appointments AppointmentRepositoryContract

	closeFn func() error
}

// Close releases any resources held by the backing driver.
func (s *Store) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// NewStore opens a store for the given driver. dsn is only used by the sqlite driver.
func NewStore(driver, dsn string) (*Store, error) {
	switch strings.ToLower(driver) {
	case "", DriverMemory:
		return NewInMemoryStore(), nil
	case DriverSQLite:
		return NewGormStore(dsn)
	default:
		return nil, errors.New("unknown store driver: " + driver)
	}
}
