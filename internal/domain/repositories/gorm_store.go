package repositories

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"clinic-record-service/internal/domain/entities"
)

// DefaultSQLiteDSN is a private in-process database that disappears with the process.
const DefaultSQLiteDSN = ":memory:"

// NewGormStore opens a gorm-backed store on an SQLite DSN and migrates the schema.
func NewGormStore(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = DefaultSQLiteDSN
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing sqlite pool: %w", err)
	}
	// Each connection to ":memory:" is its own database, so keep exactly one.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&entities.Patient{}, &entities.HistoryNote{}, &entities.Doctor{}, &entities.Appointment{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrating sqlite store: %w", err)
	}

	return &Store{
		Patients:     NewGormPatientRepository(db),
		Doctors:      NewGormDoctorRepository(db),
		Appointments: NewGormAppointmentRepository(db),
		closeFn:      sqlDB.Close,
	}, nil
}

// translateError maps gorm's not-found error onto ErrRecordNotFound.
func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return err
}

func orderedHistory(db *gorm.DB) *gorm.DB {
	return db.Order("seq")
}
