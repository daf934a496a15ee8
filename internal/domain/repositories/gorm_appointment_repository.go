package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clinic-record-service/internal/domain/entities"
)

var _ AppointmentRepositoryContract = (*GormAppointmentRepository)(nil)

// GormAppointmentRepository stores appointments through gorm. Patient and
// Doctor rows are referenced, never written, by this repository.
type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) withRefs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Patient.History", orderedHistory).
		Preload("Doctor")
}

func (r *GormAppointmentRepository) Create(ctx context.Context, appointment *entities.Appointment, historyNote string) (*entities.Appointment, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.Appointment{}).Where("id = ?", NormalizeID(appointment.ID)).Count(&count).Error; err != nil {
			return fmt.Errorf("checking appointment %s: %w", appointment.ID, err)
		}
		if count > 0 {
			return ErrDuplicateID
		}
		if err := tx.Omit(clause.Associations).Create(appointment).Error; err != nil {
			return fmt.Errorf("creating appointment %s: %w", appointment.ID, err)
		}
		if historyNote != "" {
			if _, err := appendNote(tx, appointment.PatientID, historyNote); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, appointment.ID)
}

func (r *GormAppointmentRepository) GetByID(ctx context.Context, id string) (*entities.Appointment, error) {
	var appointment entities.Appointment
	if err := r.withRefs(ctx).First(&appointment, "id = ?", NormalizeID(id)).Error; err != nil {
		return nil, translateError(err)
	}
	return &appointment, nil
}

func (r *GormAppointmentRepository) ListAll(ctx context.Context) ([]*entities.Appointment, error) {
	return r.find(ctx, "")
}

func (r *GormAppointmentRepository) FindByPatientID(ctx context.Context, patientID string) ([]*entities.Appointment, error) {
	return r.find(ctx, "patient_id = ?", NormalizeID(patientID))
}

func (r *GormAppointmentRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]*entities.Appointment, error) {
	return r.find(ctx, "doctor_id = ?", NormalizeID(doctorID))
}

func (r *GormAppointmentRepository) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus, historyNote string) (*entities.Appointment, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var appointment entities.Appointment
		if err := tx.First(&appointment, "id = ?", NormalizeID(id)).Error; err != nil {
			return translateError(err)
		}
		res := tx.Model(&appointment).Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
		if res.Error != nil {
			return fmt.Errorf("updating appointment %s: %w", id, res.Error)
		}
		if historyNote != "" {
			if _, err := appendNote(tx, appointment.PatientID, historyNote); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *GormAppointmentRepository) find(ctx context.Context, query string, args ...interface{}) ([]*entities.Appointment, error) {
	appointments := make([]*entities.Appointment, 0)
	q := r.withRefs(ctx).Order("seq")
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("listing appointments: %w", err)
	}
	return appointments, nil
}
