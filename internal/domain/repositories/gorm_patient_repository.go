package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"clinic-record-service/internal/domain/entities"
)

var _ PatientRepositoryContract = (*GormPatientRepository)(nil)

// GormPatientRepository stores patients and their history notes through gorm.
type GormPatientRepository struct {
	db *gorm.DB
}

func NewGormPatientRepository(db *gorm.DB) *GormPatientRepository {
	return &GormPatientRepository{db: db}
}

// Create inserts the patient together with any notes already in its history.
func (r *GormPatientRepository) Create(ctx context.Context, patient *entities.Patient) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Patient{}).Where("id = ?", NormalizeID(patient.ID)).Count(&count).Error; err != nil {
		return fmt.Errorf("checking patient %s: %w", patient.ID, err)
	}
	if count > 0 {
		return ErrDuplicateID
	}
	if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
		return fmt.Errorf("creating patient %s: %w", patient.ID, err)
	}
	return nil
}

func (r *GormPatientRepository) GetByID(ctx context.Context, id string) (*entities.Patient, error) {
	var patient entities.Patient
	err := r.db.WithContext(ctx).
		Preload("History", orderedHistory).
		First(&patient, "id = ?", NormalizeID(id)).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &patient, nil
}

func (r *GormPatientRepository) ListAll(ctx context.Context) ([]*entities.Patient, error) {
	patients := make([]*entities.Patient, 0)
	err := r.db.WithContext(ctx).
		Preload("History", orderedHistory).
		Order("seq").
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("listing patients: %w", err)
	}
	return patients, nil
}

func (r *GormPatientRepository) AppendNote(ctx context.Context, patientID string, text string) (*entities.Patient, error) {
	var patient *entities.Patient
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		patient, err = appendNote(tx, patientID, text)
		return err
	})
	if err != nil {
		return nil, err
	}
	return patient, nil
}

// appendNote adds a history row inside tx and returns the patient with its full history.
func appendNote(tx *gorm.DB, patientID, text string) (*entities.Patient, error) {
	var patient entities.Patient
	if err := tx.Preload("History", orderedHistory).First(&patient, "id = ?", NormalizeID(patientID)).Error; err != nil {
		return nil, translateError(err)
	}
	if err := patient.AddNote(text); err != nil {
		return nil, err
	}
	note := &patient.History[len(patient.History)-1]
	if err := tx.Create(note).Error; err != nil {
		return nil, fmt.Errorf("appending note to patient %s: %w", patient.ID, err)
	}
	return &patient, nil
}
