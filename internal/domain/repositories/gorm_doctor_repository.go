package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"clinic-record-service/internal/domain/entities"
)

var _ DoctorRepositoryContract = (*GormDoctorRepository)(nil)

// GormDoctorRepository stores doctors through gorm.
type GormDoctorRepository struct {
	db *gorm.DB
}

func NewGormDoctorRepository(db *gorm.DB) *GormDoctorRepository {
	return &GormDoctorRepository{db: db}
}

func (r *GormDoctorRepository) Create(ctx context.Context, doctor *entities.Doctor) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Doctor{}).Where("id = ?", NormalizeID(doctor.ID)).Count(&count).Error; err != nil {
		return fmt.Errorf("checking doctor %s: %w", doctor.ID, err)
	}
	if count > 0 {
		return ErrDuplicateID
	}
	if err := r.db.WithContext(ctx).Create(doctor).Error; err != nil {
		return fmt.Errorf("creating doctor %s: %w", doctor.ID, err)
	}
	return nil
}

func (r *GormDoctorRepository) GetByID(ctx context.Context, id string) (*entities.Doctor, error) {
	var doctor entities.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, "id = ?", NormalizeID(id)).Error; err != nil {
		return nil, translateError(err)
	}
	return &doctor, nil
}

func (r *GormDoctorRepository) ListAll(ctx context.Context) ([]*entities.Doctor, error) {
	doctors := make([]*entities.Doctor, 0)
	if err := r.db.WithContext(ctx).Order("seq").Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("listing doctors: %w", err)
	}
	return doctors, nil
}
