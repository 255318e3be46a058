package repository

import (
	"errors"

	"github.com/SamarthX9/hospital-management/internal/domain/entity"
	domainRepo "github.com/SamarthX9/hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientProfileRepository struct{}

func NewPatientProfileRepository() domainRepo.PatientProfileRepository {
	return &patientProfileRepository{}
}

func (r *patientProfileRepository) Create(db *gorm.DB, profile *entity.PatientProfile) error {
	return db.Create(profile).Error
}

func (r *patientProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *patientProfileRepository) FindAll(db *gorm.DB) ([]entity.PatientProfile, error) {
	var profiles []entity.PatientProfile
	err := db.Preload("User").
		Joins("JOIN users ON users.id = patient_profiles.user_id").
		Order("users.created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *patientProfileRepository) Search(db *gorm.DB, filter *entity.PatientFilter) ([]entity.PatientProfile, error) {
	var profiles []entity.PatientProfile
	query := db.Joins("JOIN users ON users.id = patient_profiles.user_id")

	if filter != nil && filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where(
			"users.full_name ILIKE ? OR users.email ILIKE ? OR patient_profiles.phone_number ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	err := query.Preload("User").
		Order("users.created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *patientProfileRepository) Update(db *gorm.DB, profile *entity.PatientProfile) error {
	if err := db.Save(&profile.User).Error; err != nil {
		return err
	}
	return db.Omit("User").Save(profile).Error
}
