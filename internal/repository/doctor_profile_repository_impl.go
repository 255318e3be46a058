package repository

import (
	"errors"

	"github.com/SamarthX9/hospital-management/internal/domain/entity"
	domainRepo "github.com/SamarthX9/hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *doctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").Preload("Department").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindAll(db *gorm.DB) ([]entity.DoctorProfile, error) {
	var profiles []entity.DoctorProfile
	err := db.Preload("User").Preload("Department").
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Order("users.created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// Search filters doctors by free-text query (name, email, phone) and by
// specialization; ExcludeBlocked drops blacklisted doctors for
// patient-facing lookups.
func (r *doctorProfileRepository) Search(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.DoctorProfile, error) {
	var profiles []entity.DoctorProfile
	query := db.Joins("JOIN users ON users.id = doctor_profiles.user_id")

	if filter != nil {
		if filter.ExcludeBlocked {
			query = query.Where("doctor_profiles.is_blacklisted = ?", false)
		}
		if filter.Query != "" {
			pattern := "%" + filter.Query + "%"
			query = query.Where(
				"users.full_name ILIKE ? OR users.email ILIKE ? OR doctor_profiles.phone_number ILIKE ?",
				pattern, pattern, pattern,
			)
		}
		if filter.Specialization != "" {
			query = query.Where("doctor_profiles.specialization ILIKE ?", "%"+filter.Specialization+"%")
		}
	}

	err := query.Preload("User").Preload("Department").
		Order("users.created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *doctorProfileRepository) Specializations(db *gorm.DB, excludeBlocked bool) ([]string, error) {
	var specs []string
	query := db.Model(&entity.DoctorProfile{}).Distinct("specialization").Where("specialization <> ''")
	if excludeBlocked {
		query = query.Where("is_blacklisted = ?", false)
	}
	err := query.Pluck("specialization", &specs).Error
	if err != nil {
		return nil, err
	}
	return specs, nil
}

func (r *doctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	if err := db.Save(&profile.User).Error; err != nil {
		return err
	}
	return db.Omit("User", "Department").Save(profile).Error
}
