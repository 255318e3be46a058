package usecase

import (
	"context"
	"errors"

	"github.com/SamarthX9/hospital-management/internal/converter"
	"github.com/SamarthX9/hospital-management/internal/delivery/dto"
	"github.com/SamarthX9/hospital-management/internal/domain/entity"
	"github.com/SamarthX9/hospital-management/internal/domain/repository"
	"github.com/SamarthX9/hospital-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrWrongOldPassword   = errors.New("old password does not match")
)

type DoctorProfileUsecase interface {
	Create(ctx context.Context, adminID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	Update(ctx context.Context, adminID uuid.UUID, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	UpdateSelf(ctx context.Context, doctorID uuid.UUID, req *dto.DoctorUpdateSelfRequest) (*dto.DoctorResponse, error)
	Get(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	List(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error)
	// SearchForPatients returns non-blacklisted doctors with their
	// availability windows plus the distinct specialization values.
	SearchForPatients(ctx context.Context, query, specialization string) (*dto.DoctorSearchResponse, error)
	ToggleBlacklist(ctx context.Context, adminID uuid.UUID, doctorID uuid.UUID) (*dto.DoctorResponse, error)
}

type doctorProfileUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	userRepo          repository.UserRepository
	doctorProfileRepo repository.DoctorProfileRepository
	availabilityRepo  repository.AvailabilityRepository
	auditService      service.AuditService
}

func NewDoctorProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	availabilityRepo repository.AvailabilityRepository,
	auditService service.AuditService,
) DoctorProfileUsecase {
	return &doctorProfileUsecase{
		db:                db,
		log:               log,
		userRepo:          userRepo,
		doctorProfileRepo: doctorProfileRepo,
		availabilityRepo:  availabilityRepo,
		auditService:      auditService,
	}
}

func (u *doctorProfileUsecase) Create(ctx context.Context, adminID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		RoleID:   entity.RoleIDDoctor,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.DoctorProfile{
		UserID:          user.ID,
		Specialization:  req.Specialization,
		PhoneNumber:     req.PhoneNumber,
		DepartmentID:    req.DepartmentID,
		ConsultationFee: req.ConsultationFee,
	}

	if err := u.doctorProfileRepo.Create(tx, profile); err != nil {
		if isForeignKeyError(err, "department") {
			return nil, ErrDepartmentNotFound
		}
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &adminID, entity.AuditActionDoctorCreate, "doctor", user.ID.String(), user.Email); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	profile.User = *user
	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorProfileUsecase) Update(ctx context.Context, adminID uuid.UUID, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorProfileRepo.FindByUserID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Email != "" {
		profile.User.Email = req.Email
	}
	if req.FullName != "" {
		profile.User.FullName = req.FullName
	}
	if req.Specialization != "" {
		profile.Specialization = req.Specialization
	}
	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.DepartmentID != nil {
		profile.DepartmentID = req.DepartmentID
		profile.Department = nil
	}
	if req.ConsultationFee != nil {
		profile.ConsultationFee = *req.ConsultationFee
	}

	if err := u.doctorProfileRepo.Update(tx, profile); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isForeignKeyError(err, "department") {
			return nil, ErrDepartmentNotFound
		}
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &adminID, entity.AuditActionDoctorUpdate, "doctor", doctorID.String(), nil, req); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorProfileUsecase) UpdateSelf(ctx context.Context, doctorID uuid.UUID, req *dto.DoctorUpdateSelfRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorProfileRepo.FindByUserID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Password != "" {
		if bcrypt.CompareHashAndPassword([]byte(profile.User.Password), []byte(req.OldPassword)) != nil {
			return nil, ErrWrongOldPassword
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		profile.User.Password = string(hashedPassword)
	}
	if req.FullName != "" {
		profile.User.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.Specialization != "" {
		profile.Specialization = req.Specialization
	}

	if err := u.doctorProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &doctorID, entity.AuditActionProfileUpdate, "doctor", doctorID.String(), nil, nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorProfileUsecase) Get(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.doctorProfileRepo.FindByUserID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	windows, err := u.availabilityRepo.FindByDoctorID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list availability windows: %+v", err)
		return nil, err
	}
	profile.Windows = windows

	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorProfileUsecase) List(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	db := u.db.WithContext(ctx)

	var (
		profiles []entity.DoctorProfile
		err      error
	)
	if filter == nil || (filter.Query == "" && filter.Specialization == "" && !filter.ExcludeBlocked) {
		profiles, err = u.doctorProfileRepo.FindAll(db)
	} else {
		profiles, err = u.doctorProfileRepo.Search(db, filter)
	}
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(profiles),
		Total:   len(profiles),
	}, nil
}

func (u *doctorProfileUsecase) SearchForPatients(ctx context.Context, query, specialization string) (*dto.DoctorSearchResponse, error) {
	db := u.db.WithContext(ctx)

	filter := &entity.DoctorFilter{
		Query:          query,
		Specialization: specialization,
		ExcludeBlocked: true,
	}

	profiles, err := u.doctorProfileRepo.Search(db, filter)
	if err != nil {
		u.log.Warnf("Failed to search doctors: %+v", err)
		return nil, err
	}

	for i := range profiles {
		windows, err := u.availabilityRepo.FindByDoctorID(db, profiles[i].UserID)
		if err != nil {
			u.log.Warnf("Failed to list availability windows: %+v", err)
			return nil, err
		}
		profiles[i].Windows = windows
	}

	specs, err := u.doctorProfileRepo.Specializations(db, true)
	if err != nil {
		u.log.Warnf("Failed to list specializations: %+v", err)
		return nil, err
	}

	return &dto.DoctorSearchResponse{
		Doctors:         converter.DoctorProfilesToResponses(profiles),
		Specializations: specs,
		Total:           len(profiles),
	}, nil
}

func (u *doctorProfileUsecase) ToggleBlacklist(ctx context.Context, adminID uuid.UUID, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorProfileRepo.FindByUserID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	old := profile.IsBlacklisted
	profile.IsBlacklisted = !profile.IsBlacklisted

	if err := u.doctorProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &adminID, entity.AuditActionDoctorBlacklist, "doctor", doctorID.String(), old, profile.IsBlacklisted); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorProfileToResponse(profile), nil
}
