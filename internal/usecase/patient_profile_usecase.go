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

var ErrPatientNotFound = errors.New("patient not found")

type PatientProfileUsecase interface {
	Get(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error)
	// GetWithHistory returns the patient plus their appointment history,
	// used by the admin detail view and the doctor's patient history view.
	GetWithHistory(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, []dto.AppointmentResponse, error)
	List(ctx context.Context, filter *entity.PatientFilter) (*dto.PatientListResponse, error)
	UpdateSelf(ctx context.Context, patientID uuid.UUID, req *dto.UpdatePatientSelfRequest) (*dto.PatientResponse, error)
	ToggleBlacklist(ctx context.Context, adminID uuid.UUID, patientID uuid.UUID) (*dto.PatientResponse, error)
}

type patientProfileUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	patientProfileRepo repository.PatientProfileRepository
	appointmentRepo    repository.AppointmentRepository
	auditService       service.AuditService
}

func NewPatientProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientProfileRepo repository.PatientProfileRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) PatientProfileUsecase {
	return &patientProfileUsecase{
		db:                 db,
		log:                log,
		patientProfileRepo: patientProfileRepo,
		appointmentRepo:    appointmentRepo,
		auditService:       auditService,
	}
}

func (u *patientProfileUsecase) Get(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error) {
	profile, err := u.patientProfileRepo.FindByUserID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientProfileToResponse(profile), nil
}

func (u *patientProfileUsecase) GetWithHistory(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, []dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.patientProfileRepo.FindByUserID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, nil, err
	}
	if profile == nil {
		return nil, nil, ErrPatientNotFound
	}

	appointments, err := u.appointmentRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list patient appointments: %+v", err)
		return nil, nil, err
	}

	return converter.PatientProfileToResponse(profile), converter.AppointmentsToResponses(appointments), nil
}

func (u *patientProfileUsecase) List(ctx context.Context, filter *entity.PatientFilter) (*dto.PatientListResponse, error) {
	db := u.db.WithContext(ctx)

	var (
		profiles []entity.PatientProfile
		err      error
	)
	if filter == nil || filter.Query == "" {
		profiles, err = u.patientProfileRepo.FindAll(db)
	} else {
		profiles, err = u.patientProfileRepo.Search(db, filter)
	}
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientProfilesToResponses(profiles),
		Total:    len(profiles),
	}, nil
}

func (u *patientProfileUsecase) UpdateSelf(ctx context.Context, patientID uuid.UUID, req *dto.UpdatePatientSelfRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.patientProfileRepo.FindByUserID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
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
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Gender != "" {
		profile.Gender = req.Gender
	}
	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		profile.Address = req.Address
	}

	if err := u.patientProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update patient profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &patientID, entity.AuditActionProfileUpdate, "patient", patientID.String(), nil, nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientProfileToResponse(profile), nil
}

func (u *patientProfileUsecase) ToggleBlacklist(ctx context.Context, adminID uuid.UUID, patientID uuid.UUID) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.patientProfileRepo.FindByUserID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	old := profile.IsBlacklisted
	profile.IsBlacklisted = !profile.IsBlacklisted

	if err := u.patientProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update patient profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &adminID, entity.AuditActionPatientBlacklist, "patient", patientID.String(), old, profile.IsBlacklisted); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientProfileToResponse(profile), nil
}
