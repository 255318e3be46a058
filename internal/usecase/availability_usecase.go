package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/SamarthX9/hospital-management/internal/converter"
	"github.com/SamarthX9/hospital-management/internal/delivery/dto"
	"github.com/SamarthX9/hospital-management/internal/domain/entity"
	"github.com/SamarthX9/hospital-management/internal/domain/repository"
	"github.com/SamarthX9/hospital-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrWindowNotFound = errors.New("availability window not found")
	ErrNotWindowOwner = errors.New("availability window belongs to another doctor")
)

type AvailabilityUsecase interface {
	Create(ctx context.Context, doctorID uuid.UUID, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error)
	List(ctx context.Context, doctorID uuid.UUID) (*dto.AvailabilityListResponse, error)
	Delete(ctx context.Context, doctorID uuid.UUID, windowID int) error
}

type availabilityUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	availabilityRepo repository.AvailabilityRepository
	auditService     service.AuditService
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	availabilityRepo repository.AvailabilityRepository,
	auditService service.AuditService,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:               db,
		log:              log,
		availabilityRepo: availabilityRepo,
		auditService:     auditService,
	}
}

// Create validates the declared range and appends it. Duplicate and
// overlapping windows are accepted as-is; only the first window ever
// declared drives booking validation.
func (u *availabilityUsecase) Create(ctx context.Context, doctorID uuid.UUID, req *dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	window, err := entity.NewAvailabilityWindow(doctorID, req.StartDate, req.EndDate, req.StartTime, req.EndTime, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.availabilityRepo.Create(tx, window); err != nil {
		u.log.Warnf("Failed to create availability window: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &doctorID, entity.AuditActionWindowCreate, "availability_window", strconv.Itoa(window.ID), window); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AvailabilityWindowToResponse(window), nil
}

func (u *availabilityUsecase) List(ctx context.Context, doctorID uuid.UUID) (*dto.AvailabilityListResponse, error) {
	windows, err := u.availabilityRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list availability windows: %+v", err)
		return nil, err
	}

	return &dto.AvailabilityListResponse{
		Windows: converter.AvailabilityWindowsToResponses(windows),
		Total:   len(windows),
	}, nil
}

func (u *availabilityUsecase) Delete(ctx context.Context, doctorID uuid.UUID, windowID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	window, err := u.availabilityRepo.FindByID(tx, windowID)
	if err != nil {
		u.log.Warnf("Failed to find availability window: %+v", err)
		return err
	}
	if window == nil {
		return ErrWindowNotFound
	}
	if window.DoctorID != doctorID {
		return ErrNotWindowOwner
	}

	if _, err := u.availabilityRepo.Delete(tx, windowID); err != nil {
		u.log.Warnf("Failed to delete availability window: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &doctorID, entity.AuditActionWindowDelete, "availability_window", strconv.Itoa(windowID), window); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
