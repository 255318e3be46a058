package usecase

import (
	"context"
	"errors"
	"strconv"

	"github.com/SamarthX9/hospital-management/internal/converter"
	"github.com/SamarthX9/hospital-management/internal/delivery/dto"
	"github.com/SamarthX9/hospital-management/internal/domain/entity"
	"github.com/SamarthX9/hospital-management/internal/domain/repository"
	"github.com/SamarthX9/hospital-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrTreatmentNotFound = errors.New("treatment not found")

type TreatmentUsecase interface {
	// Save creates the treatment of the doctor's own appointment or
	// overwrites it when one already exists.
	Save(ctx context.Context, doctorID uuid.UUID, appointmentID int, req *dto.SaveTreatmentRequest) (*dto.TreatmentResponse, error)
	Get(ctx context.Context, requesterID uuid.UUID, roleID int, appointmentID int) (*dto.TreatmentResponse, error)
}

type treatmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	treatmentRepo   repository.TreatmentRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewTreatmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	treatmentRepo repository.TreatmentRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) TreatmentUsecase {
	return &treatmentUsecase{
		db:              db,
		log:             log,
		treatmentRepo:   treatmentRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *treatmentUsecase) Save(ctx context.Context, doctorID uuid.UUID, appointmentID int, req *dto.SaveTreatmentRequest) (*dto.TreatmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.DoctorID != doctorID {
		return nil, ErrNotAppointmentOwner
	}

	treatment, err := u.treatmentRepo.FindByAppointmentID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find treatment: %+v", err)
		return nil, err
	}

	if treatment == nil {
		treatment = &entity.Treatment{
			AppointmentID: appointmentID,
			Diagnosis:     req.Diagnosis,
			Prescription:  req.Prescription,
			Notes:         req.Notes,
		}
		if err := u.treatmentRepo.Create(tx, treatment); err != nil {
			u.log.Warnf("Failed to create treatment: %+v", err)
			return nil, err
		}
	} else {
		treatment.Diagnosis = req.Diagnosis
		treatment.Prescription = req.Prescription
		treatment.Notes = req.Notes
		if err := u.treatmentRepo.Update(tx, treatment); err != nil {
			u.log.Warnf("Failed to update treatment: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.LogUpdate(ctx, tx, &doctorID, entity.AuditActionTreatmentWrite, "treatment", strconv.Itoa(treatment.ID), nil, req.Diagnosis); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TreatmentToResponse(treatment), nil
}

func (u *treatmentUsecase) Get(ctx context.Context, requesterID uuid.UUID, roleID int, appointmentID int) (*dto.TreatmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if roleID != entity.RoleIDAdmin && appointment.PatientID != requesterID && appointment.DoctorID != requesterID {
		return nil, ErrNotAppointmentOwner
	}

	treatment, err := u.treatmentRepo.FindByAppointmentID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find treatment: %+v", err)
		return nil, err
	}
	if treatment == nil {
		return nil, ErrTreatmentNotFound
	}

	return converter.TreatmentToResponse(treatment), nil
}
