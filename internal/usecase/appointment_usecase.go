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
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrNotAppointmentOwner  = errors.New("appointment belongs to another user")
	ErrAppointmentNotBooked = errors.New("appointment is no longer booked")
	ErrInvalidStatusChange  = errors.New("invalid status change")
	ErrDoctorBlocked        = errors.New("doctor is not accepting appointments")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, patientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	Get(ctx context.Context, requesterID uuid.UUID, roleID int, appointmentID int) (*dto.AppointmentResponse, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListForDoctor(ctx context.Context, doctorID uuid.UUID, now time.Time) (*dto.DoctorAgendaResponse, error)
	ListAll(ctx context.Context) (*dto.AppointmentListResponse, error)
	Cancel(ctx context.Context, patientID uuid.UUID, appointmentID int) (*dto.AppointmentResponse, error)
	Reschedule(ctx context.Context, patientID uuid.UUID, appointmentID int, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, actorID uuid.UUID, roleID int, appointmentID int, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	appointmentRepo   repository.AppointmentRepository
	doctorProfileRepo repository.DoctorProfileRepository
	bookingValidator  *service.BookingValidator
	auditService      service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	bookingValidator *service.BookingValidator,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                db,
		log:               log,
		appointmentRepo:   appointmentRepo,
		doctorProfileRepo: doctorProfileRepo,
		bookingValidator:  bookingValidator,
		auditService:      auditService,
	}
}

func (u *appointmentUsecase) Book(ctx context.Context, patientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Blocked doctors are rejected before the slot is even considered
	profile, err := u.doctorProfileRepo.FindByUserID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}
	if profile.IsBlacklisted {
		return nil, ErrDoctorBlocked
	}

	date, err := u.bookingValidator.Validate(tx, patientID, req.DoctorID, req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		PatientID: patientID,
		DoctorID:  req.DoctorID,
		Date:      date,
		Time:      entity.NormalizeClock(req.Time),
		Status:    entity.AppointmentStatusBooked,
		Reason:    req.Reason,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &patientID, entity.AuditActionAppointmentBook, "appointment", strconv.Itoa(appointment.ID), appointment); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Get(ctx context.Context, requesterID uuid.UUID, roleID int, appointmentID int) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
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

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListForPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list patient appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ListForDoctor(ctx context.Context, doctorID uuid.UUID, now time.Time) (*dto.DoctorAgendaResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list doctor appointments: %+v", err)
		return nil, err
	}

	return buildDoctorAgenda(appointments, now), nil
}

// buildDoctorAgenda tallies the ledger and collects the booked appointments
// falling within the next seven days. Days are counted in UTC, today
// inclusive, whatever zone now carries.
func buildDoctorAgenda(appointments []entity.Appointment, now time.Time) *dto.DoctorAgendaResponse {
	agenda := &dto.DoctorAgendaResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
	}

	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	horizon := today.AddDate(0, 0, 7)
	for i := range appointments {
		switch appointments[i].Status {
		case entity.AppointmentStatusBooked:
			agenda.BookedCount++
		case entity.AppointmentStatusCompleted:
			agenda.DoneCount++
		}
		if appointments[i].IsBooked() && !appointments[i].Date.Before(today) && appointments[i].Date.Before(horizon) {
			agenda.Upcoming = append(agenda.Upcoming, agenda.Appointments[i])
		}
	}

	return agenda
}

func (u *appointmentUsecase) ListAll(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) Cancel(ctx context.Context, patientID uuid.UUID, appointmentID int) (*dto.AppointmentResponse, error) {
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
	if appointment.PatientID != patientID {
		return nil, ErrNotAppointmentOwner
	}

	affected, err := u.appointmentRepo.UpdateStatusFromBooked(tx, appointmentID, entity.AppointmentStatusCancelled)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentNotBooked
	}

	if err := u.auditService.LogUpdate(ctx, tx, &patientID, entity.AuditActionAppointmentCancel, "appointment", strconv.Itoa(appointmentID), string(appointment.Status), string(entity.AppointmentStatusCancelled)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Status = entity.AppointmentStatusCancelled
	return converter.AppointmentToResponse(appointment), nil
}

// Reschedule moves a booked appointment to a new slot. Only the doctor-slot
// conflict is re-checked (excluding the appointment itself); the availability
// window and the patient's own calendar are not consulted again.
func (u *appointmentUsecase) Reschedule(ctx context.Context, patientID uuid.UUID, appointmentID int, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
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
	if appointment.PatientID != patientID {
		return nil, ErrNotAppointmentOwner
	}
	if !appointment.IsBooked() {
		return nil, ErrAppointmentNotBooked
	}

	date, err := time.Parse(entity.DateLayout, req.Date)
	if err != nil {
		return nil, service.ErrMalformedSlot
	}
	if _, err := entity.ParseClock(req.Time); err != nil {
		return nil, service.ErrMalformedSlot
	}

	taken, err := u.appointmentRepo.ExistsForDoctorSlot(tx, appointment.DoctorID, date, req.Time, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to check doctor slot conflict: %+v", err)
		return nil, err
	}
	if taken {
		return nil, service.ErrSlotTaken
	}

	oldDate, oldTime := appointment.Date, appointment.Time
	appointment.Date = date
	appointment.Time = entity.NormalizeClock(req.Time)

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &patientID, entity.AuditActionAppointmentMove, "appointment", strconv.Itoa(appointmentID),
		oldDate.Format(entity.DateLayout)+" "+oldTime, req.Date+" "+req.Time); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, actorID uuid.UUID, roleID int, appointmentID int, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	target := entity.AppointmentStatus(req.Status)
	if !entity.ValidStatus(target) || target == entity.AppointmentStatusBooked {
		return nil, ErrInvalidStatusChange
	}

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
	if roleID != entity.RoleIDAdmin && appointment.DoctorID != actorID {
		return nil, ErrNotAppointmentOwner
	}

	if !appointment.CanTransitionTo(target) {
		return nil, ErrInvalidStatusChange
	}

	affected, err := u.appointmentRepo.UpdateStatusFromBooked(tx, appointmentID, target)
	if err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInvalidStatusChange
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionAppointmentStatus, "appointment", strconv.Itoa(appointmentID), string(appointment.Status), string(target)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Status = target
	return converter.AppointmentToResponse(appointment), nil
}
