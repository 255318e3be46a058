package service

import (
	"errors"
	"time"

	"github.com/SamarthX9/hospital-management/internal/domain/entity"
	"github.com/SamarthX9/hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMalformedSlot   = errors.New("malformed date or time, use YYYY-MM-DD and HH:MM")
	ErrNoAvailability  = errors.New("doctor has not set any availability yet")
	ErrDateOutOfRange  = errors.New("requested date is outside the doctor's availability")
	ErrTimeOutOfRange  = errors.New("requested time is outside the doctor's availability")
	ErrSlotTaken       = errors.New("this time slot is already booked")
	ErrPatientConflict = errors.New("you already have an appointment at this time")
)

// BookingValidator decides whether a new appointment may occupy a slot.
// It consults the doctor's first availability window and the existing
// ledger rows; the caller persists the appointment under the same db
// handle, so the check and the insert share one transaction.
//
// The conflict checks count rows of every status: a cancelled appointment
// keeps its slot blocked. Only the oldest window per doctor is consulted,
// additional windows do not widen the bookable range.
//
// The check-then-insert sequence is not guarded by a unique constraint, so
// two concurrent requests for the same slot can both pass validation. The
// per-operation transaction narrows but does not close that race.
type BookingValidator struct {
	log              *logrus.Logger
	availabilityRepo repository.AvailabilityRepository
	appointmentRepo  repository.AppointmentRepository
}

func NewBookingValidator(
	log *logrus.Logger,
	availabilityRepo repository.AvailabilityRepository,
	appointmentRepo repository.AppointmentRepository,
) *BookingValidator {
	return &BookingValidator{
		log:              log,
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
	}
}

// Validate runs the slot checks in order and returns the parsed date on
// acceptance so the caller inserts exactly what was validated.
func (v *BookingValidator) Validate(db *gorm.DB, patientID, doctorID uuid.UUID, dateStr, clock string) (time.Time, error) {
	date, err := time.Parse(entity.DateLayout, dateStr)
	if err != nil {
		return time.Time{}, ErrMalformedSlot
	}
	clockValue, err := entity.ParseClock(clock)
	if err != nil {
		return time.Time{}, ErrMalformedSlot
	}

	window, err := v.availabilityRepo.FirstByDoctorID(db, doctorID)
	if err != nil {
		v.log.Warnf("Failed to load availability for doctor %s: %+v", doctorID, err)
		return time.Time{}, err
	}
	if window == nil {
		return time.Time{}, ErrNoAvailability
	}
	if !window.CoversDate(date) {
		return time.Time{}, ErrDateOutOfRange
	}
	covered, err := window.CoversClock(clockValue)
	if err != nil {
		v.log.Warnf("Failed to read availability times for doctor %s: %+v", doctorID, err)
		return time.Time{}, err
	}
	if !covered {
		return time.Time{}, ErrTimeOutOfRange
	}

	taken, err := v.appointmentRepo.ExistsForDoctorSlot(db, doctorID, date, clock, 0)
	if err != nil {
		v.log.Warnf("Failed to check doctor slot conflict: %+v", err)
		return time.Time{}, err
	}
	if taken {
		return time.Time{}, ErrSlotTaken
	}

	busy, err := v.appointmentRepo.ExistsForPatientSlot(db, patientID, date, clock)
	if err != nil {
		v.log.Warnf("Failed to check patient slot conflict: %+v", err)
		return time.Time{}, err
	}
	if busy {
		return time.Time{}, ErrPatientConflict
	}

	return date, nil
}
