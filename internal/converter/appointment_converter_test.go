package converter

import (
	"testing"
	"time"

	"github.com/SamarthX9/hospital-management/internal/domain/entity"

	"github.com/google/uuid"
)

func TestAppointmentToResponse(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	appointment := &entity.Appointment{
		ID:        7,
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		Time:      "10:00",
		Status:    entity.AppointmentStatusBooked,
		Reason:    "checkup",
		Treatment: &entity.Treatment{ID: 3, AppointmentID: 7, Diagnosis: "healthy"},
	}

	resp := AppointmentToResponse(appointment)
	if resp == nil {
		t.Fatal("expected a response")
	}
	if resp.Date != "2024-06-03" {
		t.Errorf("Date = %q, want 2024-06-03", resp.Date)
	}
	if resp.Time != "10:00" {
		t.Errorf("Time = %q", resp.Time)
	}
	if resp.Status != "booked" {
		t.Errorf("Status = %q", resp.Status)
	}
	if resp.Treatment == nil || resp.Treatment.Diagnosis != "healthy" {
		t.Error("treatment not carried over")
	}
}

// Time columns read back from Postgres carry seconds; responses render the
// "HH:MM" form requests use.
func TestAppointmentToResponseNormalizesStoredTime(t *testing.T) {
	appointment := &entity.Appointment{
		ID:     8,
		Date:   time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		Time:   "10:00:00",
		Status: entity.AppointmentStatusBooked,
	}

	resp := AppointmentToResponse(appointment)
	if resp.Time != "10:00" {
		t.Errorf("Time = %q, want 10:00", resp.Time)
	}
}

func TestAvailabilityWindowToResponseNormalizesStoredTimes(t *testing.T) {
	window := &entity.AvailabilityWindow{
		ID:        4,
		DoctorID:  uuid.New(),
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00:00",
		EndTime:   "17:00:00",
	}

	resp := AvailabilityWindowToResponse(window)
	if resp.StartTime != "09:00" || resp.EndTime != "17:00" {
		t.Errorf("times = %q-%q, want 09:00-17:00", resp.StartTime, resp.EndTime)
	}
}

func TestAppointmentToResponseNil(t *testing.T) {
	if AppointmentToResponse(nil) != nil {
		t.Fatal("nil appointment should convert to nil")
	}
}
