package usecase

import (
	"testing"
	"time"

	"github.com/SamarthX9/hospital-management/internal/domain/entity"

	"github.com/google/uuid"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestBuildDoctorAgenda(t *testing.T) {
	doctorID := uuid.New()
	patientID := uuid.New()

	appointments := []entity.Appointment{
		{ID: 1, DoctorID: doctorID, PatientID: patientID, Date: mustDay(t, "2024-06-01"), Time: "09:00", Status: entity.AppointmentStatusBooked},
		{ID: 2, DoctorID: doctorID, PatientID: patientID, Date: mustDay(t, "2024-06-07"), Time: "10:00", Status: entity.AppointmentStatusBooked},
		{ID: 3, DoctorID: doctorID, PatientID: patientID, Date: mustDay(t, "2024-06-08"), Time: "11:00", Status: entity.AppointmentStatusBooked},
		{ID: 4, DoctorID: doctorID, PatientID: patientID, Date: mustDay(t, "2024-05-31"), Time: "09:00", Status: entity.AppointmentStatusBooked},
		{ID: 5, DoctorID: doctorID, PatientID: patientID, Date: mustDay(t, "2024-06-03"), Time: "09:00", Status: entity.AppointmentStatusCompleted},
		{ID: 6, DoctorID: doctorID, PatientID: patientID, Date: mustDay(t, "2024-06-03"), Time: "10:00", Status: entity.AppointmentStatusCancelled},
	}

	// 2024-06-02 01:00 at UTC+9 is still 2024-06-01 in UTC, so the window
	// runs [2024-06-01, 2024-06-08) regardless of the caller's zone.
	now := time.Date(2024, 6, 2, 1, 0, 0, 0, time.FixedZone("UTC+9", 9*3600))

	agenda := buildDoctorAgenda(appointments, now)

	if agenda.BookedCount != 4 {
		t.Errorf("BookedCount = %d, want 4", agenda.BookedCount)
	}
	if agenda.DoneCount != 1 {
		t.Errorf("DoneCount = %d, want 1", agenda.DoneCount)
	}

	upcoming := map[int]bool{}
	for _, a := range agenda.Upcoming {
		upcoming[a.ID] = true
	}
	if len(upcoming) != 2 || !upcoming[1] || !upcoming[2] {
		t.Errorf("Upcoming IDs = %v, want {1, 2}", upcoming)
	}
	if upcoming[3] {
		t.Error("appointment a week out should fall past the horizon")
	}
	if upcoming[4] {
		t.Error("past appointment should not be upcoming")
	}
}
