package entity

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []AppointmentStatus{AppointmentStatusBooked, AppointmentStatusCompleted, AppointmentStatusCancelled} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []AppointmentStatus{"", "pending", "done", "BOOKED"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{AppointmentStatusBooked, AppointmentStatusCompleted, true},
		{AppointmentStatusBooked, AppointmentStatusCancelled, true},
		{AppointmentStatusBooked, AppointmentStatusBooked, false},
		{AppointmentStatusBooked, "pending", false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{AppointmentStatusCompleted, AppointmentStatusBooked, false},
		{AppointmentStatusCancelled, AppointmentStatusCompleted, false},
		{AppointmentStatusCancelled, AppointmentStatusBooked, false},
	}

	for _, tt := range tests {
		a := &Appointment{Status: tt.from}
		if got := a.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("CanTransitionTo(%q->%q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
