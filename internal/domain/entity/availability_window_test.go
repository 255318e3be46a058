package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

var testNow = time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

func TestNewAvailabilityWindowRules(t *testing.T) {
	doctorID := uuid.New()

	tests := []struct {
		name      string
		startDate string
		endDate   string
		startTime string
		endTime   string
		wantErr   error
	}{
		{"valid full week", "2024-06-01", "2024-06-07", "09:00", "17:00", nil},
		{"valid single day", "2024-06-03", "2024-06-03", "08:00", "12:00", nil},
		{"valid at lead limit", "2024-06-01", "2024-06-08", "09:00", "17:00", nil},
		{"garbage start date", "June 1st", "2024-06-07", "09:00", "17:00", ErrInvalidDate},
		{"garbage end date", "2024-06-01", "07-06-2024", "09:00", "17:00", ErrInvalidDate},
		{"start in past", "2024-05-31", "2024-06-07", "09:00", "17:00", ErrStartInPast},
		{"end beyond seven days", "2024-06-01", "2024-06-09", "09:00", "17:00", ErrRangeTooFar},
		{"end before start", "2024-06-05", "2024-06-03", "09:00", "17:00", ErrEndBeforeStart},
		{"garbage start time", "2024-06-01", "2024-06-07", "9am", "17:00", ErrInvalidTime},
		{"garbage end time", "2024-06-01", "2024-06-07", "09:00", "5pm", ErrInvalidTime},
		{"end time equals start", "2024-06-01", "2024-06-07", "09:00", "09:00", ErrEndTimeNotAfterStart},
		{"end time before start", "2024-06-01", "2024-06-07", "17:00", "09:00", ErrEndTimeNotAfterStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := NewAvailabilityWindow(doctorID, tt.startDate, tt.endDate, tt.startTime, tt.endTime, testNow)
			if !errors.Is(err, tt.wantErr) && err != tt.wantErr {
				t.Fatalf("NewAvailabilityWindow() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if window == nil {
					t.Fatal("expected a window, got nil")
				}
				if window.DoctorID != doctorID {
					t.Errorf("DoctorID = %v, want %v", window.DoctorID, doctorID)
				}
			}
		})
	}
}

func TestNewAvailabilityWindowAllowsDuplicates(t *testing.T) {
	doctorID := uuid.New()

	first, err := NewAvailabilityWindow(doctorID, "2024-06-01", "2024-06-07", "09:00", "17:00", testNow)
	if err != nil {
		t.Fatalf("first window: %v", err)
	}
	second, err := NewAvailabilityWindow(doctorID, "2024-06-01", "2024-06-07", "09:00", "17:00", testNow)
	if err != nil {
		t.Fatalf("second identical window: %v", err)
	}

	if first.StartDate != second.StartDate || first.EndDate != second.EndDate ||
		first.StartTime != second.StartTime || first.EndTime != second.EndTime {
		t.Error("identical declarations should build identical windows")
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"17:00", 1020, false},
		{"23:59", 1439, false},
		{"09:00:00", 540, false},
		{"17:30:00", 1050, false},
		{"23:59:59", 1439, false},
		{"9:00", 0, true},
		{"9:00:00", 0, true},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"09:00:60", 0, true},
		{"0900", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCoversDateInclusiveBounds(t *testing.T) {
	window, err := NewAvailabilityWindow(uuid.New(), "2024-06-01", "2024-06-07", "09:00", "17:00", testNow)
	if err != nil {
		t.Fatalf("NewAvailabilityWindow: %v", err)
	}

	mustParse := func(s string) time.Time {
		d, err := time.Parse(DateLayout, s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return d
	}

	if !window.CoversDate(mustParse("2024-06-01")) {
		t.Error("start date should be inside")
	}
	if !window.CoversDate(mustParse("2024-06-07")) {
		t.Error("end date should be inside")
	}
	if window.CoversDate(mustParse("2024-05-31")) {
		t.Error("day before start should be outside")
	}
	if window.CoversDate(mustParse("2024-06-08")) {
		t.Error("day after end should be outside")
	}
}

func TestCoversClockInclusiveBounds(t *testing.T) {
	window, err := NewAvailabilityWindow(uuid.New(), "2024-06-01", "2024-06-07", "09:00", "17:00", testNow)
	if err != nil {
		t.Fatalf("NewAvailabilityWindow: %v", err)
	}

	clock := func(s string) int {
		c, err := ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", s, err)
		}
		return c
	}

	covers := func(s string) bool {
		ok, err := window.CoversClock(clock(s))
		if err != nil {
			t.Fatalf("CoversClock(%q): %v", s, err)
		}
		return ok
	}

	if !covers("09:00") {
		t.Error("start time should be inside")
	}
	if !covers("17:00") {
		t.Error("end time should be inside")
	}
	if covers("08:59") {
		t.Error("minute before start should be outside")
	}
	if covers("17:01") {
		t.Error("minute after end should be outside")
	}
}

// Postgres TIME columns read back as "HH:MM:SS"; a window loaded from the
// database must still cover the "HH:MM" clocks requests carry.
func TestCoversClockDatabaseFormat(t *testing.T) {
	window := &AvailabilityWindow{
		ID:        1,
		DoctorID:  uuid.New(),
		StartTime: "09:00:00",
		EndTime:   "17:00:00",
	}

	clock, err := ParseClock("10:00")
	if err != nil {
		t.Fatalf("ParseClock: %v", err)
	}
	ok, err := window.CoversClock(clock)
	if err != nil {
		t.Fatalf("CoversClock: %v", err)
	}
	if !ok {
		t.Error("10:00 should be covered by a 09:00:00-17:00:00 window")
	}

	early, err := ParseClock("08:00")
	if err != nil {
		t.Fatalf("ParseClock: %v", err)
	}
	ok, err = window.CoversClock(early)
	if err != nil {
		t.Fatalf("CoversClock: %v", err)
	}
	if ok {
		t.Error("08:00 should be outside a 09:00:00-17:00:00 window")
	}
}

func TestCoversClockCorruptStoredTime(t *testing.T) {
	window := &AvailabilityWindow{ID: 2, StartTime: "garbage", EndTime: "17:00"}

	if _, err := window.CoversClock(600); !errors.Is(err, ErrInvalidTime) {
		t.Errorf("expected ErrInvalidTime for unparseable stored time, got %v", err)
	}
}

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:00:00", "09:00"},
		{"17:30:00", "17:30"},
		{"09:00", "09:00"},
		{"not a clock", "not a clock"},
	}

	for _, tt := range tests {
		if got := NormalizeClock(tt.in); got != tt.want {
			t.Errorf("NormalizeClock(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// The current day for the past/lead-time rules is the UTC day, whatever zone
// the supplied instant carries.
func TestNewAvailabilityWindowUsesUTCDay(t *testing.T) {
	doctorID := uuid.New()
	// 2024-06-02 01:00 at UTC+9 is still 2024-06-01 in UTC
	aheadOfUTC := time.Date(2024, 6, 2, 1, 0, 0, 0, time.FixedZone("UTC+9", 9*3600))

	if _, err := NewAvailabilityWindow(doctorID, "2024-06-01", "2024-06-05", "09:00", "17:00", aheadOfUTC); err != nil {
		t.Errorf("start on the current UTC day should be accepted, got %v", err)
	}
	if _, err := NewAvailabilityWindow(doctorID, "2024-06-08", "2024-06-08", "09:00", "17:00", aheadOfUTC); err != nil {
		t.Errorf("end at the UTC lead limit should be accepted, got %v", err)
	}
	if _, err := NewAvailabilityWindow(doctorID, "2024-06-09", "2024-06-09", "09:00", "17:00", aheadOfUTC); !errors.Is(err, ErrRangeTooFar) {
		t.Errorf("end past the UTC lead limit should be rejected, got %v", err)
	}
}
