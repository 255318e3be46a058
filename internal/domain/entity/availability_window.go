package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Date and clock formats used across the booking domain
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	// timeLayoutDB matches the text Postgres produces when a TIME column
	// is scanned back into a string
	timeLayoutDB = "15:04:05"

	// MaxWindowLeadDays bounds how far ahead a doctor may declare availability
	MaxWindowLeadDays = 7
)

var (
	ErrInvalidDate          = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTime          = errors.New("invalid time format, use HH:MM")
	ErrStartInPast          = errors.New("start date cannot be in the past")
	ErrRangeTooFar          = errors.New("availability can only be set within the next 7 days")
	ErrEndBeforeStart       = errors.New("end date must be after or equal to start date")
	ErrEndTimeNotAfterStart = errors.New("end time must be after start time")
)

// AvailabilityWindow is a doctor-declared date range plus daily time range
// during which bookings may be accepted. Both ranges are inclusive at the
// boundaries. A doctor may hold any number of windows; they are never merged.
type AvailabilityWindow struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`
	StartTime string    `gorm:"type:time;not null" json:"start_time"`
	EndTime   string    `gorm:"type:time;not null" json:"end_time"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (AvailabilityWindow) TableName() string {
	return "availability_windows"
}

// ParseClock parses a clock string into minutes since midnight. Requests
// carry zero-padded "HH:MM"; values read back from Postgres TIME columns
// come as "HH:MM:SS", so both shapes are accepted. Parsing into a numeric
// value gives the same total order as comparing the padded strings.
func ParseClock(s string) (int, error) {
	layout := TimeLayout
	switch len(s) {
	case len(TimeLayout):
	case len(timeLayoutDB):
		layout = timeLayoutDB
	default:
		return 0, ErrInvalidTime
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, ErrInvalidTime
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
func FormatClock(clock int) string {
	return fmt.Sprintf("%02d:%02d", clock/60, clock%60)
}

// NormalizeClock rewrites an accepted clock string as "HH:MM", dropping the
// seconds Postgres appends on read. Unparseable input is returned unchanged
// so callers rendering stored values never lose data.
func NormalizeClock(s string) string {
	clock, err := ParseClock(s)
	if err != nil {
		return s
	}
	return FormatClock(clock)
}

// NewAvailabilityWindow validates the raw form values and builds a window.
// now supplies the current instant so the past/lead-time rules are testable;
// the current day is taken in UTC regardless of the zone now carries.
func NewAvailabilityWindow(doctorID uuid.UUID, startDate, endDate, startTime, endTime string, now time.Time) (*AvailabilityWindow, error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(today) {
		return nil, ErrStartInPast
	}
	if end.After(today.AddDate(0, 0, MaxWindowLeadDays)) {
		return nil, ErrRangeTooFar
	}
	if end.Before(start) {
		return nil, ErrEndBeforeStart
	}

	startClock, err := ParseClock(startTime)
	if err != nil {
		return nil, ErrInvalidTime
	}
	endClock, err := ParseClock(endTime)
	if err != nil {
		return nil, ErrInvalidTime
	}
	if endClock <= startClock {
		return nil, ErrEndTimeNotAfterStart
	}

	return &AvailabilityWindow{
		DoctorID:  doctorID,
		StartDate: start,
		EndDate:   end,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// CoversDate reports whether date falls within [StartDate, EndDate], inclusive.
func (w *AvailabilityWindow) CoversDate(date time.Time) bool {
	return !date.Before(w.StartDate) && !date.After(w.EndDate)
}

// CoversClock reports whether the clock value (minutes since midnight) falls
// within [StartTime, EndTime], inclusive. A stored time that cannot be parsed
// is reported as an error rather than treated as not covered.
func (w *AvailabilityWindow) CoversClock(clock int) (bool, error) {
	start, err := ParseClock(w.StartTime)
	if err != nil {
		return false, fmt.Errorf("window %d start time %q: %w", w.ID, w.StartTime, err)
	}
	end, err := ParseClock(w.EndTime)
	if err != nil {
		return false, fmt.Errorf("window %d end time %q: %w", w.ID, w.EndTime, err)
	}
	return clock >= start && clock <= end, nil
}
