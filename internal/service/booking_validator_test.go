package service

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/SamarthX9/hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// fakeAvailabilityRepo serves windows from a slice; FirstByDoctorID returns
// the lowest-ID window just like the real implementation.
type fakeAvailabilityRepo struct {
	windows []entity.AvailabilityWindow
}

func (f *fakeAvailabilityRepo) Create(db *gorm.DB, window *entity.AvailabilityWindow) error {
	window.ID = len(f.windows) + 1
	f.windows = append(f.windows, *window)
	return nil
}

func (f *fakeAvailabilityRepo) FindByID(db *gorm.DB, id int) (*entity.AvailabilityWindow, error) {
	for i := range f.windows {
		if f.windows[i].ID == id {
			return &f.windows[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAvailabilityRepo) FirstByDoctorID(db *gorm.DB, doctorID uuid.UUID) (*entity.AvailabilityWindow, error) {
	var first *entity.AvailabilityWindow
	for i := range f.windows {
		if f.windows[i].DoctorID != doctorID {
			continue
		}
		if first == nil || f.windows[i].ID < first.ID {
			first = &f.windows[i]
		}
	}
	return first, nil
}

func (f *fakeAvailabilityRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.AvailabilityWindow, error) {
	var out []entity.AvailabilityWindow
	for _, w := range f.windows {
		if w.DoctorID == doctorID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) Delete(db *gorm.DB, id int) (int64, error) {
	for i := range f.windows {
		if f.windows[i].ID == id {
			f.windows = append(f.windows[:i], f.windows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// fakeAppointmentRepo keeps the ledger in a slice; the slot checks count
// rows of every status, mirroring the real queries.
type fakeAppointmentRepo struct {
	appointments []entity.Appointment
	nextID       int
}

func (f *fakeAppointmentRepo) Create(db *gorm.DB, a *entity.Appointment) error {
	f.nextID++
	a.ID = f.nextID
	f.appointments = append(f.appointments, *a)
	return nil
}

func (f *fakeAppointmentRepo) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			return &f.appointments[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range f.appointments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range f.appointments {
		if a.DoctorID == doctorID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeAppointmentRepo) ExistsForDoctorSlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, clock string, excludeID int) (bool, error) {
	for _, a := range f.appointments {
		if a.ID == excludeID {
			continue
		}
		if a.DoctorID == doctorID && a.Date.Equal(date) && a.Time == clock {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAppointmentRepo) ExistsForPatientSlot(db *gorm.DB, patientID uuid.UUID, date time.Time, clock string) (bool, error) {
	for _, a := range f.appointments {
		if a.PatientID == patientID && a.Date.Equal(date) && a.Time == clock {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAppointmentRepo) Update(db *gorm.DB, a *entity.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == a.ID {
			f.appointments[i] = *a
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeAppointmentRepo) UpdateStatusFromBooked(db *gorm.DB, id int, status entity.AppointmentStatus) (int64, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id && f.appointments[i].Status == entity.AppointmentStatusBooked {
			f.appointments[i].Status = status
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeAppointmentRepo) Count(db *gorm.DB) (int64, error) {
	return int64(len(f.appointments)), nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func windowFor(t *testing.T, doctorID uuid.UUID, id int, startDate, endDate, startTime, endTime string) entity.AvailabilityWindow {
	t.Helper()
	return entity.AvailabilityWindow{
		ID:        id,
		DoctorID:  doctorID,
		StartDate: mustDate(t, startDate),
		EndDate:   mustDate(t, endDate),
		StartTime: startTime,
		EndTime:   endTime,
	}
}

func TestValidateNoAvailability(t *testing.T) {
	validator := NewBookingValidator(quietLogger(), &fakeAvailabilityRepo{}, &fakeAppointmentRepo{})

	_, err := validator.Validate(nil, uuid.New(), uuid.New(), "2024-06-03", "10:00")
	if !errors.Is(err, ErrNoAvailability) {
		t.Fatalf("Validate() error = %v, want ErrNoAvailability", err)
	}
}

func TestValidateMalformedSlot(t *testing.T) {
	doctorID := uuid.New()
	availRepo := &fakeAvailabilityRepo{windows: []entity.AvailabilityWindow{
		windowFor(t, doctorID, 1, "2024-06-01", "2024-06-07", "09:00", "17:00"),
	}}
	validator := NewBookingValidator(quietLogger(), availRepo, &fakeAppointmentRepo{})

	cases := []struct{ date, clock string }{
		{"June 3rd", "10:00"},
		{"2024-6-3", "10:00"},
		{"2024-06-03", "10am"},
		{"2024-06-03", "9:00"},
		{"", ""},
	}
	for _, c := range cases {
		if _, err := validator.Validate(nil, uuid.New(), doctorID, c.date, c.clock); !errors.Is(err, ErrMalformedSlot) {
			t.Errorf("Validate(%q, %q) error = %v, want ErrMalformedSlot", c.date, c.clock, err)
		}
	}
}

func TestValidateWindowScenario(t *testing.T) {
	doctorID := uuid.New()
	patientA := uuid.New()
	patientB := uuid.New()

	availRepo := &fakeAvailabilityRepo{windows: []entity.AvailabilityWindow{
		windowFor(t, doctorID, 1, "2024-06-01", "2024-06-07", "09:00", "17:00"),
	}}
	apptRepo := &fakeAppointmentRepo{}
	validator := NewBookingValidator(quietLogger(), availRepo, apptRepo)

	// First booking of an in-range slot is accepted
	date, err := validator.Validate(nil, patientA, doctorID, "2024-06-03", "10:00")
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if err := apptRepo.Create(nil, &entity.Appointment{
		PatientID: patientA, DoctorID: doctorID, Date: date, Time: "10:00",
		Status: entity.AppointmentStatusBooked,
	}); err != nil {
		t.Fatal(err)
	}

	// Same slot again, any patient
	if _, err := validator.Validate(nil, patientB, doctorID, "2024-06-03", "10:00"); !errors.Is(err, ErrSlotTaken) {
		t.Errorf("duplicate slot: error = %v, want ErrSlotTaken", err)
	}

	// Out of date range
	if _, err := validator.Validate(nil, patientB, doctorID, "2024-06-08", "10:00"); !errors.Is(err, ErrDateOutOfRange) {
		t.Errorf("date after window: error = %v, want ErrDateOutOfRange", err)
	}
	if _, err := validator.Validate(nil, patientB, doctorID, "2024-05-31", "10:00"); !errors.Is(err, ErrDateOutOfRange) {
		t.Errorf("date before window: error = %v, want ErrDateOutOfRange", err)
	}

	// Out of time range
	if _, err := validator.Validate(nil, patientB, doctorID, "2024-06-03", "18:00"); !errors.Is(err, ErrTimeOutOfRange) {
		t.Errorf("time after window: error = %v, want ErrTimeOutOfRange", err)
	}
	if _, err := validator.Validate(nil, patientB, doctorID, "2024-06-03", "08:59"); !errors.Is(err, ErrTimeOutOfRange) {
		t.Errorf("time before window: error = %v, want ErrTimeOutOfRange", err)
	}

	// Inclusive boundaries accepted
	if _, err := validator.Validate(nil, patientB, doctorID, "2024-06-01", "09:00"); err != nil {
		t.Errorf("start boundary: %v", err)
	}
	if _, err := validator.Validate(nil, patientB, doctorID, "2024-06-07", "17:00"); err != nil {
		t.Errorf("end boundary: %v", err)
	}
}

func TestValidatePatientConflictAcrossDoctors(t *testing.T) {
	doctorA := uuid.New()
	doctorB := uuid.New()
	patientID := uuid.New()

	availRepo := &fakeAvailabilityRepo{windows: []entity.AvailabilityWindow{
		windowFor(t, doctorA, 1, "2024-06-01", "2024-06-07", "09:00", "17:00"),
		windowFor(t, doctorB, 2, "2024-06-01", "2024-06-07", "09:00", "17:00"),
	}}
	apptRepo := &fakeAppointmentRepo{appointments: []entity.Appointment{{
		ID: 1, PatientID: patientID, DoctorID: doctorA,
		Date: mustDate(t, "2024-06-03"), Time: "10:00",
		Status: entity.AppointmentStatusBooked,
	}}}
	validator := NewBookingValidator(quietLogger(), availRepo, apptRepo)

	// Same patient, same slot, different doctor
	if _, err := validator.Validate(nil, patientID, doctorB, "2024-06-03", "10:00"); !errors.Is(err, ErrPatientConflict) {
		t.Fatalf("Validate() error = %v, want ErrPatientConflict", err)
	}

	// Another patient is free to take doctor B's slot
	if _, err := validator.Validate(nil, uuid.New(), doctorB, "2024-06-03", "10:00"); err != nil {
		t.Fatalf("other patient, other doctor: %v", err)
	}
}

func TestValidateCancelledRowStillBlocksSlot(t *testing.T) {
	doctorID := uuid.New()
	availRepo := &fakeAvailabilityRepo{windows: []entity.AvailabilityWindow{
		windowFor(t, doctorID, 1, "2024-06-01", "2024-06-07", "09:00", "17:00"),
	}}
	apptRepo := &fakeAppointmentRepo{appointments: []entity.Appointment{{
		ID: 1, PatientID: uuid.New(), DoctorID: doctorID,
		Date: mustDate(t, "2024-06-03"), Time: "10:00",
		Status: entity.AppointmentStatusCancelled,
	}}}
	validator := NewBookingValidator(quietLogger(), availRepo, apptRepo)

	if _, err := validator.Validate(nil, uuid.New(), doctorID, "2024-06-03", "10:00"); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("cancelled row should keep the slot blocked, got %v", err)
	}
}

// Windows loaded from Postgres carry "HH:MM:SS" time strings; requests still
// carry "HH:MM" and must validate against them.
func TestValidateWindowLoadedInDatabaseFormat(t *testing.T) {
	doctorID := uuid.New()
	availRepo := &fakeAvailabilityRepo{windows: []entity.AvailabilityWindow{
		windowFor(t, doctorID, 1, "2024-06-01", "2024-06-07", "09:00:00", "17:00:00"),
	}}
	validator := NewBookingValidator(quietLogger(), availRepo, &fakeAppointmentRepo{})

	if _, err := validator.Validate(nil, uuid.New(), doctorID, "2024-06-05", "10:00"); err != nil {
		t.Errorf("in-range slot against DB-format window: %v", err)
	}
	if _, err := validator.Validate(nil, uuid.New(), doctorID, "2024-06-05", "08:00"); !errors.Is(err, ErrTimeOutOfRange) {
		t.Errorf("early slot against DB-format window: error = %v, want ErrTimeOutOfRange", err)
	}
	if _, err := validator.Validate(nil, uuid.New(), doctorID, "2024-06-05", "17:00"); err != nil {
		t.Errorf("end boundary against DB-format window: %v", err)
	}
}

func TestValidateCorruptStoredTimeSurfaces(t *testing.T) {
	doctorID := uuid.New()
	availRepo := &fakeAvailabilityRepo{windows: []entity.AvailabilityWindow{
		windowFor(t, doctorID, 1, "2024-06-01", "2024-06-07", "garbage", "17:00"),
	}}
	validator := NewBookingValidator(quietLogger(), availRepo, &fakeAppointmentRepo{})

	_, err := validator.Validate(nil, uuid.New(), doctorID, "2024-06-05", "10:00")
	if !errors.Is(err, entity.ErrInvalidTime) {
		t.Fatalf("unreadable stored time should surface, got %v", err)
	}
	if errors.Is(err, ErrTimeOutOfRange) {
		t.Fatal("unreadable stored time must not be reported as out of range")
	}
}

func TestValidateOnlyFirstWindowConsulted(t *testing.T) {
	doctorID := uuid.New()
	availRepo := &fakeAvailabilityRepo{windows: []entity.AvailabilityWindow{
		windowFor(t, doctorID, 1, "2024-06-01", "2024-06-03", "09:00", "12:00"),
		windowFor(t, doctorID, 2, "2024-06-01", "2024-06-30", "08:00", "20:00"),
	}}
	validator := NewBookingValidator(quietLogger(), availRepo, &fakeAppointmentRepo{})

	// Inside the second window only: the first window still decides
	if _, err := validator.Validate(nil, uuid.New(), doctorID, "2024-06-10", "10:00"); !errors.Is(err, ErrDateOutOfRange) {
		t.Errorf("date beyond first window: error = %v, want ErrDateOutOfRange", err)
	}
	if _, err := validator.Validate(nil, uuid.New(), doctorID, "2024-06-02", "15:00"); !errors.Is(err, ErrTimeOutOfRange) {
		t.Errorf("time beyond first window: error = %v, want ErrTimeOutOfRange", err)
	}
	if _, err := validator.Validate(nil, uuid.New(), doctorID, "2024-06-02", "10:00"); err != nil {
		t.Errorf("inside first window: %v", err)
	}
}
