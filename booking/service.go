package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/models"
)

const dateLayout = "2006-01-02"

// Booking errors, each maps to one HTTP status
var (
	ErrInvalidDate         = errors.New("appointment date must be a valid YYYY-MM-DD date")
	ErrPastDate            = errors.New("appointment date cannot be in the past")
	ErrInvalidTime         = errors.New("appointment time must be on the hour, as HH:00 or HH:00:00")
	ErrCounselorRequired   = errors.New("counselor, date, and time are required")
	ErrCounselorNotFound   = errors.New("counselor not found")
	ErrSlotUnavailable     = errors.New("counselor is not available at this time")
	ErrSlotTaken           = errors.New("this time slot is already booked")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrForbidden           = errors.New("you can only cancel your own appointments")
	ErrAlreadyCancelled    = errors.New("appointment is already cancelled")
	ErrNotCancellable      = errors.New("appointment can no longer be cancelled")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrInvalidTransition   = errors.New("appointment status transition not allowed")
)

// transitions lists the statuses reachable from each non terminal status
var transitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCompleted, models.StatusCancelled, models.StatusNoShow},
	models.StatusConfirmed: {models.StatusCompleted, models.StatusCancelled, models.StatusNoShow},
}

// CanTransition reports whether an appointment may move from one status to another
func CanTransition(from, to models.AppointmentStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// sources returns every status that may move to to
func sources(to models.AppointmentStatus) []models.AppointmentStatus {
	var out []models.AppointmentStatus
	for _, from := range []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed} {
		if CanTransition(from, to) {
			out = append(out, from)
		}
	}
	return out
}

// BookRequest is a request to book a counselor slot. UserID is nil for anonymous bookings.
type BookRequest struct {
	CounselorID string
	Date        string
	Time        string
	UserID      *string
	Anonymous   bool
	Notes       *string
}

// Requester identifies who asks for a change
type Requester struct {
	UserID string
	Admin  bool
}

// Service runs the booking workflow against the counselor and appointment stores
type Service struct {
	Counselors   databases.CounselorDatabase
	Appointments databases.AppointmentDatabase
	now          func() time.Time
}

// NewService returns a booking service using the given stores
func NewService(counselors databases.CounselorDatabase, appointments databases.AppointmentDatabase) *Service {
	return &Service{Counselors: counselors, Appointments: appointments, now: time.Now}
}

// ListCounselors lists active counselors, best rated first
func (s *Service) ListCounselors(ctx context.Context) ([]models.Counselor, error) {
	return s.Counselors.ListActive(ctx)
}

// Slots returns the free hourly slots of a counselor on date. Days the counselor does
// not work yield an empty list.
func (s *Service) Slots(ctx context.Context, counselorID, date string) ([]string, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	c, err := s.activeCounselor(ctx, counselorID)
	if err != nil {
		return nil, err
	}
	if !worksOn(c, day.Weekday()) {
		return []string{}, nil
	}
	start, end, err := window(c)
	if err != nil {
		return nil, err
	}
	booked, err := s.Appointments.BookedTimes(ctx, counselorID, date)
	if err != nil {
		return nil, fmt.Errorf("booked times: %w", err)
	}
	return AvailableSlots(start, end, booked), nil
}

// Book reserves a slot. At most one non cancelled appointment may exist per counselor,
// date and time; a concurrent booking that loses the race on the storage unique index
// gets ErrSlotTaken just like one that finds the slot taken up front.
func (s *Service) Book(ctx context.Context, req BookRequest) (*models.Appointment, error) {
	if strings.TrimSpace(req.CounselorID) == "" || strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Time) == "" {
		return nil, ErrCounselorRequired
	}
	day, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if day.Before(today(s.now())) {
		return nil, ErrPastDate
	}
	slot, err := NormalizeTime(req.Time)
	if err != nil || !strings.HasSuffix(slot, ":00:00") {
		return nil, ErrInvalidTime
	}

	c, err := s.activeCounselor(ctx, req.CounselorID)
	if err != nil {
		return nil, err
	}
	start, end, err := window(c)
	if err != nil {
		return nil, err
	}
	hour, _ := hourOf(slot)
	if !worksOn(c, day.Weekday()) || hour < start || hour >= end {
		return nil, ErrSlotUnavailable
	}

	_, err = s.Appointments.FindActiveAt(ctx, c.ID, req.Date, slot)
	switch {
	case err == nil:
		return nil, ErrSlotTaken
	case !errors.Is(err, databases.ErrNotFound):
		return nil, fmt.Errorf("check slot: %w", err)
	}

	now := s.now().UTC()
	appt, err := s.Appointments.InsertOne(ctx, models.Appointment{
		CounselorID: c.ID,
		UserID:      req.UserID,
		Date:        req.Date,
		Time:        slot,
		Status:      models.StatusPending,
		IsAnonymous: req.Anonymous,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if errors.Is(err, databases.ErrDuplicateKey) {
		return nil, ErrSlotTaken
	}
	if err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}
	return appt, nil
}

// Cancel cancels an appointment on behalf of its owner or an admin
func (s *Service) Cancel(ctx context.Context, appointmentID string, who Requester) (*models.Appointment, error) {
	appt, err := s.findAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !who.Admin && (appt.UserID == nil || *appt.UserID != who.UserID) {
		return nil, ErrForbidden
	}
	switch appt.Status {
	case models.StatusCancelled:
		return nil, ErrAlreadyCancelled
	case models.StatusCompleted, models.StatusNoShow:
		return nil, ErrNotCancellable
	}

	updated, err := s.Appointments.UpdateStatus(ctx, appt.ID, []models.AppointmentStatus{appt.Status}, models.StatusCancelled)
	if errors.Is(err, databases.ErrNotFound) {
		// the status moved underneath us, report against the fresh state
		return nil, s.raceError(ctx, appt.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("cancel appointment: %w", err)
	}
	return updated, nil
}

// UpdateStatus moves an appointment along its lifecycle. Terminal statuses have no way
// out.
func (s *Service) UpdateStatus(ctx context.Context, appointmentID string, to models.AppointmentStatus) (*models.Appointment, error) {
	if !to.Valid() {
		return nil, ErrInvalidStatus
	}
	appt, err := s.findAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(appt.Status, to) {
		return nil, ErrInvalidTransition
	}
	updated, err := s.Appointments.UpdateStatus(ctx, appt.ID, sources(to), to)
	if errors.Is(err, databases.ErrNotFound) {
		return nil, ErrInvalidTransition
	}
	if err != nil {
		return nil, fmt.Errorf("update appointment status: %w", err)
	}
	return updated, nil
}

// UserAppointments lists the appointments of a user, latest first
func (s *Service) UserAppointments(ctx context.Context, userID string) ([]models.AppointmentWithCounselor, error) {
	return s.Appointments.ListByUser(ctx, userID)
}

// AppointmentsOn lists appointments on date (all dates when empty) in the given statuses
// (all statuses when empty)
func (s *Service) AppointmentsOn(ctx context.Context, date string, statuses []models.AppointmentStatus) ([]models.Appointment, error) {
	if date != "" {
		if _, err := time.Parse(dateLayout, date); err != nil {
			return nil, ErrInvalidDate
		}
	}
	for _, st := range statuses {
		if !st.Valid() {
			return nil, ErrInvalidStatus
		}
	}
	return s.Appointments.ListByDate(ctx, date, statuses)
}

// Counselor returns a single counselor, whether active or not
func (s *Service) Counselor(ctx context.Context, id string) (*models.Counselor, error) {
	c, err := s.Counselors.FindByID(ctx, id)
	if errors.Is(err, databases.ErrNotFound) {
		return nil, ErrCounselorNotFound
	}
	return c, err
}

func (s *Service) activeCounselor(ctx context.Context, id string) (*models.Counselor, error) {
	c, err := s.Counselor(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.IsActive {
		return nil, ErrCounselorNotFound
	}
	return c, nil
}

func (s *Service) findAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Appointments.FindByID(ctx, id)
	if errors.Is(err, databases.ErrNotFound) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return appt, nil
}

func (s *Service) raceError(ctx context.Context, id string) error {
	appt, err := s.findAppointment(ctx, id)
	if err != nil {
		return err
	}
	if appt.Status == models.StatusCancelled {
		return ErrAlreadyCancelled
	}
	return ErrNotCancellable
}

// window returns the whole hours [start, end) during which every slot fits inside the
// counselor's working time
func window(c *models.Counselor) (int, int, error) {
	start, err := openingHour(c.AvailableTimeStart)
	if err != nil {
		return 0, 0, fmt.Errorf("counselor %s start time: %w", c.ID, err)
	}
	end, err := hourOf(c.AvailableTimeEnd)
	if err != nil {
		return 0, 0, fmt.Errorf("counselor %s end time: %w", c.ID, err)
	}
	return start, end, nil
}

// worksOn reports whether d is one of the counselor's days. No days listed means every day.
func worksOn(c *models.Counselor, d time.Weekday) bool {
	if len(c.AvailableDays) == 0 {
		return true
	}
	for _, name := range c.AvailableDays {
		if strings.EqualFold(strings.TrimSpace(name), d.String()) {
			return true
		}
	}
	return false
}

func today(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
