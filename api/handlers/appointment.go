package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/stressbuster/stressbuster-api/api"
	"github.com/stressbuster/stressbuster-api/booking"
	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/mailer"
	"github.com/stressbuster/stressbuster-api/models"
	templates "github.com/stressbuster/stressbuster-api/templates/html"
)

// mailTimeout bounds the confirmation email sent after a booking
const mailTimeout = 30 * time.Second

// Appointment exists for handling counselor and appointment requests
type Appointment struct {
	Base
	Booking *booking.Service
	Users   databases.UserDatabase
	Mail    mailer.Mailer
}

type bookRequest struct {
	CounselorID     string  `json:"counselorId"`
	AppointmentDate string  `json:"appointmentDate"`
	AppointmentTime string  `json:"appointmentTime"`
	IsAnonymous     bool    `json:"isAnonymous"`
	Notes           *string `json:"notes"`
}

// BookResponse is returned for a new appointment
type BookResponse struct {
	AppointmentID string              `json:"appointmentId"`
	Appointment   *models.Appointment `json:"appointment"`
}

// CounselorsHandler lists the active counselors, best rated first
func (a Appointment) CounselorsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := a.queryContext(r)
	defer cancel()

	counselors, err := a.Booking.ListCounselors(ctx)
	if err != nil {
		a.Render.Error(w, r, err)
		return
	}
	a.Render.Success(w, http.StatusOK, "Counselors retrieved successfully", counselors)
}

// SlotsHandler lists the free hourly slots of a counselor on a date
func (a Appointment) SlotsHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	ctx, cancel := a.queryContext(r)
	defer cancel()

	slots, err := a.Booking.Slots(ctx, vars["counselorId"], vars["date"])
	if err != nil {
		a.Render.Error(w, r, err)
		return
	}
	a.Render.Success(w, http.StatusOK, "Available slots retrieved successfully", slots)
}

// BookHandler books a slot, for the caller when authenticated and anonymously otherwise
func (a Appointment) BookHandler(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := decodeBody(r, &req); err != nil {
		a.Render.Error(w, r, err)
		return
	}

	ctx, cancel := a.queryContext(r)
	defer cancel()

	userID := userIDFrom(r)
	appt, err := a.Booking.Book(ctx, booking.BookRequest{
		CounselorID: req.CounselorID,
		Date:        req.AppointmentDate,
		Time:        req.AppointmentTime,
		UserID:      userID,
		Anonymous:   req.IsAnonymous || userID == nil,
		Notes:       req.Notes,
	})
	if err != nil {
		a.Render.Error(w, r, err)
		return
	}
	zap.S().Infow("appointment booked",
		"appointmentId", appt.ID,
		"counselorId", appt.CounselorID,
		"date", appt.Date,
		"time", appt.Time,
	)

	if appt.UserID != nil && !appt.IsAnonymous {
		go a.sendConfirmation(*appt)
	}
	a.Render.Success(w, http.StatusCreated, "Appointment booked successfully", BookResponse{AppointmentID: appt.ID, Appointment: appt})
}

// MyAppointmentsHandler lists the appointments of the authenticated user, latest first
func (a Appointment) MyAppointmentsHandler(w http.ResponseWriter, r *http.Request) {
	id, _ := api.IdentityFrom(r.Context())

	ctx, cancel := a.queryContext(r)
	defer cancel()

	appts, err := a.Booking.UserAppointments(ctx, id.UserID)
	if err != nil {
		a.Render.Error(w, r, err)
		return
	}
	a.Render.Success(w, http.StatusOK, "Appointments retrieved successfully", appts)
}

// CancelHandler cancels an appointment owned by the caller. Admins may cancel any.
func (a Appointment) CancelHandler(w http.ResponseWriter, r *http.Request) {
	id, _ := api.IdentityFrom(r.Context())

	ctx, cancel := a.queryContext(r)
	defer cancel()

	appt, err := a.Booking.Cancel(ctx, mux.Vars(r)["id"], booking.Requester{UserID: id.UserID, Admin: id.Admin})
	if err != nil {
		a.Render.Error(w, r, err)
		return
	}
	a.Render.Success(w, http.StatusOK, "Appointment cancelled successfully", appt)
}

func (a Appointment) sendConfirmation(appt models.Appointment) {
	defer func() {
		if r := recover(); r != nil {
			zap.S().Errorw("panic in sendConfirmation", "appointmentId", appt.ID, "panic", r)
		}
	}()
	if a.Mail == nil || a.Users == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
	defer cancel()

	user, err := a.Users.FindByID(ctx, *appt.UserID)
	if err != nil {
		zap.S().Warnw("confirmation skipped, user lookup failed", "appointmentId", appt.ID, "error", err)
		return
	}
	counselor := "your counselor"
	if c, err := a.Booking.Counselor(ctx, appt.CounselorID); err == nil {
		counselor = c.Name
	}

	email := templates.BookingConfirmation(templates.AppointmentDetails{
		Username:  user.Username,
		Counselor: counselor,
		Date:      appt.Date,
		Time:      appt.Time,
	})
	if err := a.Mail.Send(ctx, user.Email, user.Username, email); err != nil {
		zap.S().Errorw("failed to send booking confirmation", "appointmentId", appt.ID, "error", err)
	}
}
