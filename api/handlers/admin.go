package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/stressbuster/stressbuster-api/api"
	"github.com/stressbuster/stressbuster-api/booking"
	"github.com/stressbuster/stressbuster-api/models"
)

// Admin exists for handling admin dashboard requests
type Admin struct {
	Base
	Booking *booking.Service
}

// AppointmentsHandler lists appointments, optionally narrowed by ?date= and a comma
// separated ?status= list
func (a Admin) AppointmentsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var statuses []models.AppointmentStatus
	for _, s := range strings.Split(q.Get("status"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			statuses = append(statuses, models.AppointmentStatus(s))
		}
	}

	ctx, cancel := a.queryContext(r)
	defer cancel()

	appts, err := a.Booking.AppointmentsOn(ctx, q.Get("date"), statuses)
	if err != nil {
		a.Render.Error(w, r, err)
		return
	}
	a.Render.Success(w, http.StatusOK, "Appointments retrieved successfully", appts)
}

type statusRequest struct {
	Status models.AppointmentStatus `json:"status"`
}

// UpdateStatusHandler moves an appointment to a new status
func (a Admin) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeBody(r, &req); err != nil {
		a.Render.Error(w, r, err)
		return
	}
	if req.Status == "" {
		a.Render.Error(w, r, api.BadRequest("Validation failed", models.FieldError{Field: "status", Message: "Status is required"}))
		return
	}

	ctx, cancel := a.queryContext(r)
	defer cancel()

	appt, err := a.Booking.UpdateStatus(ctx, mux.Vars(r)["id"], req.Status)
	if err != nil {
		a.Render.Error(w, r, err)
		return
	}
	admin, _ := api.IdentityFrom(r.Context())
	zap.S().Infow("appointment status updated", "appointmentId", appt.ID, "status", appt.Status, "adminId", admin.UserID)
	a.Render.Success(w, http.StatusOK, "Appointment status updated successfully", appt)
}
