package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stressbuster/stressbuster-api/api"
	"github.com/stressbuster/stressbuster-api/config"
	"github.com/stressbuster/stressbuster-api/models"
)

func TestAdmin_Appointments(t *testing.T) {
	a := newTestApp(t)
	statuses := []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}
	a.appointments.On("ListByDate", anyCtx, bookingDay, statuses).Return([]models.Appointment{{ID: "a1"}}, nil)

	response := a.executeRequest(newRequest("GET", "/api/admin/appointments?date="+bookingDay+"&status=pending,+confirmed", nil, adminToken(t)))

	checkResponseCode(t, http.StatusOK, response.Code)
	assert.Equal(t, "Appointments retrieved successfully", decode(t, response).Message)
}

func TestAdmin_AppointmentsBadFilter(t *testing.T) {
	a := newTestApp(t)

	response := a.executeRequest(newRequest("GET", "/api/admin/appointments?status=lost", nil, adminToken(t)))

	checkResponseCode(t, http.StatusBadRequest, response.Code)
	a.appointments.AssertNotCalled(t, "ListByDate", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdmin_UpdateStatus(t *testing.T) {
	a := newTestApp(t)
	a.appointments.On("FindByID", anyCtx, "a1").Return(&models.Appointment{ID: "a1", Status: models.StatusPending}, nil)
	a.appointments.On("UpdateStatus", anyCtx, "a1", mock.Anything, models.StatusConfirmed).
		Return(&models.Appointment{ID: "a1", Status: models.StatusConfirmed}, nil)

	response := a.executeRequest(newRequest("PUT", "/api/admin/appointments/a1/status", map[string]string{"status": "confirmed"}, adminToken(t)))

	checkResponseCode(t, http.StatusOK, response.Code)
}

func TestAdmin_UpdateStatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    map[string]string
		current *models.Appointment
		code    int
		message string
	}{
		{"missing status", map[string]string{}, nil, http.StatusBadRequest, "Validation failed"},
		{"unknown status", map[string]string{"status": "lost"}, nil, http.StatusBadRequest, "Invalid appointment status"},
		{"terminal status", map[string]string{"status": "confirmed"}, &models.Appointment{ID: "a1", Status: models.StatusCancelled},
			http.StatusConflict, "Appointment status transition not allowed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			if tt.current != nil {
				a.appointments.On("FindByID", anyCtx, "a1").Return(tt.current, nil)
			}

			response := a.executeRequest(newRequest("PUT", "/api/admin/appointments/a1/status", tt.body, adminToken(t)))

			checkResponseCode(t, tt.code, response.Code)
			assert.Equal(t, tt.message, decode(t, response).Message)
			a.appointments.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAdmin_UpdateStatusRequiresAdmin(t *testing.T) {
	a := newTestApp(t)

	response := a.executeRequest(newRequest("PUT", "/api/admin/appointments/a1/status", map[string]string{"status": "confirmed"}, userToken(t, "u1")))

	checkResponseCode(t, http.StatusForbidden, response.Code)
}

func TestCloudinary_NotConfigured(t *testing.T) {
	a := newTestApp(t)

	response := a.executeRequest(newRequest("POST", "/api/admin/media/signature", nil, adminToken(t)))

	checkResponseCode(t, http.StatusServiceUnavailable, response.Code)
	assert.Equal(t, "Media uploads are not configured", decode(t, response).Message)
}

func TestCloudinary_Signature(t *testing.T) {
	h := CloudinaryHandler{
		Base:   Base{Render: api.Renderer{}},
		Config: config.CloudinaryConfig{CloudName: "demo", APIKey: "key", APISecret: "secret", UploadPreset: "resources"},
		now:    func() time.Time { return time.Unix(1700000000, 0) },
	}
	sign := func() SignatureResponse {
		rr := httptest.NewRecorder()
		h.GenerateSignature(rr, newRequest("POST", "/api/admin/media/signature", nil, ""))
		checkResponseCode(t, http.StatusOK, rr.Code)
		var got SignatureResponse
		require.NoError(t, json.Unmarshal(decode(t, rr).Data, &got))
		return got
	}

	got := sign()
	assert.Equal(t, "1700000000", got.Timestamp)
	assert.Equal(t, "demo", got.CloudName)
	assert.Equal(t, "key", got.APIKey)
	assert.Equal(t, "resources", got.UploadPreset)
	assert.Equal(t, resourceFolder, got.Folder)
	assert.NotEmpty(t, got.Signature)

	h.Config.APISecret = "rotated"
	assert.NotEqual(t, got.Signature, sign().Signature)
}
