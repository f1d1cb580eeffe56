package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stressbuster/stressbuster-api/booking"
	"github.com/stressbuster/stressbuster-api/chatbot"
	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"http error", Forbidden("nope"), http.StatusForbidden, "nope"},
		{"not found", databases.ErrNotFound, http.StatusNotFound, "Record not found"},
		{"duplicate", fmt.Errorf("insert: %w", databases.ErrDuplicateKey), http.StatusConflict, "Duplicate entry. This record already exists."},
		{"invalid reference", databases.ErrInvalidReference, http.StatusBadRequest, "Invalid reference"},
		{"slot taken", booking.ErrSlotTaken, http.StatusConflict, "This time slot is already booked"},
		{"already cancelled", booking.ErrAlreadyCancelled, http.StatusConflict, "Appointment is already cancelled"},
		{"forbidden cancel", booking.ErrForbidden, http.StatusForbidden, "You can only cancel your own appointments"},
		{"counselor missing", booking.ErrCounselorNotFound, http.StatusNotFound, "Counselor not found"},
		{"unavailable", booking.ErrSlotUnavailable, http.StatusBadRequest, "Counselor is not available at this time"},
		{"chat validation", chatbot.ErrMessageRequired, http.StatusBadRequest, "Message and sessionId are required"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := Classify(tt.err)
			assert.Equal(t, tt.status, he.Status)
			assert.Equal(t, tt.message, he.Message)
		})
	}
}

func TestRenderer_ErrorHidesDetailOutsideDevelopment(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/x", nil)

	rr := httptest.NewRecorder()
	Renderer{}.Error(rr, req, errors.New("secret database detail"))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"status":"error","message":"Internal Server Error"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	Renderer{Debug: true}.Error(rr, req, errors.New("secret database detail"))
	assert.JSONEq(t, `{"status":"error","message":"Internal Server Error","detail":"secret database detail"}`, rr.Body.String())
}

func TestRenderer_FieldErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
	rr := httptest.NewRecorder()

	Renderer{}.Error(rr, req, BadRequest("Validation failed", models.FieldError{Field: "email", Message: "Valid email is required"}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"status":"error","message":"Validation failed","errors":[{"field":"email","message":"Valid email is required"}]}`, rr.Body.String())
}

func TestRenderer_Success(t *testing.T) {
	rr := httptest.NewRecorder()
	Renderer{}.Success(rr, http.StatusCreated, "Created", map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"success","message":"Created","data":{"id":"1"}}`, rr.Body.String())

	rr = httptest.NewRecorder()
	Renderer{}.Paginated(rr, "Resources retrieved successfully", []string{"a"}, models.NewPagination(2, 10, 25))
	assert.JSONEq(t, `{"status":"success","message":"Resources retrieved successfully","data":["a"],
		"pagination":{"page":2,"limit":10,"total":25,"totalPages":3}}`, rr.Body.String())
}
