package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/stressbuster/stressbuster-api/booking"
	"github.com/stressbuster/stressbuster-api/chatbot"
	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/logging"
	"github.com/stressbuster/stressbuster-api/models"
)

// Renderer writes the response envelope. Debug adds internal error details to 500
// responses and is only set in development.
type Renderer struct {
	Debug bool
}

// Success writes a success envelope with status code
func (rd Renderer) Success(w http.ResponseWriter, status int, message string, data interface{}) {
	write(w, status, models.Response{Status: models.StatusSuccess, Message: message, Data: data})
}

// Paginated writes a success envelope carrying pagination info
func (rd Renderer) Paginated(w http.ResponseWriter, message string, data interface{}, p *models.Pagination) {
	write(w, http.StatusOK, models.Response{Status: models.StatusSuccess, Message: message, Data: data, Pagination: p})
}

// Error maps err to its status and writes an error envelope. Unknown errors become a
// logged 500 that never leaks the cause outside development.
func (rd Renderer) Error(w http.ResponseWriter, r *http.Request, err error) {
	he := Classify(err)
	resp := models.Response{Status: models.StatusError, Message: he.Message, Errors: he.Fields}
	if he.Status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).Errorw("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		if rd.Debug {
			resp.Detail = err.Error()
		}
	}
	write(w, he.Status, resp)
}

var kinds = []struct {
	err    error
	status int
}{
	{databases.ErrNotFound, http.StatusNotFound},
	{databases.ErrInvalidReference, http.StatusBadRequest},
	{booking.ErrCounselorRequired, http.StatusBadRequest},
	{booking.ErrInvalidDate, http.StatusBadRequest},
	{booking.ErrPastDate, http.StatusBadRequest},
	{booking.ErrInvalidTime, http.StatusBadRequest},
	{booking.ErrSlotUnavailable, http.StatusBadRequest},
	{booking.ErrInvalidStatus, http.StatusBadRequest},
	{booking.ErrCounselorNotFound, http.StatusNotFound},
	{booking.ErrAppointmentNotFound, http.StatusNotFound},
	{booking.ErrForbidden, http.StatusForbidden},
	{booking.ErrSlotTaken, http.StatusConflict},
	{booking.ErrAlreadyCancelled, http.StatusConflict},
	{booking.ErrNotCancellable, http.StatusConflict},
	{booking.ErrInvalidTransition, http.StatusConflict},
}

// Classify turns any error into the HTTPError it is rendered as
func Classify(err error) *HTTPError {
	var he *HTTPError
	if errors.As(err, &he) {
		return he
	}
	switch {
	case errors.Is(err, databases.ErrDuplicateKey):
		return Conflict("Duplicate entry. This record already exists.")
	case errors.Is(err, chatbot.ErrMessageRequired):
		return BadRequest("Message and sessionId are required")
	case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Unauthorized(invalidTokenMessage)
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return &HTTPError{Status: k.status, Message: capitalize(k.err.Error()), Err: err}
		}
	}
	return &HTTPError{Status: http.StatusInternalServerError, Message: "Internal Server Error", Err: err}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func write(w http.ResponseWriter, status int, resp models.Response) {
	b, err := json.Marshal(resp)
	if err != nil {
		zap.S().With(err).Error("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}
