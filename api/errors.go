package api

import (
	"net/http"

	"github.com/stressbuster/stressbuster-api/models"
)

// HTTPError is an error that already knows how it is rendered
type HTTPError struct {
	Status  int
	Message string
	Fields  []models.FieldError
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// BadRequest is a 400 with optional field level details
func BadRequest(message string, fields ...models.FieldError) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Message: message, Fields: fields}
}

// Unauthorized is a 401
func Unauthorized(message string) *HTTPError {
	return &HTTPError{Status: http.StatusUnauthorized, Message: message}
}

// Forbidden is a 403
func Forbidden(message string) *HTTPError {
	return &HTTPError{Status: http.StatusForbidden, Message: message}
}

// NotFound is a 404
func NotFound(message string) *HTTPError {
	return &HTTPError{Status: http.StatusNotFound, Message: message}
}

// Conflict is a 409
func Conflict(message string) *HTTPError {
	return &HTTPError{Status: http.StatusConflict, Message: message}
}
