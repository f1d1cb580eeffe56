package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/stressbuster/stressbuster-api/api"
	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/models"
)

// Base carries what every handler needs to answer a request
type Base struct {
	Render       api.Renderer
	QueryTimeout time.Duration
}

func (b Base) queryContext(r *http.Request) (context.Context, context.CancelFunc) {
	return api.WithQueryTimeout(r.Context(), b.QueryTimeout)
}

// decodeBody decodes the JSON request body into v
func decodeBody(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return api.BadRequest("Request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return api.BadRequest("Invalid request body")
	}
	return nil
}

// queryInt reads a positive integer query parameter, falling back to def
func queryInt(r *http.Request, key string, def int64) int64 {
	v, err := strconv.ParseInt(r.URL.Query().Get(key), 10, 64)
	if err != nil || v < 1 {
		return def
	}
	return v
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s, "@")
}

// fieldErrors collects validation failures for one request
type fieldErrors []models.FieldError

func (fe *fieldErrors) check(ok bool, field, message string) {
	if !ok {
		*fe = append(*fe, models.FieldError{Field: field, Message: message})
	}
}

func (fe fieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	return api.BadRequest("Validation failed", fe...)
}

// notFoundAs replaces a storage not found error with a 404 carrying message
func notFoundAs(err error, message string) error {
	if errors.Is(err, databases.ErrNotFound) {
		return api.NotFound(message)
	}
	return err
}
