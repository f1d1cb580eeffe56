package models

import "time"

// Envelope statuses
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope every endpoint answers with
type Response struct {
	Status     string       `json:"status"`
	Message    string       `json:"message"`
	Data       interface{}  `json:"data,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
	Detail     string       `json:"detail,omitempty"`
}

// FieldError describes a single invalid request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Pagination holds the paging info of a list response
type Pagination struct {
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// NewPagination calculates the page count for total records split by limit
func NewPagination(page, limit, total int64) *Pagination {
	var pages int64
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return &Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

// HealthCheckResponse returns the health check response
type HealthCheckResponse struct {
	Alive       bool      `json:"alive"`
	Environment string    `json:"environment"`
	Timestamp   time.Time `json:"timestamp"`
}
