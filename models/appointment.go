package models

import "time"

// AppointmentStatus is the lifecycle state of an appointment
type AppointmentStatus string

// Appointment statuses
const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Valid reports whether s is one of the known statuses
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Terminal reports whether no transitions out of s are allowed
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted || s == StatusNoShow
}

// HoldsSlot reports whether an appointment in state s occupies its time slot
func (s AppointmentStatus) HoldsSlot() bool {
	return s != StatusCancelled
}

// Appointment holds the structure for the appointments collection
type Appointment struct {
	ID          string            `json:"id" bson:"_id"`
	CounselorID string            `json:"counselor_id" bson:"counselorId"`
	UserID      *string           `json:"user_id" bson:"userId"`
	Date        string            `json:"appointment_date" bson:"date"`
	Time        string            `json:"appointment_time" bson:"time"`
	Status      AppointmentStatus `json:"status" bson:"status"`
	IsAnonymous bool              `json:"is_anonymous" bson:"isAnonymous"`
	Notes       *string           `json:"notes" bson:"notes"`
	CreatedAt   time.Time         `json:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time         `json:"updated_at" bson:"updatedAt"`
}

// AppointmentWithCounselor is an appointment joined with the counselor it is booked with
type AppointmentWithCounselor struct {
	ID             string            `json:"id" bson:"_id"`
	Date           string            `json:"appointment_date" bson:"date"`
	Time           string            `json:"appointment_time" bson:"time"`
	Status         AppointmentStatus `json:"status" bson:"status"`
	Notes          *string           `json:"notes" bson:"notes"`
	CounselorName  string            `json:"counselor_name" bson:"counselorName"`
	Specialization string            `json:"specialization" bson:"specialization"`
}
