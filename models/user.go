package models

import "time"

// User holds the structure for the users collection
type User struct {
	ID                string     `json:"id" bson:"_id"`
	Username          string     `json:"username" bson:"username"`
	Email             string     `json:"email" bson:"email"`
	PasswordHash      string     `json:"-" bson:"passwordHash"`
	FullName          string     `json:"full_name,omitempty" bson:"fullName,omitempty"`
	Phone             string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Age               *int       `json:"age,omitempty" bson:"age,omitempty"`
	Gender            string     `json:"gender,omitempty" bson:"gender,omitempty"`
	PreferredLanguage string     `json:"preferred_language" bson:"preferredLanguage"`
	IsAnonymous       bool       `json:"is_anonymous" bson:"isAnonymous"`
	IsActive          bool       `json:"is_active" bson:"isActive"`
	CreatedAt         time.Time  `json:"created_at" bson:"createdAt"`
	LastLogin         *time.Time `json:"last_login,omitempty" bson:"lastLogin,omitempty"`
}

// ProfileUpdate holds the editable profile fields of a user
type ProfileUpdate struct {
	FullName          string `json:"full_name"`
	Phone             string `json:"phone"`
	Age               *int   `json:"age"`
	Gender            string `json:"gender"`
	PreferredLanguage string `json:"preferred_language"`
}
