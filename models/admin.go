package models

import "time"

// Admin roles
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// AdminUser holds the structure for the admin_users collection
type AdminUser struct {
	ID           string     `json:"id" bson:"_id"`
	Username     string     `json:"username" bson:"username"`
	Email        string     `json:"email" bson:"email"`
	PasswordHash string     `json:"-" bson:"passwordHash"`
	FullName     string     `json:"full_name,omitempty" bson:"fullName,omitempty"`
	Role         string     `json:"role" bson:"role"`
	IsActive     bool       `json:"is_active" bson:"isActive"`
	CreatedAt    time.Time  `json:"created_at" bson:"createdAt"`
	LastLogin    *time.Time `json:"last_login,omitempty" bson:"lastLogin,omitempty"`
}
