package handlers

import (
	"net/http"

	"github.com/stressbuster/stressbuster-api/api"
	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/models"
)

// User exists for handling user profile requests
type User struct {
	Base
	DB databases.UserDatabase
}

// ProfileHandler returns the profile of the authenticated user
func (u User) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	id, _ := api.IdentityFrom(r.Context())

	ctx, cancel := u.queryContext(r)
	defer cancel()

	user, err := u.DB.FindByID(ctx, id.UserID)
	if err != nil {
		u.Render.Error(w, r, notFoundAs(err, "User not found"))
		return
	}
	u.Render.Success(w, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateProfileHandler replaces the editable profile fields of the authenticated user
func (u User) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	id, _ := api.IdentityFrom(r.Context())

	var p models.ProfileUpdate
	if err := decodeBody(r, &p); err != nil {
		u.Render.Error(w, r, err)
		return
	}
	var fe fieldErrors
	fe.check(p.Age == nil || (*p.Age > 0 && *p.Age < 150), "age", "Age must be between 1 and 149")
	if err := fe.err(); err != nil {
		u.Render.Error(w, r, err)
		return
	}

	ctx, cancel := u.queryContext(r)
	defer cancel()

	user, err := u.DB.UpdateProfile(ctx, id.UserID, p)
	if err != nil {
		u.Render.Error(w, r, notFoundAs(err, "User not found"))
		return
	}
	u.Render.Success(w, http.StatusOK, "Profile updated successfully", user)
}
