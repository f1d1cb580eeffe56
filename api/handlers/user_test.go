package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/models"
)

func TestUser_Profile(t *testing.T) {
	a := newTestApp(t)
	a.users.On("FindByID", anyCtx, "u1").Return(&models.User{ID: "u1", Username: "sam", PasswordHash: "secret-hash"}, nil)

	response := a.executeRequest(newRequest("GET", "/api/users/profile", nil, userToken(t, "u1")))

	checkResponseCode(t, http.StatusOK, response.Code)
	assert.NotContains(t, response.Body.String(), "secret-hash")
	var u models.User
	require.NoError(t, json.Unmarshal(decode(t, response).Data, &u))
	assert.Equal(t, "sam", u.Username)
}

func TestUser_ProfileMissing(t *testing.T) {
	a := newTestApp(t)
	a.users.On("FindByID", anyCtx, "u1").Return(nil, databases.ErrNotFound)

	response := a.executeRequest(newRequest("GET", "/api/users/profile", nil, userToken(t, "u1")))

	checkResponseCode(t, http.StatusNotFound, response.Code)
	assert.Equal(t, "User not found", decode(t, response).Message)
}

func TestUser_UpdateProfile(t *testing.T) {
	a := newTestApp(t)
	age := 29
	update := models.ProfileUpdate{FullName: "Sam Lee", Age: &age, PreferredLanguage: "hi"}
	a.users.On("UpdateProfile", anyCtx, "u1", update).Return(&models.User{ID: "u1", FullName: "Sam Lee"}, nil)

	response := a.executeRequest(newRequest("PUT", "/api/users/profile", update, userToken(t, "u1")))

	checkResponseCode(t, http.StatusOK, response.Code)
	assert.Equal(t, "Profile updated successfully", decode(t, response).Message)
}

func TestUser_UpdateProfileInvalidAge(t *testing.T) {
	a := newTestApp(t)

	response := a.executeRequest(newRequest("PUT", "/api/users/profile", map[string]int{"age": 150}, userToken(t, "u1")))

	checkResponseCode(t, http.StatusBadRequest, response.Code)
	e := decode(t, response)
	require.Len(t, e.Errors, 1)
	assert.Equal(t, "age", e.Errors[0].Field)
	a.users.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUser_ProfileRequiresToken(t *testing.T) {
	a := newTestApp(t)

	response := a.executeRequest(newRequest("GET", "/api/users/profile", nil, ""))

	checkResponseCode(t, http.StatusUnauthorized, response.Code)
}
