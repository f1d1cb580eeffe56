package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/stressbuster/stressbuster-api/api"
	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/models"
)

func hashOf(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func decodeAuth(t *testing.T, e envelope) AuthResponse {
	var resp AuthResponse
	require.NoError(t, json.Unmarshal(e.Data, &resp))
	return resp
}

func TestAuth_Register(t *testing.T) {
	a := newTestApp(t)
	a.users.On("ExistsByEmailOrUsername", anyCtx, "jane@example.com", "jane").Return(false, nil)
	a.users.On("InsertOne", anyCtx, mock.MatchedBy(func(u models.User) bool {
		return u.Username == "jane" && u.IsActive &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) == nil
	})).Return(&models.User{ID: "u1", Username: "jane", Email: "jane@example.com"}, nil)

	response := a.executeRequest(newRequest("POST", "/api/auth/register",
		map[string]string{"username": "  jane ", "email": "jane@example.com", "password": "secret1"}, ""))

	checkResponseCode(t, http.StatusCreated, response.Code)
	e := decode(t, response)
	assert.Equal(t, "User registered successfully", e.Message)
	resp := decodeAuth(t, e)
	assert.Equal(t, "u1", resp.UserID)

	s, err := api.NewTokenIssuer(testSecret, 0).Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", s.ID)
	assert.False(t, s.Admin)
}

func TestAuth_RegisterDuplicate(t *testing.T) {
	a := newTestApp(t)
	a.users.On("ExistsByEmailOrUsername", anyCtx, "jane@example.com", "jane").Return(true, nil)

	response := a.executeRequest(newRequest("POST", "/api/auth/register",
		map[string]string{"username": "jane", "email": "jane@example.com", "password": "secret1"}, ""))

	checkResponseCode(t, http.StatusConflict, response.Code)
	assert.Equal(t, "User with this email or username already exists", decode(t, response).Message)
	a.users.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestAuth_RegisterLosesRace(t *testing.T) {
	a := newTestApp(t)
	a.users.On("ExistsByEmailOrUsername", anyCtx, "jane@example.com", "jane").Return(false, nil)
	a.users.On("InsertOne", anyCtx, mock.Anything).Return(nil, databases.ErrDuplicateKey)

	response := a.executeRequest(newRequest("POST", "/api/auth/register",
		map[string]string{"username": "jane", "email": "jane@example.com", "password": "secret1"}, ""))

	checkResponseCode(t, http.StatusConflict, response.Code)
}

func TestAuth_RegisterValidation(t *testing.T) {
	a := newTestApp(t)

	response := a.executeRequest(newRequest("POST", "/api/auth/register",
		map[string]string{"username": " jo ", "email": "not-an-email", "password": "123"}, ""))

	checkResponseCode(t, http.StatusBadRequest, response.Code)
	e := decode(t, response)
	assert.Equal(t, "Validation failed", e.Message)
	assert.Equal(t, []models.FieldError{
		{Field: "username", Message: "Username must be at least 3 characters"},
		{Field: "email", Message: "Valid email is required"},
		{Field: "password", Message: "Password must be at least 6 characters"},
	}, e.Errors)
}

func TestAuth_RegisterMalformedBody(t *testing.T) {
	a := newTestApp(t)

	response := a.executeRequest(newRequest("POST", "/api/auth/register", "{not json", ""))

	checkResponseCode(t, http.StatusBadRequest, response.Code)
	assert.Equal(t, "Invalid request body", decode(t, response).Message)
}

func TestAuth_Login(t *testing.T) {
	hash := hashOf(t, "secret1")

	tests := []struct {
		name    string
		setup   func(a *testApp)
		status  int
		message string
		admin   bool
	}{
		{
			name: "user",
			setup: func(a *testApp) {
				a.users.On("FindByEmail", anyCtx, "jane@example.com").Return(&models.User{ID: "u1", Username: "jane", Email: "jane@example.com", PasswordHash: hash, IsActive: true}, nil)
				a.users.On("TouchLastLogin", anyCtx, "u1").Return(nil)
			},
			status:  http.StatusOK,
			message: "Login successful",
		},
		{
			name: "last login failure does not block",
			setup: func(a *testApp) {
				a.users.On("FindByEmail", anyCtx, "jane@example.com").Return(&models.User{ID: "u1", PasswordHash: hash, IsActive: true}, nil)
				a.users.On("TouchLastLogin", anyCtx, "u1").Return(errors.New("timeout"))
			},
			status:  http.StatusOK,
			message: "Login successful",
		},
		{
			name: "deactivated",
			setup: func(a *testApp) {
				a.users.On("FindByEmail", anyCtx, "jane@example.com").Return(&models.User{ID: "u1", PasswordHash: hash, IsActive: false}, nil)
			},
			status:  http.StatusForbidden,
			message: "Account is deactivated",
		},
		{
			name: "wrong password",
			setup: func(a *testApp) {
				a.users.On("FindByEmail", anyCtx, "jane@example.com").Return(&models.User{ID: "u1", PasswordHash: hashOf(t, "other-password"), IsActive: true}, nil)
			},
			status:  http.StatusUnauthorized,
			message: invalidCredentials,
		},
		{
			name: "admin fallback",
			setup: func(a *testApp) {
				a.users.On("FindByEmail", anyCtx, "jane@example.com").Return(nil, databases.ErrNotFound)
				a.admins.On("FindByEmail", anyCtx, "jane@example.com").Return(&models.AdminUser{ID: "a1", Username: "root", PasswordHash: hash, Role: models.RoleSuperAdmin, IsActive: true}, nil)
				a.admins.On("TouchLastLogin", anyCtx, "a1").Return(nil)
			},
			status:  http.StatusOK,
			message: "Login successful",
			admin:   true,
		},
		{
			name: "unknown email",
			setup: func(a *testApp) {
				a.users.On("FindByEmail", anyCtx, "jane@example.com").Return(nil, databases.ErrNotFound)
				a.admins.On("FindByEmail", anyCtx, "jane@example.com").Return(nil, databases.ErrNotFound)
			},
			status:  http.StatusUnauthorized,
			message: invalidCredentials,
		},
		{
			name: "store failure",
			setup: func(a *testApp) {
				a.users.On("FindByEmail", anyCtx, "jane@example.com").Return(nil, errors.New("connection refused"))
			},
			status:  http.StatusInternalServerError,
			message: "Internal Server Error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			tt.setup(a)

			response := a.executeRequest(newRequest("POST", "/api/auth/login",
				map[string]string{"email": "jane@example.com", "password": "secret1"}, ""))

			checkResponseCode(t, tt.status, response.Code)
			e := decode(t, response)
			assert.Equal(t, tt.message, e.Message)
			if tt.status == http.StatusOK {
				resp := decodeAuth(t, e)
				assert.Equal(t, tt.admin, resp.IsAdmin)
				s, err := api.NewTokenIssuer(testSecret, 0).Parse(resp.Token)
				require.NoError(t, err)
				assert.Equal(t, tt.admin, s.Admin)
			}
		})
	}
}

func TestAuth_AdminLogin(t *testing.T) {
	a := newTestApp(t)
	a.admins.On("FindByEmail", anyCtx, "admin@stressbuster.com").Return(&models.AdminUser{
		ID: "a1", Username: "root", Email: "admin@stressbuster.com", PasswordHash: hashOf(t, "admin123"), Role: models.RoleSuperAdmin, IsActive: true,
	}, nil)
	a.admins.On("TouchLastLogin", anyCtx, "a1").Return(nil)

	response := a.executeRequest(newRequest("POST", "/api/admin/login",
		map[string]string{"email": "admin@stressbuster.com", "password": "admin123"}, ""))

	checkResponseCode(t, http.StatusOK, response.Code)
	resp := decodeAuth(t, decode(t, response))
	assert.True(t, resp.IsAdmin)
	assert.Equal(t, models.RoleSuperAdmin, resp.Role)
	a.users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}
