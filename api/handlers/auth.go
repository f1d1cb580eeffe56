package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/stressbuster/stressbuster-api/api"
	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/models"
)

const invalidCredentials = "Invalid email or password"

// Auth handles registration and login
type Auth struct {
	Base
	Users  databases.UserDatabase
	Admins databases.AdminDatabase
	Tokens *api.TokenIssuer
}

type registerRequest struct {
	Username          string `json:"username"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	FullName          string `json:"full_name"`
	Phone             string `json:"phone"`
	Age               *int   `json:"age"`
	Gender            string `json:"gender"`
	PreferredLanguage string `json:"preferred_language"`
	IsAnonymous       bool   `json:"is_anonymous"`
}

func (req *registerRequest) validate() error {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)

	var fe fieldErrors
	fe.check(len(req.Username) >= 3, "username", "Username must be at least 3 characters")
	fe.check(validEmail(req.Email), "email", "Valid email is required")
	fe.check(len(req.Password) >= 6, "password", "Password must be at least 6 characters")
	return fe.err()
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *loginRequest) validate() error {
	req.Email = strings.TrimSpace(req.Email)

	var fe fieldErrors
	fe.check(validEmail(req.Email), "email", "Valid email is required")
	fe.check(req.Password != "", "password", "Password is required")
	return fe.err()
}

// AuthResponse is returned on successful register and login
type AuthResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	IsAdmin  bool   `json:"isAdmin"`
	Role     string `json:"role,omitempty"`
	Token    string `json:"token"`
}

// RegisterHandler creates a user account and returns a token for it
func (a Auth) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		a.Render.Error(w, r, err)
		return
	}
	if err := req.validate(); err != nil {
		a.Render.Error(w, r, err)
		return
	}

	ctx, cancel := a.queryContext(r)
	defer cancel()

	exists, err := a.Users.ExistsByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		a.Render.Error(w, r, err)
		return
	}
	if exists {
		a.Render.Error(w, r, api.Conflict("User with this email or username already exists"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		a.Render.Error(w, r, err)
		return
	}

	user, err := a.Users.InsertOne(ctx, models.User{
		Username:          req.Username,
		Email:             req.Email,
		PasswordHash:      string(hash),
		FullName:          req.FullName,
		Phone:             req.Phone,
		Age:               req.Age,
		Gender:            req.Gender,
		PreferredLanguage: req.PreferredLanguage,
		IsAnonymous:       req.IsAnonymous,
		IsActive:          true,
	})
	if errors.Is(err, databases.ErrDuplicateKey) {
		// lost a race against a concurrent registration
		a.Render.Error(w, r, api.Conflict("User with this email or username already exists"))
		return
	}
	if err != nil {
		a.Render.Error(w, r, err)
		return
	}

	token, err := a.Tokens.Issue(api.Subject{ID: user.ID, Username: user.Username, Email: user.Email})
	if err != nil {
		a.Render.Error(w, r, err)
		return
	}
	zap.S().Infow("user registered", "userId", user.ID)
	a.Render.Success(w, http.StatusCreated, "User registered successfully", AuthResponse{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	})
}

// LoginHandler authenticates a user, or an admin when no user has the email
func (a Auth) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		a.Render.Error(w, r, err)
		return
	}
	if err := req.validate(); err != nil {
		a.Render.Error(w, r, err)
		return
	}

	ctx, cancel := a.queryContext(r)
	defer cancel()

	user, err := a.Users.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		if err := checkAccount(user.IsActive, user.PasswordHash, req.Password); err != nil {
			a.Render.Error(w, r, err)
			return
		}
		if err := a.Users.TouchLastLogin(ctx, user.ID); err != nil {
			zap.S().Warnw("failed to update last login", "userId", user.ID, "error", err)
		}
		a.respondWithToken(w, r, api.Subject{ID: user.ID, Username: user.Username, Email: user.Email}, user.FullName)
		return
	case !errors.Is(err, databases.ErrNotFound):
		a.Render.Error(w, r, err)
		return
	}

	admin, err := a.Admins.FindByEmail(ctx, req.Email)
	if errors.Is(err, databases.ErrNotFound) {
		a.Render.Error(w, r, api.Unauthorized(invalidCredentials))
		return
	}
	if err != nil {
		a.Render.Error(w, r, err)
		return
	}
	a.adminLogin(ctx, w, r, admin, req.Password)
}

// AdminLoginHandler authenticates against admin accounts only
func (a Auth) AdminLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		a.Render.Error(w, r, err)
		return
	}
	if err := req.validate(); err != nil {
		a.Render.Error(w, r, err)
		return
	}

	ctx, cancel := a.queryContext(r)
	defer cancel()

	admin, err := a.Admins.FindByEmail(ctx, req.Email)
	if errors.Is(err, databases.ErrNotFound) {
		a.Render.Error(w, r, api.Unauthorized(invalidCredentials))
		return
	}
	if err != nil {
		a.Render.Error(w, r, err)
		return
	}
	a.adminLogin(ctx, w, r, admin, req.Password)
}

func (a Auth) adminLogin(ctx context.Context, w http.ResponseWriter, r *http.Request, admin *models.AdminUser, password string) {
	if err := checkAccount(admin.IsActive, admin.PasswordHash, password); err != nil {
		a.Render.Error(w, r, err)
		return
	}
	if err := a.Admins.TouchLastLogin(ctx, admin.ID); err != nil {
		zap.S().Warnw("failed to update last login", "adminId", admin.ID, "error", err)
	}
	a.respondWithToken(w, r, api.Subject{
		ID:       admin.ID,
		Username: admin.Username,
		Email:    admin.Email,
		Admin:    true,
		Role:     admin.Role,
	}, admin.FullName)
}

func (a Auth) respondWithToken(w http.ResponseWriter, r *http.Request, s api.Subject, fullName string) {
	token, err := a.Tokens.Issue(s)
	if err != nil {
		a.Render.Error(w, r, err)
		return
	}
	a.Render.Success(w, http.StatusOK, "Login successful", AuthResponse{
		UserID:   s.ID,
		Username: s.Username,
		Email:    s.Email,
		FullName: fullName,
		IsAdmin:  s.Admin,
		Role:     s.Role,
		Token:    token,
	})
}

// checkAccount rejects inactive accounts before comparing the password
func checkAccount(active bool, hash, password string) error {
	if !active {
		return api.Forbidden("Account is deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return api.Unauthorized(invalidCredentials)
	}
	return nil
}
