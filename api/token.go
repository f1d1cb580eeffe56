package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Subject is the identity a token is issued for
type Subject struct {
	ID       string
	Username string
	Email    string
	Admin    bool
	Role     string
	// ExpiresAt is read from exp; it is ignored by Issue
	ExpiresAt time.Time
}

// TokenIssuer signs and verifies HS256 access tokens
type TokenIssuer struct {
	Secret []byte
	TTL    time.Duration
	now    func() time.Time
}

// NewTokenIssuer returns an issuer for secret whose tokens live for ttl
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{Secret: []byte(secret), TTL: ttl, now: time.Now}
}

// Issue returns a signed token for s
func (ti *TokenIssuer) Issue(s Subject) (string, error) {
	now := ti.now()
	claims := jwt.MapClaims{
		"sub":      s.ID,
		"username": s.Username,
		"email":    s.Email,
		"isAdmin":  s.Admin,
		"iat":      now.Unix(),
		"exp":      now.Add(ti.TTL).Unix(),
	}
	if s.Role != "" {
		claims["role"] = s.Role
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ti.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry of raw and returns its subject
func (ti *TokenIssuer) Parse(raw string) (Subject, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return ti.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(ti.now),
	)
	if err != nil {
		return Subject{}, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Subject{}, jwt.ErrTokenInvalidClaims
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return Subject{}, errors.Join(jwt.ErrTokenInvalidClaims, err)
	}
	s := Subject{ID: sub}
	s.Username, _ = claims["username"].(string)
	s.Email, _ = claims["email"].(string)
	s.Admin, _ = claims["isAdmin"].(bool)
	s.Role, _ = claims["role"].(string)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.ExpiresAt = exp.Time
	}
	return s, nil
}
