package postgres

import (
	"context"
	"database/sql"

	"github.com/stressbuster/stressbuster-api/models"
)

const adminColumns = `id, username, email, password_hash, full_name, role, is_active, created_at, last_login`

type adminStore struct {
	db *sql.DB
}

func scanAdmin(row rowScanner) (*models.AdminUser, error) {
	var (
		a         models.AdminUser
		lastLogin sql.NullTime
	)
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.FullName, &a.Role,
		&a.IsActive, &a.CreatedAt, &lastLogin)
	if err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		a.LastLogin = &lastLogin.Time
	}
	return &a, nil
}

func (s *adminStore) InsertOne(ctx context.Context, a models.AdminUser) (*models.AdminUser, error) {
	if a.ID == "" {
		a.ID = newID()
	}
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO admin_users (id, username, email, password_hash, full_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+adminColumns,
		a.ID, a.Username, a.Email, a.PasswordHash, a.FullName, a.Role, a.IsActive,
	)
	stored, err := scanAdmin(row)
	if err != nil {
		return nil, translateError(err)
	}
	return stored, nil
}

func (s *adminStore) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	a, err := scanAdmin(s.db.QueryRowContext(ctx, `SELECT `+adminColumns+` FROM admin_users WHERE email = $1`, email))
	if err != nil {
		return nil, translateError(err)
	}
	return a, nil
}

func (s *adminStore) TouchLastLogin(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE admin_users SET last_login = NOW() WHERE id = $1`, id)
	return translateError(err)
}
