package postgres

import (
	"context"
	"database/sql"

	"github.com/stressbuster/stressbuster-api/models"
)

const userColumns = `id, username, email, password_hash, full_name, phone, age, gender,
	preferred_language, is_anonymous, is_active, created_at, last_login`

type userStore struct {
	db *sql.DB
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		u         models.User
		age       sql.NullInt64
		lastLogin sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName, &u.Phone, &age,
		&u.Gender, &u.PreferredLanguage, &u.IsAnonymous, &u.IsActive, &u.CreatedAt, &lastLogin)
	if err != nil {
		return nil, err
	}
	u.Age = intPtr(age)
	if lastLogin.Valid {
		u.LastLogin = &lastLogin.Time
	}
	return &u, nil
}

func (s *userStore) InsertOne(ctx context.Context, u models.User) (*models.User, error) {
	if u.ID == "" {
		u.ID = newID()
	}
	if u.PreferredLanguage == "" {
		u.PreferredLanguage = "en"
	}
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, full_name, phone, age, gender,
			preferred_language, is_anonymous, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+userColumns,
		u.ID, u.Username, u.Email, u.PasswordHash, u.FullName, u.Phone, nullInt(u.Age), u.Gender,
		u.PreferredLanguage, u.IsAnonymous, u.IsActive,
	)
	stored, err := scanUser(row)
	if err != nil {
		return nil, translateError(err)
	}
	return stored, nil
}

func (s *userStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, translateError(err)
	}
	return u, nil
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return nil, translateError(err)
	}
	return u, nil
}

func (s *userStore) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 OR username = $2)`, email, username,
	).Scan(&exists)
	return exists, translateError(err)
}

func (s *userStore) UpdateProfile(ctx context.Context, id string, p models.ProfileUpdate) (*models.User, error) {
	lang := p.PreferredLanguage
	if lang == "" {
		lang = "en"
	}
	row := s.db.QueryRowContext(ctx, `
		UPDATE users SET full_name = $2, phone = $3, age = $4, gender = $5, preferred_language = $6
		WHERE id = $1
		RETURNING `+userColumns,
		id, p.FullName, p.Phone, nullInt(p.Age), p.Gender, lang,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, translateError(err)
	}
	return u, nil
}

func (s *userStore) TouchLastLogin(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE users SET last_login = NOW() WHERE id = $1`, id)
	return translateError(err)
}
