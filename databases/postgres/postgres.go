// Package postgres implements the entity stores on PostgreSQL through lib/pq.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/stressbuster/stressbuster-api/config"
	"github.com/stressbuster/stressbuster-api/databases"
)

//go:embed migrations.sql
var migrations embed.FS

// PostgreSQL error codes the stores map to storage errors
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Open connects to conf.DatabaseURL, bounds the pool and applies the schema
func Open(ctx context.Context, conf *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", conf.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(conf.MaxPoolSize)
	db.SetMaxIdleConns(conf.MaxPoolSize)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	zap.S().Infow("postgres ready", "maxOpenConns", conf.MaxPoolSize)
	return db, nil
}

// Migrate runs the embedded schema. Every statement is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	schema, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// NewStores builds the postgres backed stores on top of db
func NewStores(db *sql.DB) databases.Stores {
	return databases.Stores{
		Counselors:   &counselorStore{db: db},
		Appointments: &appointmentStore{db: db},
		Users:        &userStore{db: db},
		Admins:       &adminStore{db: db},
		Chat:         &chatStore{db: db},
		Resources:    &resourceStore{db: db},
		Helplines:    &helplineStore{db: db},
		Games:        &gameStore{db: db},
	}
}

func newID() string {
	return uuid.NewString()
}

// translateError converts driver errors into the shared storage errors
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return databases.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			return databases.ErrDuplicateKey
		case foreignKeyViolation:
			return databases.ErrInvalidReference
		}
	}
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func intPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	v := int(ni.Int64)
	return &v
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}
