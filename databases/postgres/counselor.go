package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/stressbuster/stressbuster-api/models"
)

const counselorColumns = `id, name, specialization, qualification, experience_years, email, phone,
	available_days, to_char(available_time_start, 'HH24:MI:SS'), to_char(available_time_end, 'HH24:MI:SS'),
	rating, total_sessions, is_active`

type counselorStore struct {
	db *sql.DB
}

func scanCounselor(row rowScanner) (*models.Counselor, error) {
	c := &models.Counselor{}
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Specialization,
		&c.Qualification,
		&c.ExperienceYears,
		&c.Email,
		&c.Phone,
		pq.Array(&c.AvailableDays),
		&c.AvailableTimeStart,
		&c.AvailableTimeEnd,
		&c.Rating,
		&c.TotalSessions,
		&c.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *counselorStore) ListActive(ctx context.Context) ([]models.Counselor, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+counselorColumns+` FROM counselors WHERE is_active = TRUE ORDER BY rating DESC, name`)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	counselors := []models.Counselor{}
	for rows.Next() {
		c, err := scanCounselor(rows)
		if err != nil {
			return nil, err
		}
		counselors = append(counselors, *c)
	}
	return counselors, rows.Err()
}

func (s *counselorStore) FindByID(ctx context.Context, id string) (*models.Counselor, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+counselorColumns+` FROM counselors WHERE id = $1`, id)
	c, err := scanCounselor(row)
	if err != nil {
		return nil, translateError(err)
	}
	return c, nil
}

func (s *counselorStore) InsertOne(ctx context.Context, c models.Counselor) (*models.Counselor, error) {
	if c.ID == "" {
		c.ID = newID()
	}
	if c.AvailableDays == nil {
		c.AvailableDays = []string{}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO counselors (id, name, specialization, qualification, experience_years, email, phone,
			available_days, available_time_start, available_time_end, rating, total_sessions, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		c.ID, c.Name, c.Specialization, c.Qualification, c.ExperienceYears, c.Email, c.Phone,
		pq.Array(c.AvailableDays), c.AvailableTimeStart, c.AvailableTimeEnd, c.Rating, c.TotalSessions, c.IsActive,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (s *counselorStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM counselors`).Scan(&n)
	return n, translateError(err)
}
