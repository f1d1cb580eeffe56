package postgres

import (
	"context"
	"database/sql"

	"github.com/stressbuster/stressbuster-api/models"
)

const gameColumns = `id, user_id, game_type, duration_seconds, score, completed,
	stress_level_before, stress_level_after, created_at`

type gameStore struct {
	db *sql.DB
}

func (s *gameStore) InsertOne(ctx context.Context, g models.GameSession) (*models.GameSession, error) {
	if g.ID == "" {
		g.ID = newID()
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO game_sessions (id, user_id, game_type, duration_seconds, score, completed,
			stress_level_before, stress_level_after)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`,
		g.ID, nullString(g.UserID), g.GameType, g.DurationSeconds, g.Score, g.Completed,
		nullInt(g.StressLevelBefore), nullInt(g.StressLevelAfter),
	).Scan(&g.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &g, nil
}

func (s *gameStore) ListRecent(ctx context.Context, limit int64) ([]models.GameSession, error) {
	return s.query(ctx, `SELECT `+gameColumns+` FROM game_sessions ORDER BY created_at DESC LIMIT $1`, limit)
}

func (s *gameStore) ListByUser(ctx context.Context, userID string, limit int64) ([]models.GameSession, error) {
	return s.query(ctx, `SELECT `+gameColumns+` FROM game_sessions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit)
}

func (s *gameStore) query(ctx context.Context, query string, args ...interface{}) ([]models.GameSession, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	sessions := []models.GameSession{}
	for rows.Next() {
		var (
			g             models.GameSession
			userID        sql.NullString
			before, after sql.NullInt64
		)
		err := rows.Scan(&g.ID, &userID, &g.GameType, &g.DurationSeconds, &g.Score, &g.Completed,
			&before, &after, &g.CreatedAt)
		if err != nil {
			return nil, err
		}
		g.UserID = stringPtr(userID)
		g.StressLevelBefore = intPtr(before)
		g.StressLevelAfter = intPtr(after)
		sessions = append(sessions, g)
	}
	return sessions, rows.Err()
}
