package postgres

import (
	"context"
	"database/sql"

	"github.com/stressbuster/stressbuster-api/models"
)

type chatStore struct {
	db *sql.DB
}

func (s *chatStore) Append(ctx context.Context, m models.ChatMessage) (*models.ChatMessage, error) {
	if m.ID == "" {
		m.ID = newID()
	}
	var rt sql.NullInt64
	if m.ResponseTimeMs != nil {
		rt = sql.NullInt64{Int64: *m.ResponseTimeMs, Valid: true}
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO chatbot_conversations (id, user_id, session_id, message, sender, intent, sentiment, response_time_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`,
		m.ID, nullString(m.UserID), m.SessionID, m.Message, m.Sender, m.Intent, m.Sentiment, rt,
	).Scan(&m.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

func (s *chatStore) ListBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, session_id, message, sender, intent, sentiment, response_time_ms, created_at
		FROM chatbot_conversations
		WHERE session_id = $1
		ORDER BY created_at, id`,
		sessionID,
	)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	messages := []models.ChatMessage{}
	for rows.Next() {
		var (
			m      models.ChatMessage
			userID sql.NullString
			rt     sql.NullInt64
		)
		if err := rows.Scan(&m.ID, &userID, &m.SessionID, &m.Message, &m.Sender, &m.Intent, &m.Sentiment, &rt, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.UserID = stringPtr(userID)
		if rt.Valid {
			v := rt.Int64
			m.ResponseTimeMs = &v
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
