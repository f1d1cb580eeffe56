package chatbot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/models"
)

// ErrMessageRequired is returned when the message or the session id is blank
var ErrMessageRequired = errors.New("message and sessionId are required")

// Incoming is a single user chat message
type Incoming struct {
	UserID    *string
	SessionID string
	Message   string
}

// Reply is what the bot answers with
type Reply struct {
	Message      string `json:"message"`
	Intent       string `json:"intent"`
	Sentiment    string `json:"sentiment"`
	ResponseTime int64  `json:"responseTime"`
}

// Service classifies messages and keeps the conversation log
type Service struct {
	DB  databases.ChatDatabase
	now func() time.Time
}

// NewService returns a chat service persisting to db
func NewService(db databases.ChatDatabase) *Service {
	return &Service{DB: db, now: time.Now}
}

// Reply records the user message, builds the canned answer and records it with the time
// it took in milliseconds
func (s *Service) Reply(ctx context.Context, in Incoming) (Reply, error) {
	if strings.TrimSpace(in.Message) == "" || strings.TrimSpace(in.SessionID) == "" {
		return Reply{}, ErrMessageRequired
	}
	start := s.now()

	c := Classify(in.Message)
	_, err := s.DB.Append(ctx, models.ChatMessage{
		UserID:    in.UserID,
		SessionID: in.SessionID,
		Message:   in.Message,
		Sender:    models.SenderUser,
		Intent:    c.Intent,
		Sentiment: c.Sentiment,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("save user message: %w", err)
	}

	answer := Respond(c.Intent)
	elapsed := s.now().Sub(start).Milliseconds()

	_, err = s.DB.Append(ctx, models.ChatMessage{
		UserID:         in.UserID,
		SessionID:      in.SessionID,
		Message:        answer,
		Sender:         models.SenderBot,
		Intent:         c.Intent,
		Sentiment:      SentimentNeutral,
		ResponseTimeMs: &elapsed,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("save bot message: %w", err)
	}

	return Reply{
		Message:      answer,
		Intent:       c.Intent,
		Sentiment:    c.Sentiment,
		ResponseTime: elapsed,
	}, nil
}

// Conversation returns the messages of a session, oldest first
func (s *Service) Conversation(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrMessageRequired
	}
	return s.DB.ListBySession(ctx, sessionID)
}
