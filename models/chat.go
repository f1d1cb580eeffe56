package models

import "time"

// Message senders
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatMessage holds the structure for the chatbot_conversations collection.
// Messages are append-only and grouped by SessionID.
type ChatMessage struct {
	ID             string    `json:"id" bson:"_id"`
	UserID         *string   `json:"user_id,omitempty" bson:"userId"`
	SessionID      string    `json:"session_id" bson:"sessionId"`
	Message        string    `json:"message" bson:"message"`
	Sender         string    `json:"sender" bson:"sender"`
	Intent         string    `json:"intent" bson:"intent"`
	Sentiment      string    `json:"sentiment" bson:"sentiment"`
	ResponseTimeMs *int64    `json:"response_time_ms,omitempty" bson:"responseTimeMs,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"createdAt"`
}
