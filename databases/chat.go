package databases

//go generate: mockery --name ChatDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stressbuster/stressbuster-api/models"
)

const chatName = "chatbot_conversations"

// ChatDatabase contains the methods to use with the chatbot conversation database.
// Messages are only ever appended.
type ChatDatabase interface {
	Append(ctx context.Context, m models.ChatMessage) (*models.ChatMessage, error)
	ListBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
}

type chatDatabase struct {
	db DatabaseHelper
}

// NewChatDatabase initializes a new instance of chat database with the provided db connection
func NewChatDatabase(db DatabaseHelper) ChatDatabase {
	return &chatDatabase{
		db: db,
	}
}

func (c *chatDatabase) Append(ctx context.Context, m models.ChatMessage) (*models.ChatMessage, error) {
	if m.ID == "" {
		m.ID = NewID()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now()
	}
	if _, err := c.db.Collection(chatName).InsertOne(ctx, m); err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

func (c *chatDatabase) ListBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := c.db.Collection(chatName).Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	messages := []models.ChatMessage{}
	if err := cur.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
