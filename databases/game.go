package databases

//go generate: mockery --name GameDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stressbuster/stressbuster-api/models"
)

const gameName = "game_sessions"

// GameDatabase contains the methods to use with the game session database
type GameDatabase interface {
	InsertOne(ctx context.Context, g models.GameSession) (*models.GameSession, error)
	ListRecent(ctx context.Context, limit int64) ([]models.GameSession, error)
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.GameSession, error)
}

type gameDatabase struct {
	db DatabaseHelper
}

// NewGameDatabase initializes a new instance of game database with the provided db connection
func NewGameDatabase(db DatabaseHelper) GameDatabase {
	return &gameDatabase{
		db: db,
	}
}

func (g *gameDatabase) InsertOne(ctx context.Context, session models.GameSession) (*models.GameSession, error) {
	if session.ID == "" {
		session.ID = NewID()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now()
	}
	if _, err := g.db.Collection(gameName).InsertOne(ctx, session); err != nil {
		return nil, translateError(err)
	}
	return &session, nil
}

func (g *gameDatabase) ListRecent(ctx context.Context, limit int64) ([]models.GameSession, error) {
	return g.find(ctx, bson.M{}, limit)
}

func (g *gameDatabase) ListByUser(ctx context.Context, userID string, limit int64) ([]models.GameSession, error) {
	return g.find(ctx, bson.M{"userId": userID}, limit)
}

func (g *gameDatabase) find(ctx context.Context, filter bson.M, limit int64) ([]models.GameSession, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cur, err := g.db.Collection(gameName).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	sessions := []models.GameSession{}
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
