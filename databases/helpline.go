package databases

//go generate: mockery --name HelplineDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stressbuster/stressbuster-api/models"
)

const helplineName = "helpline_numbers"

// HelplineDatabase contains the methods to use with the helpline database
type HelplineDatabase interface {
	ListActive(ctx context.Context) ([]models.Helpline, error)
	InsertOne(ctx context.Context, h models.Helpline) (*models.Helpline, error)
}

type helplineDatabase struct {
	db DatabaseHelper
}

// NewHelplineDatabase initializes a new instance of helpline database with the provided db connection
func NewHelplineDatabase(db DatabaseHelper) HelplineDatabase {
	return &helplineDatabase{
		db: db,
	}
}

func (h *helplineDatabase) ListActive(ctx context.Context) ([]models.Helpline, error) {
	opts := options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}})
	cur, err := h.db.Collection(helplineName).Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	helplines := []models.Helpline{}
	if err := cur.All(ctx, &helplines); err != nil {
		return nil, err
	}
	return helplines, nil
}

func (h *helplineDatabase) InsertOne(ctx context.Context, helpline models.Helpline) (*models.Helpline, error) {
	if helpline.ID == "" {
		helpline.ID = NewID()
	}
	if _, err := h.db.Collection(helplineName).InsertOne(ctx, helpline); err != nil {
		return nil, translateError(err)
	}
	return &helpline, nil
}
