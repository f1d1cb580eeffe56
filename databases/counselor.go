package databases

//go generate: mockery --name CounselorDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stressbuster/stressbuster-api/models"
)

const counselorName = "counselors"

// CounselorDatabase contains the methods to use with the counselor database
type CounselorDatabase interface {
	ListActive(ctx context.Context) ([]models.Counselor, error)
	FindByID(ctx context.Context, id string) (*models.Counselor, error)
	InsertOne(ctx context.Context, c models.Counselor) (*models.Counselor, error)
	Count(ctx context.Context) (int64, error)
}

type counselorDatabase struct {
	db DatabaseHelper
}

// NewCounselorDatabase initializes a new instance of counselor database with the provided db connection
func NewCounselorDatabase(db DatabaseHelper) CounselorDatabase {
	return &counselorDatabase{
		db: db,
	}
}

func (c *counselorDatabase) ListActive(ctx context.Context) ([]models.Counselor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "name", Value: 1}})
	cur, err := c.db.Collection(counselorName).Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	counselors := []models.Counselor{}
	if err := cur.All(ctx, &counselors); err != nil {
		return nil, err
	}
	return counselors, nil
}

func (c *counselorDatabase) FindByID(ctx context.Context, id string) (*models.Counselor, error) {
	counselor := &models.Counselor{}
	err := c.db.Collection(counselorName).FindOne(ctx, bson.M{"_id": id}).Decode(counselor)
	if err != nil {
		return nil, translateError(err)
	}
	return counselor, nil
}

func (c *counselorDatabase) InsertOne(ctx context.Context, counselor models.Counselor) (*models.Counselor, error) {
	if counselor.ID == "" {
		counselor.ID = NewID()
	}
	if _, err := c.db.Collection(counselorName).InsertOne(ctx, counselor); err != nil {
		return nil, translateError(err)
	}
	return &counselor, nil
}

func (c *counselorDatabase) Count(ctx context.Context) (int64, error) {
	return c.db.Collection(counselorName).CountDocuments(ctx, bson.M{})
}
