package databases

//go generate: mockery --name ResourceDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stressbuster/stressbuster-api/models"
)

const (
	resourceName         = "resources"
	resourceCategoryName = "resource_categories"
)

// ResourceDatabase contains the methods to use with the psychoeducation resource database
type ResourceDatabase interface {
	ListCategories(ctx context.Context) ([]models.ResourceCategory, error)
	InsertCategory(ctx context.Context, c models.ResourceCategory) (*models.ResourceCategory, error)
	List(ctx context.Context, f models.ResourceFilter) ([]models.Resource, int64, error)
	Featured(ctx context.Context, limit int64) ([]models.Resource, error)
	FindActiveByID(ctx context.Context, id string) (*models.Resource, error)
	IncrementViews(ctx context.Context, id string) error
	InsertOne(ctx context.Context, r models.Resource) (*models.Resource, error)
}

type resourceDatabase struct {
	db DatabaseHelper
}

// NewResourceDatabase initializes a new instance of resource database with the provided db connection
func NewResourceDatabase(db DatabaseHelper) ResourceDatabase {
	return &resourceDatabase{
		db: db,
	}
}

func (r *resourceDatabase) ListCategories(ctx context.Context) ([]models.ResourceCategory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}})
	cur, err := r.db.Collection(resourceCategoryName).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	categories := []models.ResourceCategory{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *resourceDatabase) InsertCategory(ctx context.Context, c models.ResourceCategory) (*models.ResourceCategory, error) {
	if c.ID == "" {
		c.ID = NewID()
	}
	if _, err := r.db.Collection(resourceCategoryName).InsertOne(ctx, c); err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func filterToMatch(f models.ResourceFilter) bson.M {
	match := bson.M{"isActive": true}
	if f.CategoryID != "" {
		match["categoryId"] = f.CategoryID
	}
	if f.ResourceType != "" {
		match["resourceType"] = f.ResourceType
	}
	if f.Language != "" {
		match["language"] = f.Language
	}
	if f.FeaturedOnly {
		match["isFeatured"] = true
	}
	return match
}

func (r *resourceDatabase) List(ctx context.Context, f models.ResourceFilter) ([]models.Resource, int64, error) {
	match := filterToMatch(f)
	total, err := r.db.Collection(resourceName).CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, err
	}

	p := newMongoPaginate(f.Limit, f.Page).getPaginatedOpts()
	resources, err := r.aggregate(ctx, match, *p.Skip, *p.Limit)
	if err != nil {
		return nil, 0, err
	}
	return resources, total, nil
}

func (r *resourceDatabase) Featured(ctx context.Context, limit int64) ([]models.Resource, error) {
	return r.aggregate(ctx, bson.M{"isActive": true, "isFeatured": true}, 0, limit)
}

func (r *resourceDatabase) FindActiveByID(ctx context.Context, id string) (*models.Resource, error) {
	resources, err := r.aggregate(ctx, bson.M{"_id": id, "isActive": true}, 0, 1)
	if err != nil {
		return nil, err
	}
	if len(resources) == 0 {
		return nil, ErrNotFound
	}
	return &resources[0], nil
}

// aggregate lists resources featured first then most viewed, joined with their category name
func (r *resourceDatabase) aggregate(ctx context.Context, match bson.M, skip, limit int64) ([]models.Resource, error) {
	pipeline := []bson.M{
		{"$match": match},
		{"$sort": bson.D{{Key: "isFeatured", Value: -1}, {Key: "viewCount", Value: -1}, {Key: "createdAt", Value: -1}}},
		{"$skip": skip},
		{"$limit": limit},
		{"$lookup": bson.M{
			"from":         resourceCategoryName,
			"localField":   "categoryId",
			"foreignField": "_id",
			"as":           "category",
		}},
		{"$set": bson.M{"categoryName": bson.M{"$ifNull": bson.A{bson.M{"$first": "$category.name"}, ""}}}},
		{"$unset": "category"},
	}
	cur, err := r.db.Collection(resourceName).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	resources := []models.Resource{}
	if err := cur.All(ctx, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *resourceDatabase) IncrementViews(ctx context.Context, id string) error {
	_, err := r.db.Collection(resourceName).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"viewCount": 1}})
	return translateError(err)
}

func (r *resourceDatabase) InsertOne(ctx context.Context, res models.Resource) (*models.Resource, error) {
	if res.ID == "" {
		res.ID = NewID()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = now()
	}
	if res.Tags == nil {
		res.Tags = []string{}
	}
	if _, err := r.db.Collection(resourceName).InsertOne(ctx, res); err != nil {
		return nil, translateError(err)
	}
	return &res, nil
}
