package databases

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoPaginate struct {
	limit int64
	page  int64
}

func newMongoPaginate(limit, page int64) *mongoPaginate {
	if limit < 1 {
		limit = 1
	}
	if page < 1 {
		page = 1
	}
	return &mongoPaginate{
		limit: limit,
		page:  page,
	}
}

func (mp *mongoPaginate) getPaginatedOpts() *options.FindOptions {
	l := mp.limit
	skip := mp.page*mp.limit - mp.limit
	fOpt := options.FindOptions{Limit: &l, Skip: &skip}

	return &fOpt
}

// NewID returns a fresh document id. Ids are stored as hex strings so that both
// drivers share the same model types.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

func set(fields bson.M) bson.M {
	return bson.M{"$set": fields}
}

func now() time.Time {
	return time.Now().UTC()
}
