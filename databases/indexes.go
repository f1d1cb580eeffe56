package databases

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the stores rely on. It is idempotent and runs at startup.
//
// The partial unique index on appointments is what keeps two concurrent bookings from
// holding the same counselor slot: only documents with slotHeld=true take part in it,
// so a cancelled appointment frees the slot.
func EnsureIndexes(ctx context.Context, db DatabaseHelper) error {
	indexes := map[string][]mongo.IndexModel{
		appointmentName: {
			{
				Keys: bson.D{{Key: "counselorId", Value: 1}, {Key: "date", Value: 1}, {Key: "time", Value: 1}},
				Options: options.Index().
					SetName("counselor_slot_held").
					SetUnique(true).
					SetPartialFilterExpression(bson.M{"slotHeld": true}),
			},
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}}},
			{Keys: bson.D{{Key: "date", Value: 1}, {Key: "status", Value: 1}}},
		},
		userName: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		adminName: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		chatName: {
			{Keys: bson.D{{Key: "sessionId", Value: 1}, {Key: "createdAt", Value: 1}}},
		},
		resourceName: {
			{Keys: bson.D{{Key: "categoryId", Value: 1}, {Key: "isActive", Value: 1}}},
		},
		gameName: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
	}

	for name, models := range indexes {
		if err := db.Collection(name).CreateIndexes(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}
