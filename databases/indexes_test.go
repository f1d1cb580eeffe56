package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/databases/mocks"
)

func TestEnsureIndexes_PartialSlotIndex(t *testing.T) {
	dbHelper := mocks.NewDatabaseHelper(t)
	collectionHelper := mocks.NewCollectionHelper(t)
	appointments := mocks.NewCollectionHelper(t)

	var slotIndex mongo.IndexModel
	appointments.On("CreateIndexes", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		slotIndex = args.Get(1).([]mongo.IndexModel)[0]
	})
	collectionHelper.On("CreateIndexes", mock.Anything, mock.Anything).Return(nil)
	dbHelper.On("Collection", "appointments").Return(appointments)
	dbHelper.On("Collection", mock.Anything).Return(collectionHelper)

	err := databases.EnsureIndexes(context.Background(), dbHelper)

	assert.NoError(t, err)
	assert.True(t, *slotIndex.Options.Unique)
	assert.Equal(t, bson.M{"slotHeld": true}, slotIndex.Options.PartialFilterExpression)
}

func TestEnsureIndexes_Error(t *testing.T) {
	dbHelper := mocks.NewDatabaseHelper(t)
	collectionHelper := mocks.NewCollectionHelper(t)

	collectionHelper.On("CreateIndexes", mock.Anything, mock.Anything).Return(errors.New("mocked-error"))
	dbHelper.On("Collection", mock.Anything).Return(collectionHelper)

	err := databases.EnsureIndexes(context.Background(), dbHelper)

	assert.ErrorContains(t, err, "mocked-error")
}
