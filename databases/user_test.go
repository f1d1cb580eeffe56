package databases_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stressbuster/stressbuster-api/config"
	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/databases/mocks"
	"github.com/stressbuster/stressbuster-api/models"
)

func TestNewUserDatabase(t *testing.T) {
	os.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	os.Setenv("DB_NAME", "test")
	defer os.Unsetenv("DB_URI")
	defer os.Unsetenv("DB_NAME")
	conf, err := config.New()
	require.NoError(t, err)

	dbClient, err := databases.NewClient(conf)
	assert.NoError(t, err)

	db := databases.NewDatabase(conf, dbClient)

	userDB := databases.NewUserDatabase(db)

	assert.NotEmpty(t, userDB)
}

func TestUserDatabase_FindByEmail(t *testing.T) {
	// define variables for interfaces
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var srHelperErr databases.SingleResultHelper
	var srHelperCorrect databases.SingleResultHelper

	// set interfaces implementation to mocked structures
	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	srHelperErr = &mocks.SingleResultHelper{}
	srHelperCorrect = &mocks.SingleResultHelper{}

	srHelperErr.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(mongo.ErrNoDocuments)

	srHelperCorrect.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*models.User)
		arg.ID = "mocked-user"
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"email": "missing@example.com"}).
		Return(srHelperErr)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"email": "jane@example.com"}).
		Return(srHelperCorrect)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "users").Return(collectionHelper)

	userDba := databases.NewUserDatabase(dbHelper)

	user, err := userDba.FindByEmail(context.Background(), "missing@example.com")
	assert.Empty(t, user)
	assert.ErrorIs(t, err, databases.ErrNotFound)

	user, err = userDba.FindByEmail(context.Background(), "jane@example.com")
	assert.Equal(t, &models.User{ID: "mocked-user"}, user)
	assert.NoError(t, err)
}

func TestUserDatabase_ExistsByEmailOrUsername(t *testing.T) {
	dbHelper := mocks.NewDatabaseHelper(t)
	collectionHelper := mocks.NewCollectionHelper(t)

	filter := bson.M{"$or": []bson.M{{"email": "jane@example.com"}, {"username": "jane"}}}
	collectionHelper.On("CountDocuments", mock.Anything, filter).Return(int64(1), nil).Once()
	collectionHelper.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), errors.New("mocked-error")).Once()
	dbHelper.On("Collection", "users").Return(collectionHelper)

	userDB := databases.NewUserDatabase(dbHelper)

	exists, err := userDB.ExistsByEmailOrUsername(context.Background(), "jane@example.com", "jane")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = userDB.ExistsByEmailOrUsername(context.Background(), "other@example.com", "other")
	assert.False(t, exists)
	assert.EqualError(t, err, "mocked-error")
}

func TestUserDatabase_UpdateProfileDefaultsLanguage(t *testing.T) {
	dbHelper := mocks.NewDatabaseHelper(t)
	collectionHelper := mocks.NewCollectionHelper(t)
	srHelper := mocks.NewSingleResultHelper(t)

	var update bson.M
	collectionHelper.On("UpdateOne", mock.Anything, bson.M{"_id": "u1"}, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 1}, nil).
		Run(func(args mock.Arguments) { update = args.Get(2).(bson.M) })
	srHelper.On("Decode", mock.Anything).Return(nil)
	collectionHelper.On("FindOne", mock.Anything, bson.M{"_id": "u1"}).Return(srHelper)
	dbHelper.On("Collection", "users").Return(collectionHelper)

	userDB := databases.NewUserDatabase(dbHelper)
	_, err := userDB.UpdateProfile(context.Background(), "u1", models.ProfileUpdate{FullName: "Jane Doe"})

	require.NoError(t, err)
	fields := update["$set"].(bson.M)
	assert.Equal(t, "Jane Doe", fields["fullName"])
	assert.Equal(t, "en", fields["preferredLanguage"])
}
