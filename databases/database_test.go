package databases_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stressbuster/stressbuster-api/config"
	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/databases/mocks"
)

func TestNewDatabase_UsesConfiguredName(t *testing.T) {
	client := mocks.NewClientHelper(t)
	db := mocks.NewDatabaseHelper(t)
	client.On("Database", "stress_buster").Return(db)

	got := databases.NewDatabase(&config.Config{DatabaseName: "stress_buster"}, client)

	assert.Same(t, db, got)
}

func TestNewStores_BindsEveryStore(t *testing.T) {
	s := databases.NewStores(mocks.NewDatabaseHelper(t))

	assert.NotNil(t, s.Counselors)
	assert.NotNil(t, s.Appointments)
	assert.NotNil(t, s.Users)
	assert.NotNil(t, s.Admins)
	assert.NotNil(t, s.Chat)
	assert.NotNil(t, s.Resources)
	assert.NotNil(t, s.Helplines)
	assert.NotNil(t, s.Games)
}
