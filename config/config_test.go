package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	t.Setenv("DB_NAME", "test")
	t.Setenv("JWT_SECRET", "s3cret")

	conf, err := New()
	require.NoError(t, err)

	assert.Equal(t, "test", conf.DatabaseName)
	assert.Equal(t, DriverMongo, conf.DBDriver)
	assert.Equal(t, 10, conf.MaxPoolSize)
	assert.Equal(t, 7*24*time.Hour, conf.JWTTTL)
	assert.Equal(t, "s3cret", conf.JWTSecret)
	assert.True(t, conf.Development())
}

func TestNewRequiresSecretInProduction(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := New()
	assert.EqualError(t, err, "JWT_SECRET must be set outside development")
}

func TestNewPostgresNeedsDatabaseURL(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := New()
	assert.Error(t, err)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("DB_DRIVER", "sqlite")

	_, err := New()
	assert.EqualError(t, err, `unsupported DB_DRIVER "sqlite"`)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"http://a", "http://b"}, splitList(" http://a, ,http://b "))
	assert.Nil(t, splitList(""))
}

func TestSetLoggerSetsDevelopmentLogger(t *testing.T) {
	l, err := setLogger("development")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))
}

func TestSetLoggerSetsProductionLogger(t *testing.T) {
	l, err := setLogger("production")
	assert.NoError(t, err)
	assert.False(t, l.Core().Enabled(-1))
	assert.True(t, l.Core().Enabled(0))
}

func TestSetLoggerSetsLocalLogger(t *testing.T) {
	l, err := setLogger("local")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(0))
}
