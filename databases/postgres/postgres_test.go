package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/models"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", sql.ErrNoRows, databases.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", sql.ErrNoRows), databases.ErrNotFound},
		{"unique violation", &pq.Error{Code: "23505"}, databases.ErrDuplicateKey},
		{"foreign key violation", &pq.Error{Code: "23503"}, databases.ErrInvalidReference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translateError(tt.in))
		})
	}

	other := errors.New("boom")
	assert.Equal(t, other, translateError(other))
}

func TestWhereClause(t *testing.T) {
	where, args := whereClause(models.ResourceFilter{})
	assert.Equal(t, " WHERE r.is_active = TRUE", where)
	assert.Empty(t, args)

	where, args = whereClause(models.ResourceFilter{
		CategoryID:   "cat",
		ResourceType: models.ResourceVideo,
		Language:     "hi",
		FeaturedOnly: true,
	})
	assert.Equal(t, " WHERE r.is_active = TRUE AND r.category_id = $1 AND r.resource_type = $2 AND r.language = $3 AND r.is_featured = TRUE", where)
	assert.Equal(t, []interface{}{"cat", models.ResourceVideo, "hi"}, args)
}

// openTestDB connects to STRESSBUSTER_TEST_DATABASE_URL. The tests that need a live
// server are skipped when it is unset.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	url := os.Getenv("STRESSBUSTER_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("STRESSBUSTER_TEST_DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", url)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db))
	_, err = db.ExecContext(ctx, `TRUNCATE appointments, counselors, chatbot_conversations, game_sessions, users CASCADE`)
	require.NoError(t, err)
	return db
}

func TestAppointmentStore_SlotHeldUniqueness(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	stores := NewStores(db)

	c, err := stores.Counselors.InsertOne(ctx, models.Counselor{
		Name:               "Dr. Test",
		AvailableDays:      []string{"Monday"},
		AvailableTimeStart: "09:00:00",
		AvailableTimeEnd:   "17:00:00",
		IsActive:           true,
	})
	require.NoError(t, err)

	date := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	first, err := stores.Appointments.InsertOne(ctx, models.Appointment{
		CounselorID: c.ID, Date: date, Time: "10:00:00", Status: models.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00:00", first.Time)

	_, err = stores.Appointments.InsertOne(ctx, models.Appointment{
		CounselorID: c.ID, Date: date, Time: "10:00:00", Status: models.StatusPending,
	})
	assert.ErrorIs(t, err, databases.ErrDuplicateKey)

	booked, err := stores.Appointments.BookedTimes(ctx, c.ID, date)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00:00"}, booked)

	_, err = stores.Appointments.UpdateStatus(ctx, first.ID,
		[]models.AppointmentStatus{models.StatusPending}, models.StatusCancelled)
	require.NoError(t, err)

	_, err = stores.Appointments.UpdateStatus(ctx, first.ID,
		[]models.AppointmentStatus{models.StatusPending}, models.StatusCancelled)
	assert.ErrorIs(t, err, databases.ErrNotFound)

	_, err = stores.Appointments.InsertOne(ctx, models.Appointment{
		CounselorID: c.ID, Date: date, Time: "10:00:00", Status: models.StatusPending,
	})
	assert.NoError(t, err)
}

func TestChatStore_ListBySessionOrdered(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	stores := NewStores(db)

	for _, text := range []string{"hi", "hello back"} {
		_, err := stores.Chat.Append(ctx, models.ChatMessage{SessionID: "s1", Message: text, Sender: models.SenderUser})
		require.NoError(t, err)
	}

	messages, err := stores.Chat.ListBySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "hi", messages[0].Message)
	assert.Equal(t, "hello back", messages[1].Message)
}
