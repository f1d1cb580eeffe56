package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stressbuster/stressbuster-api/booking"
	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/databases/mocks"
	mailmocks "github.com/stressbuster/stressbuster-api/mailer/mocks"
	"github.com/stressbuster/stressbuster-api/models"
	templates "github.com/stressbuster/stressbuster-api/templates/html"
)

func strPtr(s string) *string { return &s }

type fixture struct {
	counselors   *mocks.CounselorDatabase
	appointments *mocks.AppointmentDatabase
	users        *mocks.UserDatabase
	mail         *mailmocks.Mailer
	s            *Scheduler
}

func newFixture(t *testing.T) fixture {
	f := fixture{
		counselors:   mocks.NewCounselorDatabase(t),
		appointments: mocks.NewAppointmentDatabase(t),
		users:        mocks.NewUserDatabase(t),
		mail:         mailmocks.NewMailer(t),
	}
	svc := booking.NewService(f.counselors, f.appointments)
	f.s = NewScheduler("0 8 * * *", svc, f.users, f.mail)
	f.s.now = func() time.Time { return time.Date(2030, 1, 6, 8, 0, 0, 0, time.UTC) }
	return f
}

var activeStatuses = []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}

func TestSendReminders(t *testing.T) {
	f := newFixture(t)
	f.appointments.On("ListByDate", mock.Anything, "2030-01-07", activeStatuses).Return([]models.Appointment{
		{ID: "a1", CounselorID: "c1", UserID: strPtr("u1"), Date: "2030-01-07", Time: "10:00:00"},
		{ID: "a2", CounselorID: "c1", UserID: nil, IsAnonymous: true, Date: "2030-01-07", Time: "11:00:00"},
		{ID: "a3", CounselorID: "c1", UserID: strPtr("u2"), Date: "2030-01-07", Time: "12:00:00"},
		{ID: "a4", CounselorID: "c1", UserID: strPtr("gone"), Date: "2030-01-07", Time: "13:00:00"},
	}, nil)
	f.users.On("FindByID", mock.Anything, "u1").Return(&models.User{ID: "u1", Username: "jane", Email: "jane@example.com"}, nil)
	f.users.On("FindByID", mock.Anything, "u2").Return(&models.User{ID: "u2", Username: "sam", Email: "sam@example.com"}, nil)
	f.users.On("FindByID", mock.Anything, "gone").Return(nil, databases.ErrNotFound)
	f.counselors.On("FindByID", mock.Anything, "c1").Return(&models.Counselor{ID: "c1", Name: "Dr. Priya Sharma", IsActive: true}, nil).Once()
	var reminder templates.Email
	f.mail.On("Send", mock.Anything, "jane@example.com", "jane", mock.Anything).Run(func(args mock.Arguments) {
		reminder = args.Get(3).(templates.Email)
	}).Return(nil)
	f.mail.On("Send", mock.Anything, "sam@example.com", "sam", mock.Anything).Return(errors.New("sendgrid down"))

	sent, err := f.s.SendReminders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Contains(t, reminder.PlainText, "Dr. Priya Sharma tomorrow, 2030-01-07 at 10:00:00")
}

func TestSendReminders_ListError(t *testing.T) {
	f := newFixture(t)
	f.appointments.On("ListByDate", mock.Anything, "2030-01-07", activeStatuses).Return(nil, errors.New("mongo: connection closed"))

	sent, err := f.s.SendReminders(context.Background())

	assert.Error(t, err)
	assert.Zero(t, sent)
}

func TestStart_InvalidSchedule(t *testing.T) {
	s := NewScheduler("every tuesday", nil, nil, nil)
	assert.Error(t, s.Start())
}
