package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/mailer"
	"github.com/stressbuster/stressbuster-api/models"
	templates "github.com/stressbuster/stressbuster-api/templates/html"
)

// jobTimeout bounds a single reminder run
const jobTimeout = 5 * time.Minute

// Appointments is the part of the booking service the reminder job needs
type Appointments interface {
	AppointmentsOn(ctx context.Context, date string, statuses []models.AppointmentStatus) ([]models.Appointment, error)
	Counselor(ctx context.Context, id string) (*models.Counselor, error)
}

// Scheduler runs the periodic appointment reminder job
type Scheduler struct {
	cron         *cron.Cron
	schedule     string
	Appointments Appointments
	UDB          databases.UserDatabase
	Mail         mailer.Mailer
	now          func() time.Time
}

// NewScheduler creates a scheduler that runs the reminder job on schedule, in UTC
func NewScheduler(schedule string, appointments Appointments, uDB databases.UserDatabase, m mailer.Mailer) *Scheduler {
	return &Scheduler{
		cron:         cron.New(cron.WithLocation(time.UTC)),
		schedule:     schedule,
		Appointments: appointments,
		UDB:          uDB,
		Mail:         m,
		now:          time.Now,
	}
}

// Start registers the jobs and starts the cron goroutine
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, s.runReminders)
	if err != nil {
		return fmt.Errorf("register reminder job %q: %w", s.schedule, err)
	}
	s.cron.Start()
	zap.S().Infow("appointment reminder scheduler started", "schedule", s.schedule)
	return nil
}

// Stop waits for a running job to finish and stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("appointment reminder scheduler stopped")
}

func (s *Scheduler) runReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	sent, err := s.SendReminders(ctx)
	if err != nil {
		zap.S().Errorw("reminder job failed", "error", err, "sent", sent)
		return
	}
	zap.S().Infow("reminder job finished", "sent", sent)
}

// SendReminders emails every user with a pending or confirmed appointment tomorrow.
// Anonymous appointments are skipped. A failed email is logged and does not stop the run.
func (s *Scheduler) SendReminders(ctx context.Context) (int, error) {
	tomorrow := s.now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	appointments, err := s.Appointments.AppointmentsOn(ctx, tomorrow,
		[]models.AppointmentStatus{models.StatusPending, models.StatusConfirmed})
	if err != nil {
		return 0, fmt.Errorf("list appointments on %s: %w", tomorrow, err)
	}

	counselors := map[string]string{}
	sent := 0
	for _, a := range appointments {
		if a.IsAnonymous || a.UserID == nil {
			continue
		}
		user, err := s.UDB.FindByID(ctx, *a.UserID)
		if err != nil {
			zap.S().Warnw("reminder skipped, user lookup failed", "appointmentId", a.ID, "error", err)
			continue
		}
		name, ok := counselors[a.CounselorID]
		if !ok {
			name = "your counselor"
			if c, err := s.Appointments.Counselor(ctx, a.CounselorID); err == nil {
				name = c.Name
			}
			counselors[a.CounselorID] = name
		}

		email := templates.AppointmentReminder(templates.AppointmentDetails{
			Username:  user.Username,
			Counselor: name,
			Date:      a.Date,
			Time:      a.Time,
		})
		if err := s.Mail.Send(ctx, user.Email, user.Username, email); err != nil {
			zap.S().Errorw("failed to send reminder", "appointmentId", a.ID, "error", err)
			continue
		}
		sent++
	}
	return sent, nil
}
