package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/stressbuster/stressbuster-api/models"
)

const appointmentColumns = `id, counselor_id, user_id, to_char(appointment_date, 'YYYY-MM-DD'),
	to_char(appointment_time, 'HH24:MI:SS'), status, is_anonymous, notes, created_at, updated_at`

type appointmentStore struct {
	db *sql.DB
}

func scanAppointment(row rowScanner) (*models.Appointment, error) {
	var (
		a      models.Appointment
		userID sql.NullString
		notes  sql.NullString
	)
	err := row.Scan(&a.ID, &a.CounselorID, &userID, &a.Date, &a.Time, &a.Status,
		&a.IsAnonymous, &notes, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.UserID = stringPtr(userID)
	a.Notes = stringPtr(notes)
	return &a, nil
}

func (s *appointmentStore) InsertOne(ctx context.Context, a models.Appointment) (*models.Appointment, error) {
	if a.ID == "" {
		a.ID = newID()
	}
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO appointments (id, counselor_id, user_id, appointment_date, appointment_time, status, is_anonymous, notes)
		VALUES ($1, $2, $3, $4::date, $5::time, $6, $7, $8)
		RETURNING `+appointmentColumns,
		a.ID, a.CounselorID, nullString(a.UserID), a.Date, a.Time, a.Status, a.IsAnonymous, nullString(a.Notes),
	)
	stored, err := scanAppointment(row)
	if err != nil {
		return nil, translateError(err)
	}
	return stored, nil
}

func (s *appointmentStore) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id)
	a, err := scanAppointment(row)
	if err != nil {
		return nil, translateError(err)
	}
	return a, nil
}

func (s *appointmentStore) FindActiveAt(ctx context.Context, counselorID, date, time string) (*models.Appointment, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+appointmentColumns+` FROM appointments
		WHERE counselor_id = $1 AND appointment_date = $2::date AND appointment_time = $3::time
			AND status <> 'cancelled'`,
		counselorID, date, time,
	)
	a, err := scanAppointment(row)
	if err != nil {
		return nil, translateError(err)
	}
	return a, nil
}

func (s *appointmentStore) BookedTimes(ctx context.Context, counselorID, date string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT to_char(appointment_time, 'HH24:MI:SS') FROM appointments
		WHERE counselor_id = $1 AND appointment_date = $2::date AND status <> 'cancelled'
		ORDER BY appointment_time`,
		counselorID, date,
	)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	times := []string{}
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, rows.Err()
}

func (s *appointmentStore) ListByUser(ctx context.Context, userID string) ([]models.AppointmentWithCounselor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, to_char(a.appointment_date, 'YYYY-MM-DD'), to_char(a.appointment_time, 'HH24:MI:SS'),
			a.status, a.notes, c.name, c.specialization
		FROM appointments a
		JOIN counselors c ON a.counselor_id = c.id
		WHERE a.user_id = $1
		ORDER BY a.appointment_date DESC, a.appointment_time DESC`,
		userID,
	)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	appointments := []models.AppointmentWithCounselor{}
	for rows.Next() {
		var (
			a     models.AppointmentWithCounselor
			notes sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Date, &a.Time, &a.Status, &notes, &a.CounselorName, &a.Specialization); err != nil {
			return nil, err
		}
		a.Notes = stringPtr(notes)
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

func (s *appointmentStore) ListByDate(ctx context.Context, date string, statuses []models.AppointmentStatus) ([]models.Appointment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+appointmentColumns+` FROM appointments
		WHERE ($1 = '' OR appointment_date = NULLIF($1, '')::date)
			AND (cardinality($2::text[]) = 0 OR status = ANY($2::text[]))
		ORDER BY appointment_date, appointment_time`,
		date, pq.Array(statusStrings(statuses)),
	)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	appointments := []models.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, *a)
	}
	return appointments, rows.Err()
}

// UpdateStatus only applies while the row is still in one of the from statuses, so two
// racing transitions cannot both win
func (s *appointmentStore) UpdateStatus(ctx context.Context, id string, from []models.AppointmentStatus, to models.AppointmentStatus) (*models.Appointment, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE appointments SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = ANY($3::text[])
		RETURNING `+appointmentColumns,
		id, to, pq.Array(statusStrings(from)),
	)
	a, err := scanAppointment(row)
	if err != nil {
		return nil, translateError(err)
	}
	return a, nil
}

func statusStrings(statuses []models.AppointmentStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
