package databases

//go generate: mockery --name AppointmentDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stressbuster/stressbuster-api/models"
)

const appointmentName = "appointments"

// AppointmentDatabase contains the methods to use with the appointment database
type AppointmentDatabase interface {
	InsertOne(ctx context.Context, a models.Appointment) (*models.Appointment, error)
	FindByID(ctx context.Context, id string) (*models.Appointment, error)
	FindActiveAt(ctx context.Context, counselorID, date, time string) (*models.Appointment, error)
	BookedTimes(ctx context.Context, counselorID, date string) ([]string, error)
	ListByUser(ctx context.Context, userID string) ([]models.AppointmentWithCounselor, error)
	ListByDate(ctx context.Context, date string, statuses []models.AppointmentStatus) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id string, from []models.AppointmentStatus, to models.AppointmentStatus) (*models.Appointment, error)
}

// appointmentDocument is the stored form of an appointment. slotHeld mirrors
// Status.HoldsSlot and backs the partial unique index on the slot.
type appointmentDocument struct {
	models.Appointment `bson:",inline"`
	SlotHeld           bool `bson:"slotHeld"`
}

type appointmentDatabase struct {
	db DatabaseHelper
}

// NewAppointmentDatabase initializes a new instance of appointment database with the provided db connection
func NewAppointmentDatabase(db DatabaseHelper) AppointmentDatabase {
	return &appointmentDatabase{
		db: db,
	}
}

func (a *appointmentDatabase) InsertOne(ctx context.Context, appt models.Appointment) (*models.Appointment, error) {
	if appt.ID == "" {
		appt.ID = NewID()
	}
	doc := appointmentDocument{Appointment: appt, SlotHeld: appt.Status.HoldsSlot()}
	if _, err := a.db.Collection(appointmentName).InsertOne(ctx, doc); err != nil {
		return nil, translateError(err)
	}
	return &appt, nil
}

func (a *appointmentDatabase) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	return a.findOne(ctx, bson.M{"_id": id})
}

func (a *appointmentDatabase) FindActiveAt(ctx context.Context, counselorID, date, time string) (*models.Appointment, error) {
	return a.findOne(ctx, bson.M{
		"counselorId": counselorID,
		"date":        date,
		"time":        time,
		"slotHeld":    true,
	})
}

func (a *appointmentDatabase) findOne(ctx context.Context, filter bson.M) (*models.Appointment, error) {
	doc := &appointmentDocument{}
	if err := a.db.Collection(appointmentName).FindOne(ctx, filter).Decode(doc); err != nil {
		return nil, translateError(err)
	}
	return &doc.Appointment, nil
}

func (a *appointmentDatabase) BookedTimes(ctx context.Context, counselorID, date string) ([]string, error) {
	filter := bson.M{"counselorId": counselorID, "date": date, "slotHeld": true}
	opts := options.Find().SetProjection(bson.M{"time": 1}).SetSort(bson.D{{Key: "time", Value: 1}})
	cur, err := a.db.Collection(appointmentName).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Time string `bson:"time"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	times := make([]string, 0, len(rows))
	for _, r := range rows {
		times = append(times, r.Time)
	}
	return times, nil
}

func (a *appointmentDatabase) ListByUser(ctx context.Context, userID string) ([]models.AppointmentWithCounselor, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"userId": userID}},
		{"$sort": bson.D{{Key: "date", Value: -1}, {Key: "time", Value: -1}}},
		{"$lookup": bson.M{
			"from":         counselorName,
			"localField":   "counselorId",
			"foreignField": "_id",
			"as":           "counselor",
		}},
		{"$unwind": "$counselor"},
		{"$project": bson.M{
			"date":           1,
			"time":           1,
			"status":         1,
			"notes":          1,
			"counselorName":  "$counselor.name",
			"specialization": "$counselor.specialization",
		}},
	}
	cur, err := a.db.Collection(appointmentName).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	appointments := []models.AppointmentWithCounselor{}
	if err := cur.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (a *appointmentDatabase) ListByDate(ctx context.Context, date string, statuses []models.AppointmentStatus) ([]models.Appointment, error) {
	filter := bson.M{}
	if date != "" {
		filter["date"] = date
	}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cur, err := a.db.Collection(appointmentName).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []appointmentDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	appointments := make([]models.Appointment, 0, len(docs))
	for _, d := range docs {
		appointments = append(appointments, d.Appointment)
	}
	return appointments, nil
}

// UpdateStatus moves the appointment to status to, but only while it is still in one of
// the from statuses. ErrNotFound is returned when nothing matched.
func (a *appointmentDatabase) UpdateStatus(ctx context.Context, id string, from []models.AppointmentStatus, to models.AppointmentStatus) (*models.Appointment, error) {
	filter := bson.M{"_id": id, "status": bson.M{"$in": from}}
	update := set(bson.M{
		"status":    to,
		"slotHeld":  to.HoldsSlot(),
		"updatedAt": now(),
	})
	res, err := a.db.Collection(appointmentName).UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, translateError(err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return a.FindByID(ctx, id)
}
