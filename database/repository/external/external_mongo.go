package externalRepo

import (
	"context"
	"fmt"
	"time"

	"coachbook/database"
	"coachbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// defaultEventDuration mirrors the scheduling engine's assumption for synced
// events without an end time.
const defaultEventDuration = time.Hour

// MongoExternalBookingRepo implements ExternalBookingRepository using MongoDB.
type MongoExternalBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoExternalBookingRepo creates a new instance of ExternalBookingRepository using MongoDB.
func NewMongoExternalBookingRepo() ExternalBookingRepository {
	return &MongoExternalBookingRepo{coll: database.DB().Collection("external_bookings")}
}

func (r *MongoExternalBookingRepo) Upsert(event *models.ExternalBooking) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": event.ID}, event, opts); err != nil {
		return fmt.Errorf("failed to upsert external booking %s: %w", event.ID, err)
	}
	return nil
}

func (r *MongoExternalBookingRepo) DeleteByTrainer(trainerID string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, bson.M{"trainer_id": trainerID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete external bookings for trainer %s: %w", trainerID, err)
	}
	return result.DeletedCount, nil
}

func (r *MongoExternalBookingRepo) GetByTrainer(trainerID string) ([]models.ExternalBooking, error) {
	return r.find(bson.M{"trainer_id": trainerID})
}

func (r *MongoExternalBookingRepo) GetByTrainersInWindow(trainerIDs []string, from, to time.Time) ([]models.ExternalBooking, error) {
	if len(trainerIDs) == 0 {
		return nil, nil
	}
	filter := bson.M{
		"trainer_id": bson.M{"$in": trainerIDs},
		"start":      bson.M{"$lt": to},
		"$or": []bson.M{
			{"end": bson.M{"$gt": from}},
			// No end time stored: the event is assumed to last one hour.
			{"end": bson.M{"$exists": false}, "start": bson.M{"$gt": from.Add(-defaultEventDuration)}},
		},
	}
	return r.find(filter)
}

func (r *MongoExternalBookingRepo) PurgeEndedBefore(cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"end": bson.M{"$lt": cutoff}},
		{"end": bson.M{"$exists": false}, "start": bson.M{"$lt": cutoff.Add(-defaultEventDuration)}},
	}}
	result, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to purge ended external bookings: %w", err)
	}
	return result.DeletedCount, nil
}

func (r *MongoExternalBookingRepo) find(filter bson.M) ([]models.ExternalBooking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve external bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.ExternalBooking
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode external bookings: %w", err)
	}
	return events, nil
}
