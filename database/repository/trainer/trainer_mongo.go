package trainerRepo

import (
	"context"
	"fmt"
	"time"

	"coachbook/database"
	"coachbook/models"
	"coachbook/services/scheduling"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTrainerRepo implements TrainerRepository using MongoDB.
type MongoTrainerRepo struct {
	coll *mongo.Collection
}

// NewMongoTrainerRepo creates a new instance of TrainerRepository using MongoDB.
func NewMongoTrainerRepo() TrainerRepository {
	return &MongoTrainerRepo{coll: database.DB().Collection("trainers")}
}

// availabilityDoc tolerates both the canonical nested timeSlots shape and
// the retired flat start/end pair still present on old documents.
type availabilityDoc struct {
	Day       string             `bson:"day"`
	Active    bool               `bson:"active"`
	TimeSlots []models.TimeRange `bson:"timeSlots,omitempty"`
	Start     string             `bson:"start,omitempty"`
	End       string             `bson:"end,omitempty"`
}

type trainerDoc struct {
	ID           string            `bson:"id"`
	Name         string            `bson:"name"`
	Email        string            `bson:"email"`
	EventTypes   []string          `bson:"eventTypes,omitempty"`
	Availability []availabilityDoc `bson:"availability,omitempty"`
}

// toModel migrates legacy availability entries at load time so the rest of
// the system only ever sees the nested timeSlots shape.
func (d trainerDoc) toModel() models.Trainer {
	trainer := models.Trainer{
		ID:         d.ID,
		Name:       d.Name,
		Email:      d.Email,
		EventTypes: d.EventTypes,
	}
	for _, a := range d.Availability {
		if len(a.TimeSlots) > 0 {
			trainer.Availability = append(trainer.Availability, models.AvailabilitySlot{
				Day:       a.Day,
				Active:    a.Active,
				TimeSlots: a.TimeSlots,
			})
			continue
		}
		trainer.Availability = append(trainer.Availability, scheduling.MigrateLegacyDay(scheduling.LegacyDayAvailability{
			Day:    a.Day,
			Active: a.Active,
			Start:  a.Start,
			End:    a.End,
		}))
	}
	return trainer
}

func (r *MongoTrainerRepo) Create(trainer *models.Trainer) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, trainer); err != nil {
		return fmt.Errorf("failed to create trainer: %w", err)
	}
	return nil
}

func (r *MongoTrainerRepo) Update(trainer *models.Trainer) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": trainer.ID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": trainer})
	if err != nil {
		return fmt.Errorf("failed to update trainer with id %s: %w", trainer.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trainer with id %s not found", trainer.ID)
	}
	return nil
}

func (r *MongoTrainerRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete trainer with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("trainer with id %s not found", id)
	}
	return nil
}

func (r *MongoTrainerRepo) GetByID(id string) (*models.Trainer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc trainerDoc
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to fetch trainer with id %s: %w", id, err)
	}
	trainer := doc.toModel()
	return &trainer, nil
}

func (r *MongoTrainerRepo) GetAll() ([]models.Trainer, error) {
	return r.find(bson.M{})
}

func (r *MongoTrainerRepo) GetQualified(eventTypeID string) ([]models.Trainer, error) {
	// Empty or absent eventTypes means the trainer teaches everything.
	filter := bson.M{"$or": []bson.M{
		{"eventTypes": eventTypeID},
		{"eventTypes": bson.M{"$exists": false}},
		{"eventTypes": bson.M{"$size": 0}},
	}}
	return r.find(filter)
}

func (r *MongoTrainerRepo) find(filter bson.M) ([]models.Trainer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve trainers: %w", err)
	}
	defer cursor.Close(ctx)

	var trainers []models.Trainer
	for cursor.Next(ctx) {
		var doc trainerDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode trainer: %w", err)
		}
		trainers = append(trainers, doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while retrieving trainers: %w", err)
	}
	return trainers, nil
}
