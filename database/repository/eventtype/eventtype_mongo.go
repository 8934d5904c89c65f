package eventTypeRepo

import (
	"context"
	"fmt"
	"time"

	"coachbook/database"
	"coachbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoEventTypeRepo implements EventTypeRepository using MongoDB.
type MongoEventTypeRepo struct {
	coll *mongo.Collection
}

// NewMongoEventTypeRepo creates a new instance of EventTypeRepository using MongoDB.
func NewMongoEventTypeRepo() EventTypeRepository {
	return &MongoEventTypeRepo{coll: database.DB().Collection("event_types")}
}

func (r *MongoEventTypeRepo) Create(eventType *models.EventType) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, eventType); err != nil {
		return fmt.Errorf("failed to create event type: %w", err)
	}
	return nil
}

func (r *MongoEventTypeRepo) Update(eventType *models.EventType) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": eventType.ID}, bson.M{"$set": eventType})
	if err != nil {
		return fmt.Errorf("failed to update event type with id %s: %w", eventType.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("event type with id %s not found", eventType.ID)
	}
	return nil
}

func (r *MongoEventTypeRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete event type with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("event type with id %s not found", id)
	}
	return nil
}

func (r *MongoEventTypeRepo) GetByID(id string) (*models.EventType, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var eventType models.EventType
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&eventType); err != nil {
		return nil, fmt.Errorf("failed to fetch event type with id %s: %w", id, err)
	}
	return &eventType, nil
}

func (r *MongoEventTypeRepo) GetAll(activeOnly bool) ([]models.EventType, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve event types: %w", err)
	}
	defer cursor.Close(ctx)

	var eventTypes []models.EventType
	if err := cursor.All(ctx, &eventTypes); err != nil {
		return nil, fmt.Errorf("failed to decode event types: %w", err)
	}
	return eventTypes, nil
}
