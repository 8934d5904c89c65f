package blockedRepo

import (
	"context"
	"fmt"
	"time"

	"coachbook/database"
	"coachbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBlockedRepo implements BlockedRepository using MongoDB.
type MongoBlockedRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockedRepo creates a new instance of BlockedRepository using MongoDB.
func NewMongoBlockedRepo() BlockedRepository {
	return &MongoBlockedRepo{coll: database.DB().Collection("blocked_slots")}
}

func (r *MongoBlockedRepo) Create(block *models.BlockedSlot) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, block); err != nil {
		return fmt.Errorf("failed to create blocked slot: %w", err)
	}
	return nil
}

func (r *MongoBlockedRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete blocked slot with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("blocked slot with id %s not found", id)
	}
	return nil
}

func (r *MongoBlockedRepo) GetByTrainer(trainerID string) ([]models.BlockedSlot, error) {
	return r.find(bson.M{"trainer_id": trainerID})
}

func (r *MongoBlockedRepo) GetByDate(date string) ([]models.BlockedSlot, error) {
	return r.find(bson.M{"date": date})
}

func (r *MongoBlockedRepo) PurgeBefore(date string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// "YYYY-MM-DD" strings sort chronologically, so a plain string
	// comparison is enough.
	result, err := r.coll.DeleteMany(ctx, bson.M{"date": bson.M{"$lt": date}})
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired blocked slots: %w", err)
	}
	return result.DeletedCount, nil
}

func (r *MongoBlockedRepo) find(filter bson.M) ([]models.BlockedSlot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve blocked slots: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.BlockedSlot
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("failed to decode blocked slots: %w", err)
	}
	return blocks, nil
}
