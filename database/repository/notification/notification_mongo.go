package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"coden/database"
	"coden/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo creates a new instance of NotificationRepository using MongoDB.
func NewMongoNotificationRepo() NotificationRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("notifications")
	repo := &MongoNotificationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoNotificationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}},
		{Keys: bson.D{{Key: "message_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new notification record.
func (r *MongoNotificationRepo) Create(record *models.NotificationRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	record.UpdatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to create notification record: %w", err)
	}
	return nil
}

// UpdateStatus updates the delivery status of a record by message ID.
func (r *MongoNotificationRepo) UpdateStatus(messageID, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"message_id": messageID}, update)
	if err != nil {
		return fmt.Errorf("failed to update notification %s: %w", messageID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("notification with message id %s not found", messageID)
	}
	return nil
}

// ListByBooking retrieves all records dispatched for a booking.
func (r *MongoNotificationRepo) ListByBooking(bookingID string) ([]models.NotificationRecord, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"booking_id": bookingID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.NotificationRecord
	for cursor.Next(ctx) {
		var rec models.NotificationRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode notification record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
