package areaRepo

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

// MongoAreaRepo implements AreaRepository using MongoDB.
type MongoAreaRepo struct {
	coll *mongo.Collection
}

// NewMongoAreaRepo creates a new instance of AreaRepository using MongoDB.
func NewMongoAreaRepo() AreaRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("areas")
	repo := &MongoAreaRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAreaRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "type", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an area by its unique ID.
func (r *MongoAreaRepo) GetByID(id string) (*models.Area, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var area models.Area
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&area); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch area with id %s: %w", id, err)
	}
	return &area, nil
}

// GetAll retrieves all areas.
func (r *MongoAreaRepo) GetAll() ([]models.Area, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve areas: %w", err)
	}
	defer cursor.Close(ctx)

	var areas []models.Area
	for cursor.Next(ctx) {
		var a models.Area
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode area: %w", err)
		}
		areas = append(areas, a)
	}
	return areas, nil
}

// Create inserts a new area document.
func (r *MongoAreaRepo) Create(area *models.Area) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, area); err != nil {
		return fmt.Errorf("failed to create area: %w", err)
	}
	return nil
}

// Update modifies an existing area document.
func (r *MongoAreaRepo) Update(area *models.Area) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": area.ID}, bson.M{"$set": area})
	if err != nil {
		return fmt.Errorf("failed to update area with id %s: %w", area.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("area with id %s not found", area.ID)
	}
	return nil
}

// ReserveUnit atomically decrements the available count if any unit is free.
// The filter requires available > 0, so a concurrent reserve on the last unit
// matches at most once.
func (r *MongoAreaRepo) ReserveUnit(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "available": bson.M{"$gt": 0}}
	update := bson.M{"$inc": bson.M{"available": -1}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to reserve unit in area %s: %w", id, err)
	}
	return result.ModifiedCount == 1, nil
}

// ReleaseUnit increments the available count, bounded by capacity.
func (r *MongoAreaRepo) ReleaseUnit(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "$expr": bson.M{"$lt": bson.A{"$available", "$capacity"}}}
	update := bson.M{"$inc": bson.M{"available": 1}}

	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to release unit in area %s: %w", id, err)
	}
	return nil
}
