package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"warehouse/internal/models"
)

// MongoGarageRepository is a MongoDB implementation of GarageRepository.
type MongoGarageRepository struct {
	coll *mongo.Collection
}

// NewMongoGarageRepository creates a new instance of MongoGarageRepository.
func NewMongoGarageRepository(db *mongo.Database) *MongoGarageRepository {
	return &MongoGarageRepository{
		coll: db.Collection("garages"),
	}
}

// GetAll retrieves all garages from the collection, in store-native order.
func (r *MongoGarageRepository) GetAll(ctx context.Context) ([]models.Garage, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to get all garages: %w", err)
	}
	garages := make([]models.Garage, 0)
	if err := cursor.All(ctx, &garages); err != nil {
		return nil, fmt.Errorf("failed to decode garages: %w", err)
	}
	return garages, nil
}

// GetByID retrieves a single garage by its ID from the collection.
func (r *MongoGarageRepository) GetByID(ctx context.Context, id string) (*models.Garage, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("garage with ID %s: %w", id, ErrNotFound)
	}
	var garage models.Garage
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&garage); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("garage with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get garage by ID %s: %w", id, err)
	}
	return &garage, nil
}

// Create inserts a new garage, assigning a fresh identifier if none is set.
func (r *MongoGarageRepository) Create(ctx context.Context, garage *models.Garage) error {
	if garage.ID.IsZero() {
		garage.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, garage); err != nil {
		return fmt.Errorf("failed to create garage: %w", err)
	}
	return nil
}

// Update replaces all mutable fields of the garage matching id.
func (r *MongoGarageRepository) Update(ctx context.Context, id string, garage *models.Garage) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("garage with ID %s: %w", id, ErrNotFound)
	}
	garage.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, garage)
	if err != nil {
		return fmt.Errorf("failed to update garage: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("garage with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes the garage matching id.
func (r *MongoGarageRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("garage with ID %s: %w", id, ErrNotFound)
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete garage: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("garage with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
