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

// MongoProductRepository is a MongoDB implementation of ProductRepository.
type MongoProductRepository struct {
	coll *mongo.Collection
}

// NewMongoProductRepository creates a new instance of MongoProductRepository.
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{
		coll: db.Collection("products"),
	}
}

// GetAll retrieves all products from the collection, in store-native order.
func (r *MongoProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the collection.
func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	var product models.Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product, assigning a fresh identifier if none is set.
func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update replaces all mutable fields of the product matching id.
func (r *MongoProductRepository) Update(ctx context.Context, id string, product *models.Product) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	product.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, product)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes the product matching id. Deletion is atomic per document,
// so concurrent deletes of the same id resolve to exactly one success.
func (r *MongoProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
