package repositories

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"warehouse/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return &product, nil
}

// Create adds a new product, assigning a fresh identifier if none is set.
func (r *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	r.products[product.ID.Hex()] = *product
	return nil
}

// Update replaces an existing product.
func (r *MockProductRepository) Update(ctx context.Context, id string, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	product.ID = existing.ID
	r.products[id] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	delete(r.products, id)
	return nil
}
