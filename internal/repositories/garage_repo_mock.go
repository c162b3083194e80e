package repositories

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"warehouse/internal/models"
)

// MockGarageRepository is an in-memory implementation of GarageRepository.
type MockGarageRepository struct {
	garages map[string]models.Garage
	mu      sync.RWMutex
}

// NewMockGarageRepository creates a new instance of MockGarageRepository.
func NewMockGarageRepository() *MockGarageRepository {
	return &MockGarageRepository{
		garages: make(map[string]models.Garage),
	}
}

// GetAll returns all garages.
func (r *MockGarageRepository) GetAll(ctx context.Context) ([]models.Garage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	garageList := make([]models.Garage, 0, len(r.garages))
	for _, g := range r.garages {
		garageList = append(garageList, g)
	}
	return garageList, nil
}

// GetByID returns a garage by its ID.
func (r *MockGarageRepository) GetByID(ctx context.Context, id string) (*models.Garage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	garage, ok := r.garages[id]
	if !ok {
		return nil, fmt.Errorf("garage with ID %s: %w", id, ErrNotFound)
	}
	return &garage, nil
}

// Create adds a new garage, assigning a fresh identifier if none is set.
func (r *MockGarageRepository) Create(ctx context.Context, garage *models.Garage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if garage.ID.IsZero() {
		garage.ID = primitive.NewObjectID()
	}
	r.garages[garage.ID.Hex()] = *garage
	return nil
}

// Update replaces an existing garage.
func (r *MockGarageRepository) Update(ctx context.Context, id string, garage *models.Garage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.garages[id]
	if !ok {
		return fmt.Errorf("garage with ID %s: %w", id, ErrNotFound)
	}
	garage.ID = existing.ID
	r.garages[id] = *garage
	return nil
}

// Delete removes a garage by its ID.
func (r *MockGarageRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.garages[id]
	if !ok {
		return fmt.Errorf("garage with ID %s: %w", id, ErrNotFound)
	}
	delete(r.garages, id)
	return nil
}
