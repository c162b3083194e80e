package repositories

import (
	"context"

	"warehouse/internal/models"
)

// GarageRepository defines the interface for garage data access.
type GarageRepository interface {
	GetAll(ctx context.Context) ([]models.Garage, error)
	GetByID(ctx context.Context, id string) (*models.Garage, error)
	Create(ctx context.Context, garage *models.Garage) error
	Update(ctx context.Context, id string, garage *models.Garage) error
	Delete(ctx context.Context, id string) error
}
