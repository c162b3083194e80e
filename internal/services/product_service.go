package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"warehouse/internal/models"
	"warehouse/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher
}

// NewProductService creates a new ProductService. The event publisher may be
// nil, in which case no events are published.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct creates a new product. The store assigns the identifier.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := s.repo.Create(ctx, product); err != nil {
		return err
	}
	s.publish("product.created", product.ID.Hex())
	return nil
}

// UpdateProduct replaces all mutable fields of the product matching id.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, product *models.Product) error {
	if err := s.repo.Update(ctx, id, product); err != nil {
		return err
	}
	s.publish("product.updated", id)
	return nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish("product.deleted", id)
	return nil
}

func (s *ProductService) publish(event, id string) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishRecordEvent(event, "product", id); err != nil {
		log.WithError(err).Warnf("failed to publish %s event for product %s", event, id)
	}
}
