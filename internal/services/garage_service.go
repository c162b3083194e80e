package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"warehouse/internal/models"
	"warehouse/internal/repositories"
)

// GarageService handles business logic related to garages.
type GarageService struct {
	repo   repositories.GarageRepository
	events EventPublisher
}

// NewGarageService creates a new GarageService. The event publisher may be
// nil, in which case no events are published.
func NewGarageService(repo repositories.GarageRepository, events EventPublisher) *GarageService {
	return &GarageService{
		repo:   repo,
		events: events,
	}
}

// GetAllGarages retrieves all garages.
func (s *GarageService) GetAllGarages(ctx context.Context) ([]models.Garage, error) {
	return s.repo.GetAll(ctx)
}

// GetGarageByID retrieves a single garage by its ID.
func (s *GarageService) GetGarageByID(ctx context.Context, id string) (*models.Garage, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateGarage creates a new garage. The store assigns the identifier.
func (s *GarageService) CreateGarage(ctx context.Context, garage *models.Garage) error {
	if err := s.repo.Create(ctx, garage); err != nil {
		return err
	}
	s.publish("garage.created", garage.ID.Hex())
	return nil
}

// UpdateGarage replaces all mutable fields of the garage matching id.
func (s *GarageService) UpdateGarage(ctx context.Context, id string, garage *models.Garage) error {
	if err := s.repo.Update(ctx, id, garage); err != nil {
		return err
	}
	s.publish("garage.updated", id)
	return nil
}

// DeleteGarage deletes a garage by its ID.
func (s *GarageService) DeleteGarage(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish("garage.deleted", id)
	return nil
}

func (s *GarageService) publish(event, id string) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishRecordEvent(event, "garage", id); err != nil {
		log.WithError(err).Warnf("failed to publish %s event for garage %s", event, id)
	}
}
