package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"warehouse/internal/models"
	"warehouse/internal/repositories"
	"warehouse/internal/services"
)

// MockGarageRepository is a mock implementation of repositories.GarageRepository
type MockGarageRepository struct {
	mock.Mock
}

func (m *MockGarageRepository) GetAll(ctx context.Context) ([]models.Garage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Garage), args.Error(1)
}

func (m *MockGarageRepository) GetByID(ctx context.Context, id string) (*models.Garage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Garage), args.Error(1)
}

func (m *MockGarageRepository) Create(ctx context.Context, garage *models.Garage) error {
	args := m.Called(ctx, garage)
	return args.Error(0)
}

func (m *MockGarageRepository) Update(ctx context.Context, id string, garage *models.Garage) error {
	args := m.Called(ctx, id, garage)
	return args.Error(0)
}

func (m *MockGarageRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestGarageService_GetAllGarages(t *testing.T) {
	mockRepo := new(MockGarageRepository)
	service := services.NewGarageService(mockRepo, nil)

	expectedGarages := []models.Garage{
		{ID: primitive.NewObjectID(), Num: 101, Name: "North Wing", Size: models.GarageSize{Capacity: 500}},
		{ID: primitive.NewObjectID(), Num: 102, Name: "South Wing", Size: models.GarageSize{Capacity: 350}},
	}

	mockRepo.On("GetAll", mock.Anything).Return(expectedGarages, nil).Once()

	garages, err := service.GetAllGarages(context.Background())

	assert.NoError(t, err)
	assert.Len(t, garages, 2)
	assert.Equal(t, expectedGarages, garages)
	mockRepo.AssertExpectations(t)
}

func TestGarageService_GetGarageByID(t *testing.T) {
	mockRepo := new(MockGarageRepository)
	service := services.NewGarageService(mockRepo, nil)

	garageID := primitive.NewObjectID()
	expectedGarage := &models.Garage{ID: garageID, Num: 101, Name: "North Wing", Size: models.GarageSize{Capacity: 500}}

	mockRepo.On("GetByID", mock.Anything, garageID.Hex()).Return(expectedGarage, nil).Once()
	garage, err := service.GetGarageByID(context.Background(), garageID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, expectedGarage, garage)
	mockRepo.AssertExpectations(t)

	mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, fmt.Errorf("garage with ID missing: %w", repositories.ErrNotFound)).Once()
	garage, err = service.GetGarageByID(context.Background(), "missing")
	assert.Error(t, err)
	assert.Nil(t, garage)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestGarageService_CreateGarage(t *testing.T) {
	mockRepo := new(MockGarageRepository)
	mockEvents := new(MockEventPublisher)
	service := services.NewGarageService(mockRepo, mockEvents)

	garageID := primitive.NewObjectID()
	newGarage := &models.Garage{ID: garageID, Num: 103, Name: "East Annex", Size: models.GarageSize{Capacity: 200}}

	mockRepo.On("Create", mock.Anything, newGarage).Return(nil).Once()
	mockEvents.On("PublishRecordEvent", "garage.created", "garage", garageID.Hex()).Return(nil).Once()

	err := service.CreateGarage(context.Background(), newGarage)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestGarageService_UpdateGarage(t *testing.T) {
	mockRepo := new(MockGarageRepository)
	service := services.NewGarageService(mockRepo, nil)

	garageID := primitive.NewObjectID()
	updatedGarage := &models.Garage{Num: 101, Name: "North Wing (Expanded)", Size: models.GarageSize{Capacity: 650}}

	mockRepo.On("Update", mock.Anything, garageID.Hex(), updatedGarage).Return(nil).Once()
	err := service.UpdateGarage(context.Background(), garageID.Hex(), updatedGarage)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	mockRepo.On("Update", mock.Anything, "missing", updatedGarage).Return(fmt.Errorf("garage with ID missing: %w", repositories.ErrNotFound)).Once()
	err = service.UpdateGarage(context.Background(), "missing", updatedGarage)
	assert.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestGarageService_DeleteGarage(t *testing.T) {
	mockRepo := new(MockGarageRepository)
	service := services.NewGarageService(mockRepo, nil)

	garageID := primitive.NewObjectID()

	mockRepo.On("Delete", mock.Anything, garageID.Hex()).Return(nil).Once()
	err := service.DeleteGarage(context.Background(), garageID.Hex())
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	mockRepo.On("Delete", mock.Anything, "missing").Return(fmt.Errorf("garage with ID missing: %w", repositories.ErrNotFound)).Once()
	err = service.DeleteGarage(context.Background(), "missing")
	assert.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
