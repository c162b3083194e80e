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

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, id string, product *models.Product) error {
	args := m.Called(ctx, id, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishRecordEvent(event, entity, id string) error {
	args := m.Called(event, entity, id)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProducts := []models.Product{
		{ID: primitive.NewObjectID(), Name: "Steel Beams", Price: 1200.0, Quantity: 45},
		{ID: primitive.NewObjectID(), Name: "Industrial Paint", Price: 85.0, Quantity: 120},
	}

	mockRepo.On("GetAll", mock.Anything).Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	productID := primitive.NewObjectID()
	expectedProduct := &models.Product{ID: productID, Name: "Steel Beams", Price: 1200.0, Quantity: 45}

	// Test successful retrieval
	mockRepo.On("GetByID", mock.Anything, productID.Hex()).Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(context.Background(), productID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Test product not found
	mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, fmt.Errorf("product with ID missing: %w", repositories.ErrNotFound)).Once()
	product, err = service.GetProductByID(context.Background(), "missing")
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	newProduct := &models.Product{Name: "Power Drills", Price: 150.0, Quantity: 8}

	// Test successful creation
	mockRepo.On("Create", mock.Anything, newProduct).Return(nil).Once()
	err := service.CreateProduct(context.Background(), newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test creation failure (e.g., database error)
	mockRepo.On("Create", mock.Anything, newProduct).Return(fmt.Errorf("database error")).Once()
	err = service.CreateProduct(context.Background(), newProduct)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_PublishesEvent(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockEvents := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockEvents)

	productID := primitive.NewObjectID()
	newProduct := &models.Product{ID: productID, Name: "Power Drills", Price: 150.0, Quantity: 8}

	mockRepo.On("Create", mock.Anything, newProduct).Return(nil).Once()
	mockEvents.On("PublishRecordEvent", "product.created", "product", productID.Hex()).Return(nil).Once()

	err := service.CreateProduct(context.Background(), newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestProductService_CreateProduct_PublishFailureIsNotFatal(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockEvents := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockEvents)

	newProduct := &models.Product{ID: primitive.NewObjectID(), Name: "Power Drills", Price: 150.0, Quantity: 8}

	mockRepo.On("Create", mock.Anything, newProduct).Return(nil).Once()
	mockEvents.On("PublishRecordEvent", mock.Anything, mock.Anything, mock.Anything).Return(fmt.Errorf("broker down")).Once()

	// A failed publish never fails the create.
	err := service.CreateProduct(context.Background(), newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	productID := primitive.NewObjectID()
	updatedProduct := &models.Product{Name: "Steel Beams (Galvanized)", Price: 1250.0, Quantity: 40}

	// Test successful update
	mockRepo.On("Update", mock.Anything, productID.Hex(), updatedProduct).Return(nil).Once()
	err := service.UpdateProduct(context.Background(), productID.Hex(), updatedProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test update failure (e.g., product not found in repo)
	mockRepo.On("Update", mock.Anything, "missing", updatedProduct).Return(fmt.Errorf("product with ID missing: %w", repositories.ErrNotFound)).Once()
	err = service.UpdateProduct(context.Background(), "missing", updatedProduct)
	assert.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	productID := primitive.NewObjectID()

	// Test successful deletion
	mockRepo.On("Delete", mock.Anything, productID.Hex()).Return(nil).Once()
	err := service.DeleteProduct(context.Background(), productID.Hex())
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test deletion failure (e.g., product not found)
	mockRepo.On("Delete", mock.Anything, "missing").Return(fmt.Errorf("product with ID missing: %w", repositories.ErrNotFound)).Once()
	err = service.DeleteProduct(context.Background(), "missing")
	assert.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
