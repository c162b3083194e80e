package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"warehouse/internal/models"
	"warehouse/internal/repositories"
	"warehouse/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// ProductRequest is the request body for creating or updating a product.
// Pointer fields distinguish "absent" from legitimate zero values, so a
// price or quantity of 0 still satisfies required.
type ProductRequest struct {
	Name     *string  `json:"name" validate:"required,min=1"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
	Quantity *int     `json:"quantity" validate:"required,gte=0"`
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Post("/create", h.HandleCreateProduct)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves the full product collection.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.Context())
	if err != nil {
		log.WithError(err).Error("failed to get all products")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch products",
		})
	}
	return c.JSON(fiber.Map{
		"products": products,
	})
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(c.Context(), productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		log.WithError(err).Errorf("failed to get product %s", productID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch product",
		})
	}
	return c.JSON(fiber.Map{
		"product": product,
	})
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	req, err := h.bindProduct(c)
	if req == nil {
		return err
	}

	product := &models.Product{
		Name:     *req.Name,
		Price:    *req.Price,
		Quantity: *req.Quantity,
	}
	if err := h.service.CreateProduct(c.Context(), product); err != nil {
		log.WithError(err).Error("failed to create product")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create product",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product created successfully",
		"product": product,
	})
}

// HandleUpdateProduct replaces all mutable fields of an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	req, err := h.bindProduct(c)
	if req == nil {
		return err
	}

	product := &models.Product{
		Name:     *req.Name,
		Price:    *req.Price,
		Quantity: *req.Quantity,
	}
	if err := h.service.UpdateProduct(c.Context(), productID, product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		log.WithError(err).Errorf("failed to update product %s", productID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update product",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product updated successfully",
		"product": product,
	})
}

// HandleDeleteProduct removes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.service.DeleteProduct(c.Context(), productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		log.WithError(err).Errorf("failed to delete product %s", productID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete product",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// bindProduct parses and validates the request body. On failure it writes the
// error response and returns a nil request so callers can bail out.
func (h *ProductHandler) bindProduct(c *fiber.Ctx) (*ProductRequest, error) {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.WithError(err).Warn("failed to parse product request body")
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errorMessages := make(map[string]string)
			for _, e := range validationErrors {
				errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
			}
			return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Validation failed",
				"fields": errorMessages,
			})
		}
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Validation failed",
		})
	}
	return &req, nil
}
