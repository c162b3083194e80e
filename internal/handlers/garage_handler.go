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

// GarageHandler handles HTTP requests for garages.
type GarageHandler struct {
	service  *services.GarageService
	validate *validator.Validate
}

// NewGarageHandler creates a new GarageHandler.
func NewGarageHandler(service *services.GarageService) *GarageHandler {
	return &GarageHandler{
		service:  service,
		validate: validator.New(),
	}
}

// GarageSizeRequest is the nested size attribute of a garage request.
type GarageSizeRequest struct {
	Capacity *float64 `json:"capacity" validate:"required,gte=0"`
}

// GarageRequest is the request body for creating or updating a garage.
type GarageRequest struct {
	Num  *int               `json:"num" validate:"required"`
	Name *string            `json:"name" validate:"required,min=1"`
	Size *GarageSizeRequest `json:"size" validate:"required"`
}

// RegisterRoutes registers the garage routes with the Fiber app.
func (h *GarageHandler) RegisterRoutes(router fiber.Router) {
	garageRoutes := router.Group("/garages")
	garageRoutes.Get("/", h.HandleGetGarages)
	garageRoutes.Post("/", h.HandleCreateGarage)
	garageRoutes.Get("/:id", h.HandleGetGarageByID)
	garageRoutes.Put("/:id", h.HandleUpdateGarage)
	garageRoutes.Delete("/:id", h.HandleDeleteGarage)
}

// HandleGetGarages retrieves the full garage collection.
func (h *GarageHandler) HandleGetGarages(c *fiber.Ctx) error {
	garages, err := h.service.GetAllGarages(c.Context())
	if err != nil {
		log.WithError(err).Error("failed to get all garages")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch garages",
		})
	}
	return c.JSON(fiber.Map{
		"garages": garages,
	})
}

// HandleGetGarageByID retrieves a single garage by its ID.
func (h *GarageHandler) HandleGetGarageByID(c *fiber.Ctx) error {
	garageID := c.Params("id")
	garage, err := h.service.GetGarageByID(c.Context(), garageID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Garage not found",
			})
		}
		log.WithError(err).Errorf("failed to get garage %s", garageID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch garage",
		})
	}
	return c.JSON(fiber.Map{
		"garage": garage,
	})
}

// HandleCreateGarage creates a new garage. The store assigns the identifier;
// any identifier supplied by the client is ignored.
func (h *GarageHandler) HandleCreateGarage(c *fiber.Ctx) error {
	req, err := h.bindGarage(c)
	if req == nil {
		return err
	}

	garage := &models.Garage{
		Num:  *req.Num,
		Name: *req.Name,
		Size: models.GarageSize{Capacity: *req.Size.Capacity},
	}
	if err := h.service.CreateGarage(c.Context(), garage); err != nil {
		log.WithError(err).Error("failed to create garage")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create garage",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Garage created successfully",
		"garage":  garage,
	})
}

// HandleUpdateGarage replaces all mutable fields of an existing garage.
func (h *GarageHandler) HandleUpdateGarage(c *fiber.Ctx) error {
	garageID := c.Params("id")
	req, err := h.bindGarage(c)
	if req == nil {
		return err
	}

	garage := &models.Garage{
		Num:  *req.Num,
		Name: *req.Name,
		Size: models.GarageSize{Capacity: *req.Size.Capacity},
	}
	if err := h.service.UpdateGarage(c.Context(), garageID, garage); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Garage not found",
			})
		}
		log.WithError(err).Errorf("failed to update garage %s", garageID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update garage",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Garage updated successfully",
		"garage":  garage,
	})
}

// HandleDeleteGarage removes a garage by its ID.
func (h *GarageHandler) HandleDeleteGarage(c *fiber.Ctx) error {
	garageID := c.Params("id")
	if err := h.service.DeleteGarage(c.Context(), garageID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Garage not found",
			})
		}
		log.WithError(err).Errorf("failed to delete garage %s", garageID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete garage",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Garage deleted successfully",
	})
}

// bindGarage parses and validates the request body. On failure it writes the
// error response and returns a nil request so callers can bail out.
func (h *GarageHandler) bindGarage(c *fiber.Ctx) (*GarageRequest, error) {
	var req GarageRequest
	if err := c.BodyParser(&req); err != nil {
		log.WithError(err).Warn("failed to parse garage request body")
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
