package handlers

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"warehouse/internal/advisory"
	"warehouse/internal/services"
	"warehouse/internal/stats"
)

// DashboardHandler serves the aggregate overview: derived statistics over
// both collections plus the advisory text panel.
type DashboardHandler struct {
	products *services.ProductService
	garages  *services.GarageService
	advisor  advisory.Advisor
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(products *services.ProductService, garages *services.GarageService, advisor advisory.Advisor) *DashboardHandler {
	return &DashboardHandler{
		products: products,
		garages:  garages,
		advisor:  advisor,
	}
}

// RegisterRoutes registers the dashboard route with the Fiber app.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/dashboard", h.HandleGetDashboard)
}

// HandleGetDashboard loads both collections, computes the aggregates and
// asks the advisory collaborator for an operational summary. An advisory
// failure degrades to its fallback text and never fails the request.
func (h *DashboardHandler) HandleGetDashboard(c *fiber.Ctx) error {
	products, err := h.products.GetAllProducts(c.Context())
	if err != nil {
		log.WithError(err).Error("failed to load products for dashboard")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard",
		})
	}
	garages, err := h.garages.GetAllGarages(c.Context())
	if err != nil {
		log.WithError(err).Error("failed to load garages for dashboard")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard",
		})
	}

	return c.JSON(fiber.Map{
		"stats":   stats.Summarize(products, garages),
		"insight": h.advisor.WarehouseInsights(c.Context(), products, garages),
	})
}
