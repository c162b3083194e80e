package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"warehouse/internal/models"
	"warehouse/internal/stats"
)

func TestSummarize(t *testing.T) {
	products := []models.Product{
		{Name: "Steel Beams", Price: 1200, Quantity: 45},
		{Name: "Industrial Paint", Price: 85, Quantity: 120},
		{Name: "Power Drills", Price: 150, Quantity: 8},
	}
	garages := []models.Garage{
		{Num: 101, Name: "North Wing", Size: models.GarageSize{Capacity: 500}},
	}

	s := stats.Summarize(products, garages)

	assert.Equal(t, 3, s.TotalProducts)
	assert.Equal(t, 173, s.TotalStock)
	assert.Equal(t, 64300.0, s.TotalValue)
	assert.Equal(t, 1, s.TotalGarages)
	assert.Equal(t, 1, s.LowStockCount)
}

func TestSummarize_EmptyCollections(t *testing.T) {
	s := stats.Summarize(nil, nil)
	assert.Equal(t, stats.Summary{}, s)
}

func TestIsLowStock_ThresholdBoundary(t *testing.T) {
	assert.True(t, models.Product{Quantity: 8}.IsLowStock())
	assert.True(t, models.Product{Quantity: 9}.IsLowStock())
	assert.False(t, models.Product{Quantity: 10}.IsLowStock())
	assert.False(t, models.Product{Quantity: 11}.IsLowStock())
}

func TestInventoryValue(t *testing.T) {
	p := models.Product{Price: 1200, Quantity: 45}
	assert.Equal(t, 54000.0, p.InventoryValue())
}
