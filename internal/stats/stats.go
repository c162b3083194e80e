// Package stats computes derived aggregate statistics over the currently
// loaded collections. Nothing here is persisted; callers recompute whenever
// the underlying collections change.
package stats

import "warehouse/internal/models"

// Summary holds the dashboard aggregates.
type Summary struct {
	TotalProducts int     `json:"total_products"`
	TotalStock    int     `json:"total_stock"`
	TotalValue    float64 `json:"total_value"`
	TotalGarages  int     `json:"total_garages"`
	LowStockCount int     `json:"low_stock_count"`
}

// Summarize computes the aggregates for the given collections.
func Summarize(products []models.Product, garages []models.Garage) Summary {
	s := Summary{
		TotalProducts: len(products),
		TotalGarages:  len(garages),
	}
	for _, p := range products {
		s.TotalStock += p.Quantity
		s.TotalValue += p.InventoryValue()
		if p.IsLowStock() {
			s.LowStockCount++
		}
	}
	return s
}
