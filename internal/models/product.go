package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// LowStockThreshold is the quantity below which a product counts as low stock.
const LowStockThreshold = 10

// Product represents a stocked item in the warehouse.
type Product struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Price    float64            `json:"price" bson:"price"`
	Quantity int                `json:"quantity" bson:"quantity"`
}

// IsLowStock reports whether the quantity has fallen below LowStockThreshold.
func (p Product) IsLowStock() bool {
	return p.Quantity < LowStockThreshold
}

// InventoryValue returns the total value of the stock on hand.
func (p Product) InventoryValue() float64 {
	return p.Price * float64(p.Quantity)
}
