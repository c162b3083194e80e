package client

// Product is the client-side view of a product record. The ID is the
// store-assigned identifier, opaque to the client; empty means "not yet
// created".
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// lowStockThreshold mirrors the server-side low stock rule.
const lowStockThreshold = 10

// IsLowStock reports whether the product's quantity is below the threshold.
func (p Product) IsLowStock() bool {
	return p.Quantity < lowStockThreshold
}

// InventoryValue returns the total value of the stock on hand.
func (p Product) InventoryValue() float64 {
	return p.Price * float64(p.Quantity)
}

// GarageSize holds the capacity attributes of a garage.
type GarageSize struct {
	Capacity float64 `json:"capacity"`
}

// Garage is the client-side view of a garage record.
type Garage struct {
	ID   string     `json:"id"`
	Num  int        `json:"num"`
	Name string     `json:"name"`
	Size GarageSize `json:"size"`
}

// Summary holds the dashboard aggregates derived from the loaded collections.
type Summary struct {
	TotalProducts int
	TotalStock    int
	TotalValue    float64
	TotalGarages  int
}
