package models

import "time"

const (
	ActivityProductCreated = "product.created"
	ActivityProductSold    = "product.sold"
	ActivityPriceUpdated   = "price.updated"
)

// ActivityEvent describes one mutation of the inventory.
type ActivityEvent struct {
	Type       string    `json:"type"`
	ProductID  int       `json:"productId"`
	SKU        string    `json:"sku"`
	Quantity   int       `json:"quantity,omitempty"`
	Stock      int       `json:"stock"`
	OldPrice   float64   `json:"oldPrice,omitempty"`
	Price      float64   `json:"price"`
	OccurredAt time.Time `json:"occurredAt"`
}
