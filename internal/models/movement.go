package models

import "time"

// Movement is a single stock change. Sales are recorded with a negative delta.
type Movement struct {
	ID        int       `json:"id"`
	ProductID int       `json:"productId"`
	Delta     int       `json:"delta"`
	CreatedAt time.Time `json:"createdAt"`
}
