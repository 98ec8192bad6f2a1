package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"time"
)

// optional decodes one JSON value into a fresh T. A null, missing or mistyped value yields nil.
func optional[T any](raw json.RawMessage) *T {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

// optionalInt accepts any whole JSON number, including 10.0 and 1e1.
// Fractional or out of range numbers yield nil.
func optionalInt(raw json.RawMessage) *int {
	f := optional[float64](raw)
	if f == nil || *f != math.Trunc(*f) || *f < math.MinInt || *f >= math.MaxInt {
		return nil
	}
	v := int(*f)
	return &v
}

// objectFields splits a JSON object into its members. Anything but an object has no members.
func objectFields(data []byte) map[string]json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	return fields
}

// ProductRequest is the body of POST /api/products.
// Pointer fields distinguish a missing or mistyped value from a zero value.
type ProductRequest struct {
	Name     *string  `json:"name"`
	SKU      *string  `json:"sku"`
	Price    *float64 `json:"price"`
	Stock    *int     `json:"stock"`
	Category *string  `json:"category"`
}

func (p *ProductRequest) UnmarshalJSON(data []byte) error {
	f := objectFields(data)
	p.Name = optional[string](f["name"])
	p.SKU = optional[string](f["sku"])
	p.Price = optional[float64](f["price"])
	p.Stock = optionalInt(f["stock"])
	p.Category = optional[string](f["category"])
	return nil
}

type ProductResponse struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

type SellRequest struct {
	ProductID *int `json:"productId"`
	Quantity  *int `json:"quantity"`
}

func (s *SellRequest) UnmarshalJSON(data []byte) error {
	f := objectFields(data)
	s.ProductID = optionalInt(f["productId"])
	s.Quantity = optionalInt(f["quantity"])
	return nil
}

type SellResponse struct {
	Product        ProductResponse `json:"product"`
	SoldQuantity   int             `json:"soldQuantity"`
	RemainingStock int             `json:"remainingStock"`
}

// BulkPriceUpdateRequest keeps updates raw so a non-array value can be rejected explicitly.
type BulkPriceUpdateRequest struct {
	Updates json.RawMessage `json:"updates" swaggertype:"array,object"`
}

type PriceUpdateItem struct {
	ProductID *int     `json:"productId"`
	NewPrice  *float64 `json:"newPrice"`
}

func (p *PriceUpdateItem) UnmarshalJSON(data []byte) error {
	f := objectFields(data)
	p.ProductID = optionalInt(f["productId"])
	p.NewPrice = optional[float64](f["newPrice"])
	return nil
}

type PriceUpdateResultResponse struct {
	ProductID *int     `json:"productId"`
	Success   bool     `json:"success"`
	OldPrice  *float64 `json:"oldPrice,omitempty"`
	NewPrice  *float64 `json:"newPrice,omitempty"`
	Error     string   `json:"error,omitempty"`
}

type BulkSummaryResponse struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

type BulkPriceUpdateResponse struct {
	Summary BulkSummaryResponse         `json:"summary"`
	Results []PriceUpdateResultResponse `json:"results"`
}

type MovementResponse struct {
	ID        int       `json:"id"`
	ProductID int       `json:"productId"`
	Delta     int       `json:"delta"`
	CreatedAt time.Time `json:"createdAt"`
}

type ImportProductsResult struct {
	ImportedProductsCount int      `json:"imported"`
	Errors                []string `json:"errors"`
}

type ErrorResponse struct {
	Errors []string `json:"errors"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
