package handlers

import (
	"context"

	"github.com/rogerio-castellano/inventory-service/internal/inventory"
	"github.com/rogerio-castellano/inventory-service/internal/models"
	"go.uber.org/zap"
)

// ActivityReader lists recently published inventory activity.
type ActivityReader interface {
	Recent(ctx context.Context, n int64) ([]models.ActivityEvent, error)
}

type Handler struct {
	svc      *inventory.Service
	activity ActivityReader
	logger   *zap.Logger
}

// NewHandler wires the HTTP layer to svc. activity may be nil when no activity log is configured.
func NewHandler(svc *inventory.Service, activity ActivityReader, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		svc:      svc,
		activity: activity,
		logger:   logger,
	}
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Price:     p.Price,
		Stock:     p.Stock,
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
	}
}

func toProductResponses(products []models.Product) []ProductResponse {
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}
	return response
}
