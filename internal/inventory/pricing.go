package inventory

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/inventory-service/internal/models"
	"github.com/rogerio-castellano/inventory-service/internal/repo"
	"go.uber.org/zap"
)

type PriceUpdateInput struct {
	ProductID *int
	NewPrice  *float64
}

type PriceUpdateResult struct {
	ProductID *int
	Success   bool
	OldPrice  float64
	NewPrice  float64
	Error     string
}

type BulkSummary struct {
	Total   int
	Success int
	Failed  int
}

type BulkResult struct {
	Summary BulkSummary
	Results []PriceUpdateResult
}

// BulkUpdatePrices applies each update independently and in order; a failed item
// never stops the batch. Later items for the same product overwrite earlier ones.
// Only unexpected repository errors are returned.
func (s *Service) BulkUpdatePrices(ctx context.Context, updates []PriceUpdateInput) (BulkResult, error) {
	result := BulkResult{
		Summary: BulkSummary{Total: len(updates)},
		Results: make([]PriceUpdateResult, 0, len(updates)),
	}

	for _, u := range updates {
		item := PriceUpdateResult{ProductID: u.ProductID}

		if u.ProductID == nil {
			item.Error = MsgProductNotFound
			result.Results = append(result.Results, item)
			result.Summary.Failed++
			continue
		}

		price := 0.0
		if u.NewPrice != nil {
			price = *u.NewPrice
		}

		product, old, err := s.products.UpdatePrice(*u.ProductID, price)
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			item.Error = MsgProductNotFound
		case errors.Is(err, repo.ErrInvalidPrice):
			item.Error = MsgInvalidPrice
		case err != nil:
			return BulkResult{}, err
		default:
			item.Success = true
			item.OldPrice = old
			item.NewPrice = product.Price
		}

		result.Results = append(result.Results, item)
		if !item.Success {
			result.Summary.Failed++
			continue
		}
		result.Summary.Success++

		s.publish(ctx, models.ActivityEvent{
			Type:       models.ActivityPriceUpdated,
			ProductID:  product.ID,
			SKU:        product.SKU,
			Stock:      product.Stock,
			OldPrice:   old,
			Price:      product.Price,
			OccurredAt: s.now().UTC(),
		})
	}

	s.logger.Info("bulk price update",
		zap.Int("total", result.Summary.Total),
		zap.Int("success", result.Summary.Success),
		zap.Int("failed", result.Summary.Failed),
	)
	return result, nil
}
