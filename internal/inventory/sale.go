package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/inventory-service/internal/models"
	"github.com/rogerio-castellano/inventory-service/internal/repo"
	"go.uber.org/zap"
)

type SaleInput struct {
	ProductID *int
	Quantity  *int
}

type SaleResult struct {
	Product        models.Product
	SoldQuantity   int
	RemainingStock int
}

// Sell removes quantity units from a product's stock. Stock never goes negative:
// the availability check and the decrement are one repository operation.
func (s *Service) Sell(ctx context.Context, in SaleInput) (SaleResult, error) {
	if in.Quantity == nil || *in.Quantity <= 0 {
		return SaleResult{}, ValidationErrors{MsgQuantityInvalid}
	}
	if in.ProductID == nil {
		return SaleResult{}, ValidationErrors{MsgProductNotFound}
	}
	id, qty := *in.ProductID, *in.Quantity

	product, err := s.products.DecrementStock(id, qty)
	switch {
	case errors.Is(err, repo.ErrProductNotFound):
		return SaleResult{}, ValidationErrors{MsgProductNotFound}
	case errors.Is(err, repo.ErrInsufficientStock):
		return SaleResult{}, ValidationErrors{fmt.Sprintf(MsgInsufficientStock, product.Stock)}
	case err != nil:
		return SaleResult{}, fmt.Errorf("could not update stock: %w", err)
	}

	movement, err := s.movements.Log(id, -qty)
	if err != nil {
		s.logger.Error("could not log movement", zap.Int("product_id", id), zap.Int("delta", -qty), zap.Error(err))
		movement.CreatedAt = s.now().UTC()
	}

	if product.Stock < s.lowStockThreshold {
		s.logger.Warn("low stock alert",
			zap.Int("product_id", product.ID),
			zap.String("sku", product.SKU),
			zap.Int("stock", product.Stock),
			zap.Int("threshold", s.lowStockThreshold),
		)
	}

	s.publish(ctx, models.ActivityEvent{
		Type:       models.ActivityProductSold,
		ProductID:  product.ID,
		SKU:        product.SKU,
		Quantity:   qty,
		Stock:      product.Stock,
		Price:      product.Price,
		OccurredAt: movement.CreatedAt,
	})

	return SaleResult{
		Product:        product,
		SoldQuantity:   qty,
		RemainingStock: product.Stock,
	}, nil
}
