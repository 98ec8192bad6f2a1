package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rogerio-castellano/inventory-service/internal/models"
	"github.com/rogerio-castellano/inventory-service/internal/repo"
	"go.uber.org/zap"
)

const minSKULength = 3

// ProductInput is the client payload for a new product.
// Nil fields are missing or had the wrong JSON type.
type ProductInput struct {
	Name     *string
	SKU      *string
	Price    *float64
	Stock    *int
	Category *string
}

// Create validates in and stores a new product. Every failed rule is reported
// as ValidationErrors and nothing is stored.
func (s *Service) Create(ctx context.Context, in ProductInput) (models.Product, error) {
	errs, err := s.validateProduct(in)
	if err != nil {
		return models.Product{}, err
	}
	if len(errs) > 0 {
		return models.Product{}, errs
	}

	created, err := s.products.Create(models.Product{
		Name:      strings.TrimSpace(*in.Name),
		SKU:       strings.TrimSpace(*in.SKU),
		Price:     *in.Price,
		Stock:     *in.Stock,
		Category:  *in.Category,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		// Lost a race with a concurrent create of the same SKU.
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			return models.Product{}, ValidationErrors{MsgSKUDuplicated}
		}
		return models.Product{}, fmt.Errorf("could not create product: %w", err)
	}

	s.logger.Info("product created",
		zap.Int("product_id", created.ID),
		zap.String("sku", created.SKU),
		zap.String("category", created.Category),
	)
	s.publish(ctx, models.ActivityEvent{
		Type:       models.ActivityProductCreated,
		ProductID:  created.ID,
		SKU:        created.SKU,
		Stock:      created.Stock,
		Price:      created.Price,
		OccurredAt: created.CreatedAt,
	})
	return created, nil
}

func (s *Service) validateProduct(in ProductInput) (ValidationErrors, error) {
	errs := ValidationErrors{}

	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		errs = append(errs, MsgNameRequired)
	}

	sku := ""
	if in.SKU != nil {
		sku = strings.TrimSpace(*in.SKU)
	}
	switch {
	case sku == "":
		errs = append(errs, MsgSKURequired)
	case utf8.RuneCountInString(sku) < minSKULength:
		errs = append(errs, MsgSKUTooShort)
	default:
		_, err := s.products.GetBySKU(sku)
		switch {
		case err == nil:
			errs = append(errs, MsgSKUDuplicated)
		case !errors.Is(err, repo.ErrProductNotFound):
			return nil, fmt.Errorf("could not check sku: %w", err)
		}
	}

	if in.Price == nil || *in.Price <= 0 {
		errs = append(errs, MsgPriceInvalid)
	}
	if in.Stock == nil || *in.Stock < 0 {
		errs = append(errs, MsgStockInvalid)
	}
	if in.Category == nil || !models.IsValidCategory(*in.Category) {
		errs = append(errs, MsgCategoryInvalid)
	}

	return errs, nil
}

// List returns every product, or only those whose category equals *category.
func (s *Service) List(ctx context.Context, category *string) ([]models.Product, error) {
	products, err := s.products.Filter(repo.ProductFilter{Category: category})
	if err != nil {
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	return products, nil
}

// Search matches keyword case-insensitively against name and SKU.
func (s *Service) Search(ctx context.Context, keyword string) ([]models.Product, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ValidationErrors{MsgKeywordRequired}
	}

	products, err := s.products.Filter(repo.ProductFilter{Keyword: keyword})
	if err != nil {
		return nil, fmt.Errorf("could not search products: %w", err)
	}
	return products, nil
}

// Movements returns the stock history of one product.
func (s *Service) Movements(ctx context.Context, productID int) ([]models.Movement, error) {
	if _, err := s.products.GetByID(productID); err != nil {
		return nil, fmt.Errorf("could not fetch product %d: %w", productID, err)
	}

	movements, err := s.movements.GetByProductID(productID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch movements: %w", err)
	}
	return movements, nil
}

// Dashboard aggregates stock and sales figures.
func (s *Service) Dashboard(ctx context.Context) (repo.Metrics, error) {
	m, err := s.metrics.GetDashboardMetrics(s.lowStockThreshold)
	if err != nil {
		return repo.Metrics{}, fmt.Errorf("could not compute metrics: %w", err)
	}
	return m, nil
}
