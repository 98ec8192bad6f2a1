package repo

import "fmt"

type InMemoryMetricsRepository struct {
	productRepo  ProductRepository
	movementRepo MovementRepository
}

func NewInMemoryMetricsRepository(productRepo ProductRepository, movementRepo MovementRepository) *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{
		productRepo:  productRepo,
		movementRepo: movementRepo,
	}
}

// GetDashboardMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardMetrics(lowStockThreshold int) (Metrics, error) {
	m := Metrics{}

	products, err := i.productRepo.GetAll()
	if err != nil {
		return m, fmt.Errorf("failed to list products: %w", err)
	}
	m.TotalProducts = len(products)

	for _, product := range products {
		m.TotalStock += product.Stock
		if product.Stock < lowStockThreshold {
			m.LowStockCount++
		}

		movements, err := i.movementRepo.GetByProductID(product.ID)
		if err != nil {
			return m, fmt.Errorf("failed to list movements for product %d: %w", product.ID, err)
		}

		sold := 0
		for _, mv := range movements {
			if mv.Delta < 0 {
				sold -= mv.Delta
			}
		}
		m.TotalSold += sold

		// Ties keep the earliest product.
		if sold > m.TopSeller.Sold {
			m.TopSeller = TopSeller{Name: product.Name, Sold: sold}
		}
	}

	return m, nil
}
