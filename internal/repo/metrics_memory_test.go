package repo_test

import (
	"testing"

	"github.com/rogerio-castellano/inventory-service/internal/models"
	"github.com/rogerio-castellano/inventory-service/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryMetricsRepository_GetDashboardMetrics(t *testing.T) {
	products := repo.NewInMemoryProductRepository()
	movements := repo.NewInMemoryMovementRepository()
	metrics := repo.NewInMemoryMetricsRepository(products, movements)

	seed(t, products,
		models.Product{Name: "Rice", SKU: "RIC001", Price: 50, Stock: 10, Category: "อาหาร"},
		models.Product{Name: "Tea", SKU: "TEA001", Price: 20, Stock: 2, Category: "เครื่องดื่ม"},
	)
	_, err := movements.Log(1, -3)
	require.NoError(t, err)
	_, err = movements.Log(2, -1)
	require.NoError(t, err)
	_, err = movements.Log(1, -2)
	require.NoError(t, err)

	m, err := metrics.GetDashboardMetrics(5)
	require.NoError(t, err)

	assert.Equal(t, 2, m.TotalProducts)
	assert.Equal(t, 12, m.TotalStock)
	assert.Equal(t, 1, m.LowStockCount)
	assert.Equal(t, 6, m.TotalSold)
	assert.Equal(t, repo.TopSeller{Name: "Rice", Sold: 5}, m.TopSeller)
}

func TestInMemoryMetricsRepository_Empty(t *testing.T) {
	metrics := repo.NewInMemoryMetricsRepository(repo.NewInMemoryProductRepository(), repo.NewInMemoryMovementRepository())

	m, err := metrics.GetDashboardMetrics(5)
	require.NoError(t, err)
	assert.Equal(t, repo.Metrics{}, m)
}
