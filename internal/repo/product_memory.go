package repo

import (
	"sync"

	"github.com/rogerio-castellano/inventory-service/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
// Products are kept in insertion order and are never removed.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	byID     map[int]int
	bySKU    map[string]int
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		byID:     map[int]int{},
		bySKU:    map[string]int{},
		nextID:   1,
	}
}

// Create assigns the next id and appends the product.
// The SKU check happens under the same lock as the insert.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.bySKU[product.SKU]; taken {
		return models.Product{}, ErrDuplicatedValueUnique
	}

	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)
	r.byID[product.ID] = len(r.products) - 1
	r.bySKU[product.SKU] = len(r.products) - 1
	return product, nil
}

// GetAll retrieves all products from the repository.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return r.products[i], nil
}

// GetBySKU retrieves a product by its exact SKU.
func (r *InMemoryProductRepository) GetBySKU(sku string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.bySKU[sku]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return r.products[i], nil
}

// Filter returns the products matching pf, in insertion order.
func (r *InMemoryProductRepository) Filter(pf ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.Product{}
	for _, p := range r.products {
		if matchesFilter(p, pf) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// DecrementStock removes quantity units from the product's stock.
// On ErrInsufficientStock the returned product carries the untouched stock.
func (r *InMemoryProductRepository) DecrementStock(id int, quantity int) (models.Product, error) {
	if quantity <= 0 {
		return models.Product{}, ErrInvalidQuantityChange
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	if r.products[i].Stock < quantity {
		return r.products[i], ErrInsufficientStock
	}

	r.products[i].Stock -= quantity
	return r.products[i], nil
}

// UpdatePrice sets a new price and returns the updated product with the previous price.
func (r *InMemoryProductRepository) UpdatePrice(id int, price float64) (models.Product, float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.byID[id]
	if !ok {
		return models.Product{}, 0, ErrProductNotFound
	}
	if price <= 0 {
		return r.products[i], r.products[i].Price, ErrInvalidPrice
	}

	old := r.products[i].Price
	r.products[i].Price = price
	return r.products[i], old, nil
}
