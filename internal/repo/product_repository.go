package repo

import (
	"errors"

	"github.com/rogerio-castellano/inventory-service/internal/models"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	GetBySKU(sku string) (models.Product, error)
	Filter(pf ProductFilter) ([]models.Product, error)
	DecrementStock(id int, quantity int) (models.Product, error)
	UpdatePrice(id int, price float64) (models.Product, float64, error)
}

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicatedValueUnique is returned when a unique column (the SKU) is already taken.
	ErrDuplicatedValueUnique = errors.New("unique constraint violation")
	// ErrInsufficientStock is returned when a decrement would make stock negative.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidQuantityChange is returned for non-positive decrements.
	ErrInvalidQuantityChange = errors.New("invalid quantity change")
	// ErrInvalidPrice is returned when a price update is not strictly positive.
	ErrInvalidPrice = errors.New("invalid price")
)
