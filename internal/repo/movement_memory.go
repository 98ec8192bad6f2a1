package repo

import (
	"sync"
	"time"

	"github.com/rogerio-castellano/inventory-service/internal/models"
)

type InMemoryMovementRepository struct {
	mu        sync.RWMutex
	movements []models.Movement
	now       func() time.Time
}

func NewInMemoryMovementRepository() *InMemoryMovementRepository {
	return &InMemoryMovementRepository{
		movements: []models.Movement{},
		now:       time.Now,
	}
}

// AddMovement inserts a movement with an explicit timestamp.
func (r *InMemoryMovementRepository) AddMovement(productID int, delta int, createdAt time.Time) models.Movement {
	r.mu.Lock()
	defer r.mu.Unlock()

	movement := models.Movement{
		ID:        len(r.movements) + 1,
		ProductID: productID,
		Delta:     delta,
		CreatedAt: createdAt,
	}
	r.movements = append(r.movements, movement)
	return movement
}

// Log inserts a new inventory movement
func (r *InMemoryMovementRepository) Log(productID, delta int) (models.Movement, error) {
	return r.AddMovement(productID, delta, r.now().UTC()), nil
}

// GetByProductID returns all movements for a specific product, oldest first
func (r *InMemoryMovementRepository) GetByProductID(productID int) ([]models.Movement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.Movement{}
	for _, m := range r.movements {
		if m.ProductID == productID {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}
