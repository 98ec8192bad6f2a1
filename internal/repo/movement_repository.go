package repo

import (
	"github.com/rogerio-castellano/inventory-service/internal/models"
)

type MovementRepository interface {
	Log(productID, delta int) (models.Movement, error)
	GetByProductID(productID int) ([]models.Movement, error)
}
