package repository

import "github.com/jhoicas/brewme-api/internal/domain/entity"

// StockMovementRepository define el puerto del diario de movimientos de stock.
type StockMovementRepository interface {
	Create(mov *entity.StockMovement) error
	ListByIngredient(ingredientID int64, limit, offset int) ([]*entity.StockMovement, error)
}
