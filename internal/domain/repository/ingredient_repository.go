package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/brewme-api/internal/domain/entity"
)

// IngredientRepository define el puerto de persistencia para ingredientes.
// Los métodos de lectura devuelven (nil, nil) cuando la fila no existe.
type IngredientRepository interface {
	Create(ing *entity.Ingredient) error
	GetByID(id int64) (*entity.Ingredient, error)
	// List devuelve todos los ingredientes ordenados por nombre.
	List() ([]*entity.Ingredient, error)
	UpdateCost(id int64, cost decimal.Decimal) error
	// AdjustStock aplica un delta aditivo y devuelve la cantidad resultante.
	// El resultado queda acotado en 0: nunca deja stock negativo.
	AdjustStock(id int64, delta decimal.Decimal) (decimal.Decimal, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar dentro de una tx.
	GetForUpdate(id int64) (*entity.Ingredient, error)
	// Delete falla con ErrIngredientInUse si alguna receta lo referencia.
	Delete(id int64) error
}
