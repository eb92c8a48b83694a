package repository

import "github.com/jhoicas/brewme-api/internal/domain/entity"

// RecipeRepository define el puerto de persistencia para recetas y su
// composición. Create y AddItem se usan juntos dentro de una transacción.
type RecipeRepository interface {
	// Create inserta la receta y asigna recipe.ID.
	Create(recipe *entity.Recipe) error
	GetByID(id int64) (*entity.Recipe, error)
	// GetComposition devuelve las filas de composición ordenadas por
	// ingrediente, para un escalado determinista.
	GetComposition(recipeID int64) ([]entity.RecipeItem, error)
	AddItem(item *entity.RecipeItem) error
	List() ([]*entity.Recipe, error)
	// Delete elimina la receta; la composición cae en cascada.
	Delete(id int64) error
}
