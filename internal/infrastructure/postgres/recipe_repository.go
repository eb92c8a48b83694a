package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/brewme-api/internal/domain"
	"github.com/jhoicas/brewme-api/internal/domain/entity"
	"github.com/jhoicas/brewme-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación sobre PostgreSQL (usable con pool o tx).
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// Create inserta la receta y asigna recipe.ID.
func (r *RecipeRepo) Create(recipe *entity.Recipe) error {
	query := `
		INSERT INTO recipes (name, base_volume_bbl, base_cost, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		recipe.Name, recipe.BaseVolume, recipe.BaseCost, recipe.CreatedAt,
	).Scan(&recipe.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("create recipe: %w", err)
	}
	return nil
}

// GetByID obtiene una receta por ID. Devuelve (nil, nil) si no existe.
func (r *RecipeRepo) GetByID(id int64) (*entity.Recipe, error) {
	query := `
		SELECT id, name, base_volume_bbl, base_cost, created_at
		FROM recipes WHERE id = $1`
	var rec entity.Recipe
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.Name, &rec.BaseVolume, &rec.BaseCost, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return &rec, nil
}

// GetComposition devuelve las filas de composición ordenadas por ingrediente.
func (r *RecipeRepo) GetComposition(recipeID int64) ([]entity.RecipeItem, error) {
	query := `
		SELECT recipe_id, ingredient_id, quantity
		FROM recipe_items WHERE recipe_id = $1
		ORDER BY ingredient_id`
	rows, err := r.q.Query(context.Background(), query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("get composition: %w", err)
	}
	defer rows.Close()
	var items []entity.RecipeItem
	for rows.Next() {
		var it entity.RecipeItem
		if err := rows.Scan(&it.RecipeID, &it.IngredientID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan recipe item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// AddItem agrega una fila de composición a la receta.
func (r *RecipeRepo) AddItem(item *entity.RecipeItem) error {
	query := `
		INSERT INTO recipe_items (recipe_id, ingredient_id, quantity)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, item.RecipeID, item.IngredientID, item.Quantity)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("add recipe item: %w", err)
	}
	return nil
}

// List devuelve todas las recetas ordenadas por nombre.
func (r *RecipeRepo) List() ([]*entity.Recipe, error) {
	query := `
		SELECT id, name, base_volume_bbl, base_cost, created_at
		FROM recipes ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Recipe
	for rows.Next() {
		var rec entity.Recipe
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.BaseVolume, &rec.BaseCost, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Delete elimina la receta; recipe_items cae en cascada (ON DELETE CASCADE).
func (r *RecipeRepo) Delete(id int64) error {
	query := `DELETE FROM recipes WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
