package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/brewme-api/internal/domain"
	"github.com/jhoicas/brewme-api/internal/domain/entity"
	"github.com/jhoicas/brewme-api/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo implementación sobre PostgreSQL (usable con pool o tx).
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

// Create inserta un ingrediente y asigna su ID.
func (r *IngredientRepo) Create(ing *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (name, category, unit_cost, detail, unit, on_hand_qty, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		ing.Name, ing.Category, ing.UnitCost, ing.Detail, ing.Unit,
		ing.OnHandQty, ing.CreatedAt, ing.UpdatedAt,
	).Scan(&ing.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("create ingredient: %w", err)
	}
	return nil
}

// GetByID obtiene un ingrediente por ID. Devuelve (nil, nil) si no existe.
func (r *IngredientRepo) GetByID(id int64) (*entity.Ingredient, error) {
	query := `
		SELECT id, name, category, unit_cost, detail, unit, on_hand_qty, created_at, updated_at
		FROM ingredients WHERE id = $1`
	var i entity.Ingredient
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.Name, &i.Category, &i.UnitCost, &i.Detail, &i.Unit,
		&i.OnHandQty, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return &i, nil
}

// List devuelve todos los ingredientes ordenados por nombre.
func (r *IngredientRepo) List() ([]*entity.Ingredient, error) {
	query := `
		SELECT id, name, category, unit_cost, detail, unit, on_hand_qty, created_at, updated_at
		FROM ingredients ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ingredient
	for rows.Next() {
		var i entity.Ingredient
		if err := rows.Scan(&i.ID, &i.Name, &i.Category, &i.UnitCost, &i.Detail,
			&i.Unit, &i.OnHandQty, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// UpdateCost actualiza el costo unitario vigente.
func (r *IngredientRepo) UpdateCost(id int64, cost decimal.Decimal) error {
	query := `UPDATE ingredients SET unit_cost = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, cost)
	if err != nil {
		return fmt.Errorf("update cost: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustStock aplica un delta aditivo y devuelve la cantidad resultante.
// GREATEST(0, ...) garantiza que el stock nunca queda negativo.
func (r *IngredientRepo) AdjustStock(id int64, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE ingredients
		SET on_hand_qty = GREATEST(0, on_hand_qty + $2), updated_at = now()
		WHERE id = $1
		RETURNING on_hand_qty`
	var newQty decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, id, delta).Scan(&newQty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("adjust stock: %w", err)
	}
	return newQty, nil
}

// GetForUpdate obtiene el ingrediente y bloquea la fila (SELECT FOR UPDATE).
func (r *IngredientRepo) GetForUpdate(id int64) (*entity.Ingredient, error) {
	query := `
		SELECT id, name, category, unit_cost, detail, unit, on_hand_qty, created_at, updated_at
		FROM ingredients WHERE id = $1
		FOR UPDATE`
	var i entity.Ingredient
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.Name, &i.Category, &i.UnitCost, &i.Detail, &i.Unit,
		&i.OnHandQty, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient for update: %w", err)
	}
	return &i, nil
}

// Delete elimina un ingrediente. Las composiciones lo referencian con
// ON DELETE RESTRICT, así que la FK se traduce a ErrIngredientInUse.
func (r *IngredientRepo) Delete(id int64) error {
	query := `DELETE FROM ingredients WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrIngredientInUse
		}
		return fmt.Errorf("delete ingredient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
