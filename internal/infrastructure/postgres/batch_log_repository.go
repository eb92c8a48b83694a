package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/brewme-api/internal/domain/entity"
	"github.com/jhoicas/brewme-api/internal/domain/repository"
)

var _ repository.BatchLogRepository = (*BatchLogRepo)(nil)

// BatchLogRepo implementación sobre PostgreSQL (usable con pool o tx).
type BatchLogRepo struct {
	q Querier
}

// NewBatchLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchLogRepository(q Querier) *BatchLogRepo {
	return &BatchLogRepo{q: q}
}

// Append agrega una entrada al historial y devuelve su ID asignado.
func (r *BatchLogRepo) Append(rec *entity.BatchRecord) (int64, error) {
	query := `
		INSERT INTO batch_log (recipe_name, volume_bbl, final_cost, brewed_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		rec.RecipeName, rec.VolumeBBL, rec.FinalCost, rec.BrewedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("append batch record: %w", err)
	}
	rec.ID = id
	return id, nil
}

// List devuelve el historial completo, lotes más recientes primero.
func (r *BatchLogRepo) List() ([]*entity.BatchRecord, error) {
	query := `
		SELECT id, recipe_name, volume_bbl, final_cost, brewed_at
		FROM batch_log ORDER BY id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list batch log: %w", err)
	}
	defer rows.Close()
	var list []*entity.BatchRecord
	for rows.Next() {
		var rec entity.BatchRecord
		if err := rows.Scan(&rec.ID, &rec.RecipeName, &rec.VolumeBBL, &rec.FinalCost, &rec.BrewedAt); err != nil {
			return nil, fmt.Errorf("scan batch record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
