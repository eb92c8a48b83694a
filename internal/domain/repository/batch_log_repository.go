package repository

import "github.com/jhoicas/brewme-api/internal/domain/entity"

// BatchLogRepository define el puerto del historial de lotes (append-only:
// el núcleo nunca actualiza ni borra entradas).
type BatchLogRepository interface {
	// Append agrega una entrada y devuelve su ID asignado.
	Append(rec *entity.BatchRecord) (int64, error)
	// List devuelve el historial completo en orden descendente de ID.
	List() ([]*entity.BatchRecord, error)
}
