package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"

	"github.com/jhoicas/brewme-api/internal/application/dto"
	"github.com/jhoicas/brewme-api/internal/domain/entity"
	"github.com/jhoicas/brewme-api/internal/domain/repository"
)

// Cabecera del exporte CSV del historial. El orden de columnas es parte del
// contrato: hay planillas aguas abajo que lo consumen por posición.
var csvHeader = []string{"Batch ID", "Recipe Name", "Volume (BBL)", "Final Cost ($)", "Date Brewed"}

// BatchLogUseCase expone el historial de lotes y sus exportes.
type BatchLogUseCase struct {
	repo      repository.BatchLogRepository
	reportGen BatchReportGenerator
}

// NewBatchLogUseCase construye el caso de uso.
func NewBatchLogUseCase(repo repository.BatchLogRepository, reportGen BatchReportGenerator) *BatchLogUseCase {
	return &BatchLogUseCase{repo: repo, reportGen: reportGen}
}

// List devuelve el historial completo, lotes más recientes primero.
func (uc *BatchLogUseCase) List() ([]*dto.BatchRecordResponse, error) {
	records, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BatchRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, &dto.BatchRecordResponse{
			ID:         r.ID,
			RecipeName: r.RecipeName,
			VolumeBBL:  r.VolumeBBL,
			FinalCost:  r.FinalCost,
			BrewedAt:   r.BrewedAt,
		})
	}
	return out, nil
}

// ExportCSV serializa el historial como CSV, en el mismo orden que List.
// Costo con dos decimales fijos; fecha como "2006-01-02 15:04".
func (uc *BatchLogUseCase) ExportCSV() ([]byte, error) {
	records, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.RecipeName,
			r.VolumeBBL.String(),
			r.FinalCost.StringFixed(2),
			r.BrewedAt.Format("2006-01-02 15:04"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReportPDF genera el reporte PDF del historial.
func (uc *BatchLogUseCase) ReportPDF(ctx context.Context) ([]byte, error) {
	records, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return uc.reportGen.Generate(ctx, records)
}

// MovementHistoryUseCase expone el diario de movimientos por ingrediente.
type MovementHistoryUseCase struct {
	repo repository.StockMovementRepository
}

// NewMovementHistoryUseCase construye el caso de uso.
func NewMovementHistoryUseCase(repo repository.StockMovementRepository) *MovementHistoryUseCase {
	return &MovementHistoryUseCase{repo: repo}
}

// ListByIngredient devuelve los movimientos de un ingrediente, paginados.
func (uc *MovementHistoryUseCase) ListByIngredient(id int64, limit, offset int) ([]*entity.StockMovement, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.repo.ListByIngredient(id, limit, offset)
}
