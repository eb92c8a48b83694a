package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/brewme-api/internal/application/usecase"
	"github.com/jhoicas/brewme-api/internal/domain/entity"
	"github.com/jhoicas/brewme-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/brewme-api/internal/infrastructure/pdf"
)

func seedBatches(t *testing.T, store *memory.Store) {
	t.Helper()
	repo := memory.NewBatchLogRepository(store)
	brewed := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)

	_, err := repo.Append(&entity.BatchRecord{
		RecipeName: "Bohemian Pilsner",
		VolumeBBL:  decimal.NewFromInt(30),
		FinalCost:  decimal.RequireFromString("1397.25"),
		BrewedAt:   brewed,
	})
	require.NoError(t, err)
	_, err = repo.Append(&entity.BatchRecord{
		RecipeName: "IPA",
		VolumeBBL:  decimal.RequireFromString("7.5"),
		FinalCost:  decimal.RequireFromString("512.4"),
		BrewedAt:   brewed.Add(24 * time.Hour),
	})
	require.NoError(t, err)
}

func TestBatchLogList_MasRecientesPrimero(t *testing.T) {
	store := memory.NewStore()
	seedBatches(t, store)
	uc := usecase.NewBatchLogUseCase(memory.NewBatchLogRepository(store), infrapdf.NewMarotoPDFGenerator())

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "IPA", list[0].RecipeName)
	assert.Equal(t, "Bohemian Pilsner", list[1].RecipeName)
}

func TestExportCSV_FormatoYOrden(t *testing.T) {
	store := memory.NewStore()
	seedBatches(t, store)
	uc := usecase.NewBatchLogUseCase(memory.NewBatchLogRepository(store), infrapdf.NewMarotoPDFGenerator())

	out, err := uc.ExportCSV()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)

	// La cabecera es contrato: planillas aguas abajo la consumen por posición
	assert.Equal(t, "Batch ID,Recipe Name,Volume (BBL),Final Cost ($),Date Brewed", lines[0])
	// Más recientes primero; costo con dos decimales fijos, fecha AAAA-MM-DD HH:MM
	assert.Equal(t, "2,IPA,7.5,512.40,2026-08-21 14:30", lines[1])
	assert.Equal(t, "1,Bohemian Pilsner,30,1397.25,2026-08-20 14:30", lines[2])
}

func TestExportCSV_HistorialVacio(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewBatchLogUseCase(memory.NewBatchLogRepository(store), infrapdf.NewMarotoPDFGenerator())

	out, err := uc.ExportCSV()
	require.NoError(t, err)
	assert.Equal(t, "Batch ID,Recipe Name,Volume (BBL),Final Cost ($),Date Brewed",
		strings.TrimSpace(string(out)), "con historial vacío sale solo la cabecera")
}

func TestReportPDF_GeneraDocumento(t *testing.T) {
	store := memory.NewStore()
	seedBatches(t, store)
	uc := usecase.NewBatchLogUseCase(memory.NewBatchLogRepository(store), infrapdf.NewMarotoPDFGenerator())

	out, err := uc.ReportPDF(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"), "el reporte debe ser un PDF")
}
