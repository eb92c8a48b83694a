package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/brewme-api/internal/application/usecase"
)

// BatchHandler maneja el historial de lotes y sus exportes.
type BatchHandler struct {
	uc *usecase.BatchLogUseCase
}

// NewBatchHandler construye el handler.
func NewBatchHandler(uc *usecase.BatchLogUseCase) *BatchHandler {
	return &BatchHandler{uc: uc}
}

// List godoc
// @Summary      Historial de lotes (más recientes primero)
// @Tags         batches
// @Produce      json
// @Success      200  {array}  dto.BatchRecordResponse
// @Router       /api/batches [get]
func (h *BatchHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar historial como CSV
// @Tags         batches
// @Produce      text/csv
// @Success      200  {string}  string  "CSV del historial"
// @Router       /api/batches/export [get]
func (h *BatchHandler) ExportCSV(c *fiber.Ctx) error {
	out, err := h.uc.ExportCSV()
	if err != nil {
		return errorResponse(c, err)
	}
	filename := "batch_log_" + time.Now().Format("20060102") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(out)
}

// ReportPDF godoc
// @Summary      Reporte PDF del historial
// @Tags         batches
// @Produce      application/pdf
// @Success      200  {string}  string  "PDF del historial"
// @Router       /api/batches/report [get]
func (h *BatchHandler) ReportPDF(c *fiber.Ctx) error {
	out, err := h.uc.ReportPDF(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="batch_report.pdf"`)
	return c.Send(out)
}
