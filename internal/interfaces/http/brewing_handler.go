package http

import (
	"github.com/gofiber/fiber/v2"

	appbrew "github.com/jhoicas/brewme-api/internal/application/brewing"
	"github.com/jhoicas/brewme-api/internal/application/dto"
)

// BrewingHandler maneja el ciclo de producción: vista previa escalada y
// confirmación de lote.
type BrewingHandler struct {
	scaleUC  *appbrew.ScaleRecipeUseCase
	costUC   *appbrew.CostEstimator
	commitUC *appbrew.CommitBatchUseCase
}

// NewBrewingHandler construye el handler.
func NewBrewingHandler(scaleUC *appbrew.ScaleRecipeUseCase, costUC *appbrew.CostEstimator, commitUC *appbrew.CommitBatchUseCase) *BrewingHandler {
	return &BrewingHandler{scaleUC: scaleUC, costUC: costUC, commitUC: commitUC}
}

// Scale godoc
// @Summary      Vista previa: escalar receta y cotizar
// @Description  Escala la composición al volumen objetivo y devuelve costo
//               total con costos vigentes más el precio con margen. No muta
//               inventario ni historial.
// @Tags         brewing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScaleRequest  true  "recipe_id y volumen objetivo (BBL)"
// @Success      200   {object}  dto.ScaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/brewing/scale [post]
func (h *BrewingHandler) Scale(c *fiber.Ctx) error {
	var in dto.ScaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.preview(c, in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// CommitBatch godoc
// @Summary      Confirmar lote
// @Description  Re-escala la receta, recalcula la cotización con los costos
//               vigentes y consume el inventario de forma atómica. Si falta
//               stock de cualquier ingrediente no se descuenta nada.
// @Tags         brewing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScaleRequest  true  "recipe_id y volumen objetivo (BBL)"
// @Success      201   {object}  dto.BatchConfirmationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.InsufficientStockResponse
// @Router       /api/brewing/batches [post]
func (h *BrewingHandler) CommitBatch(c *fiber.Ctx) error {
	var in dto.ScaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	scaled, err := h.scaleUC.Scale(c.Context(), in.RecipeID, in.TargetVolumeBBL)
	if err != nil {
		return errorResponse(c, err)
	}
	total, err := h.costUC.TotalCost(c.Context(), scaled.Items)
	if err != nil {
		return errorResponse(c, err)
	}
	quoted := h.costUC.Quote(total)

	conf, err := h.commitUC.Commit(c.Context(), appbrew.CommitInput{
		RecipeName: scaled.Recipe.Name,
		VolumeBBL:  scaled.TargetBBL,
		FinalCost:  quoted,
		Items:      scaled.Items,
	})
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.BatchConfirmationResponse{
		BatchID:       conf.BatchID,
		TransactionID: conf.TransactionID,
		RecipeName:    scaled.Recipe.Name,
		VolumeBBL:     scaled.TargetBBL,
		FinalCost:     quoted,
		BrewedAt:      conf.BrewedAt,
	})
}

// preview arma la respuesta de escalado con la cotización vigente.
func (h *BrewingHandler) preview(c *fiber.Ctx, in dto.ScaleRequest) (*dto.ScaleResponse, error) {
	scaled, err := h.scaleUC.Scale(c.Context(), in.RecipeID, in.TargetVolumeBBL)
	if err != nil {
		return nil, err
	}
	total, err := h.costUC.TotalCost(c.Context(), scaled.Items)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ScaledItemResponse, 0, len(scaled.Items))
	for _, it := range scaled.Items {
		items = append(items, dto.ScaledItemResponse{
			IngredientID: it.IngredientID,
			Name:         it.Name,
			Unit:         it.Unit,
			Quantity:     it.Quantity,
		})
	}
	return &dto.ScaleResponse{
		RecipeID:        scaled.Recipe.ID,
		RecipeName:      scaled.Recipe.Name,
		TargetVolumeBBL: scaled.TargetBBL,
		ScaleFactor:     scaled.ScaleFactor,
		Items:           items,
		TotalCost:       total,
		QuotedPrice:     h.costUC.Quote(total),
	}, nil
}
