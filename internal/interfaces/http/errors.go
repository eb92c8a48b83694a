package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/brewme-api/internal/application/dto"
	"github.com/jhoicas/brewme-api/internal/domain"
)

// validate valida los DTOs de entrada según sus tags `validate`.
var validate = validator.New()

// errorResponse traduce errores de dominio a códigos HTTP. El faltante de
// stock lleva su detalle estructurado (ingrediente, requerido, disponible).
func errorResponse(c *fiber.Ctx, err error) error {
	var stockErr *domain.InsufficientStockError
	if errors.As(err, &stockErr) {
		return c.Status(fiber.StatusConflict).JSON(dto.InsufficientStockResponse{
			Code:       "INSUFFICIENT_STOCK",
			Message:    stockErr.Error(),
			Ingredient: stockErr.Name,
			Needed:     stockErr.Needed,
			Available:  stockErr.Available,
		})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidVolume):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_VOLUME", Message: "volumen fuera del rango permitido"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicateName):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el nombre ya existe"})
	case errors.Is(err, domain.ErrIngredientInUse):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IN_USE", Message: "el ingrediente es usado por al menos una receta"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
