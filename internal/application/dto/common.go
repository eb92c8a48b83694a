package dto

import "github.com/shopspring/decimal"

// ErrorResponse formato uniforme de error de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// InsufficientStockResponse detalla el primer faltante detectado al
// confirmar un lote; el stock no fue mutado.
type InsufficientStockResponse struct {
	Code       string          `json:"code"`
	Message    string          `json:"message"`
	Ingredient string          `json:"ingredient"`
	Needed     decimal.Decimal `json:"needed"`
	Available  decimal.Decimal `json:"available"`
}
