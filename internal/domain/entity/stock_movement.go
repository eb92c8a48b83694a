package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeCONSUMPTION = "CONSUMPTION" // consumo por lote confirmado
	MovementTypeADJUSTMENT  = "ADJUSTMENT"  // ajuste manual de inventario
)

// StockMovement es el diario append-only de cambios de stock. Todos los
// consumos de un mismo lote comparten TransactionID. IngredientName va
// denormalizado para que el diario sobreviva al borrado del ingrediente.
type StockMovement struct {
	ID             string
	TransactionID  string
	IngredientID   int64
	IngredientName string
	Type           string
	Quantity       decimal.Decimal // negativo en consumos, signo del delta en ajustes
	UnitCost       decimal.Decimal // costo unitario vigente al momento del movimiento
	TotalCost      decimal.Decimal
	CreatedAt      time.Time
}
