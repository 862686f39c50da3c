package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseStock es el stock calculado de un producto en una bodega (vista derivada, no se persiste).
type WarehouseStock struct {
	Warehouse string
	Stock     decimal.Decimal
}

// ProductStockSummary es la vista de listado: producto con stock total y desglose por bodega.
type ProductStockSummary struct {
	ProductID   int64
	SKU         string
	Name        string
	TotalStock  decimal.Decimal
	ByWarehouse []WarehouseStock
}

// TraceEntry es un movimiento re-expresado para trazabilidad: el delta ya viene
// con signo (efecto lógico) y el orden lo fija (CreatedAt, MovementID).
type TraceEntry struct {
	SKU           string
	ProductName   string
	Warehouse     string
	Type          MovementType
	QuantityDelta decimal.Decimal
	Reference     string
	CreatedAt     time.Time
	MovementID    int64
}
