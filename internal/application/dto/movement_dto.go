package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest body para POST /movements.
// Qty es puntero para distinguir "ausente" de 0 (ADJ con 0 se rechaza aparte).
type CreateMovementRequest struct {
	SKU         string           `json:"sku"`
	WarehouseID int64            `json:"warehouse_id"`
	TypeCode    string           `json:"type_code"`
	Qty         *decimal.Decimal `json:"qty"`
	Reference   string           `json:"reference,omitempty"`
	Notes       string           `json:"notes,omitempty"`
}

// WarehouseStockDTO stock de una bodega dentro de una respuesta.
type WarehouseStockDTO struct {
	Warehouse string          `json:"warehouse"`
	Stock     decimal.Decimal `json:"stock"`
}

// MovementResponse respuesta de POST /movements: el movimiento creado más el
// stock recalculado. Qty va siempre en forma lógica con signo (IN positivo,
// OUT negativo, ADJ tal cual), independiente de cómo se normalizó al almacenar.
type MovementResponse struct {
	SKU              string              `json:"sku"`
	WarehouseID      int64               `json:"warehouse_id"`
	TypeCode         string              `json:"type_code"`
	Qty              decimal.Decimal     `json:"qty"`
	Reference        string              `json:"reference"`
	Notes            string              `json:"notes"`
	MovementID       int64               `json:"movement_id"`
	CreatedAt        time.Time           `json:"created_at"`
	StockByWarehouse []WarehouseStockDTO `json:"stock_by_warehouse"`
	TotalStock       decimal.Decimal     `json:"total_stock"`
}
