package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TraceMovementDTO un movimiento dentro de la traza, con balance acumulado.
type TraceMovementDTO struct {
	SKU           string          `json:"sku"`
	ProductName   string          `json:"product_name"`
	Warehouse     string          `json:"warehouse"`
	MovementType  string          `json:"movement_type"`
	QuantityDelta decimal.Decimal `json:"quantity_delta"`
	Reference     string          `json:"reference"`
	CreatedAt     time.Time       `json:"created_at"`
	MovementID    int64           `json:"movement_id"`
	RunningStock  decimal.Decimal `json:"running_stock"`
}

// TraceResponse respuesta de GET /trace/:sku. El balance acumulado es global
// (todas las bodegas), a diferencia del desglose por bodega de /stock.
type TraceResponse struct {
	SKU               string             `json:"sku"`
	Product           string             `json:"product"`
	Movements         []TraceMovementDTO `json:"movements"`
	FinalStockByTrace decimal.Decimal    `json:"final_stock_by_trace"`
}
