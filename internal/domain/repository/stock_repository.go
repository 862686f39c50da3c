package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/repucenter/repucenter-api/internal/domain/entity"
)

// StockRepository puerto de lectura de vistas derivadas de stock.
// Todo se calcula sobre el libro de movimientos en cada consulta; no hay tabla
// materializada ni cache.
type StockRepository interface {
	// StockByWarehouse devuelve el stock del producto por bodega con semántica
	// LEFT JOIN: toda bodega conocida aparece, con stock 0 si no tiene
	// movimientos del producto. Un producto inexistente produce todas en 0.
	StockByWarehouse(ctx context.Context, productID int64) ([]entity.WarehouseStock, error)

	// TotalStock devuelve la suma de efectos con signo de todos los movimientos
	// del producto; 0 si no hay ninguno.
	TotalStock(ctx context.Context, productID int64) (decimal.Decimal, error)

	// SearchProducts lista productos con stock total y desglose por bodega,
	// filtrados por subcadena (case-insensitive) sobre SKU o nombre; q vacío
	// lista todos. El desglose incluye solo bodegas con movimientos registrados.
	SearchProducts(ctx context.Context, q string) ([]entity.ProductStockSummary, error)
}
