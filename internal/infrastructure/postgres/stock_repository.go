package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/repucenter/repucenter-api/internal/domain/entity"
	"github.com/repucenter/repucenter-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo vistas derivadas de stock sobre PostgreSQL: todo se calcula con
// SUM(CASE ...) sobre movements en cada lectura, sin tabla materializada.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de lectura de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// signedEffect es la regla de signo compartida por todas las consultas:
// +qty para IN, -qty para OUT, qty tal cual para ADJ.
const signedEffect = `CASE
		WHEN m.type_code = 'IN'  THEN m.qty
		WHEN m.type_code = 'OUT' THEN -m.qty
		WHEN m.type_code = 'ADJ' THEN m.qty
		ELSE 0
	END`

// StockByWarehouse devuelve el stock del producto en cada bodega conocida.
// El filtro por producto va en el JOIN, no en WHERE, para no romper el LEFT
// JOIN: así las bodegas sin movimientos del producto aparecen con stock 0.
func (r *StockRepo) StockByWarehouse(ctx context.Context, productID int64) ([]entity.WarehouseStock, error) {
	query := `
		SELECT w.name AS warehouse,
		       COALESCE(SUM(` + signedEffect + `), 0) AS stock
		FROM warehouses w
		LEFT JOIN movements m
		  ON m.warehouse_id = w.id
		 AND m.product_id = $1
		GROUP BY w.name
		ORDER BY w.name`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("stock by warehouse: %w", err)
	}
	defer rows.Close()

	var result []entity.WarehouseStock
	for rows.Next() {
		var ws entity.WarehouseStock
		if err := rows.Scan(&ws.Warehouse, &ws.Stock); err != nil {
			return nil, fmt.Errorf("scan warehouse stock: %w", err)
		}
		result = append(result, ws)
	}
	return result, rows.Err()
}

// TotalStock devuelve la suma de efectos con signo de todos los movimientos del producto.
func (r *StockRepo) TotalStock(ctx context.Context, productID int64) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(` + signedEffect + `), 0) AS total_stock
		FROM movements m
		WHERE m.product_id = $1`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, productID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total stock: %w", err)
	}
	return total, nil
}

// SearchProducts lista productos (filtro ILIKE opcional sobre sku/name) con su
// stock total, y les adjunta el desglose por bodega de una segunda consulta.
// El desglose usa JOIN: solo bodegas con movimientos del producto.
func (r *StockRepo) SearchProducts(ctx context.Context, q string) ([]entity.ProductStockSummary, error) {
	var filter *string
	if q != "" {
		filter = &q
	}

	totalsQuery := `
		SELECT p.id, p.sku, p.name,
		       COALESCE(SUM(` + signedEffect + `), 0) AS total_stock
		FROM products p
		LEFT JOIN movements m ON m.product_id = p.id
		WHERE ($1::text IS NULL OR p.sku ILIKE '%'||$1||'%' OR p.name ILIKE '%'||$1||'%')
		GROUP BY p.id, p.sku, p.name
		ORDER BY p.sku`
	rows, err := r.q.Query(ctx, totalsQuery, filter)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var summaries []entity.ProductStockSummary
	index := make(map[int64]int)
	for rows.Next() {
		var s entity.ProductStockSummary
		if err := rows.Scan(&s.ProductID, &s.SKU, &s.Name, &s.TotalStock); err != nil {
			return nil, fmt.Errorf("scan product summary: %w", err)
		}
		s.ByWarehouse = []entity.WarehouseStock{}
		index[s.ProductID] = len(summaries)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	breakdownQuery := `
		SELECT p.id, w.name AS warehouse,
		       COALESCE(SUM(` + signedEffect + `), 0) AS stock
		FROM products p
		JOIN movements  m ON m.product_id = p.id
		JOIN warehouses w ON w.id = m.warehouse_id
		WHERE ($1::text IS NULL OR p.sku ILIKE '%'||$1||'%' OR p.name ILIKE '%'||$1||'%')
		GROUP BY p.id, w.name
		ORDER BY p.id, w.name`
	whRows, err := r.q.Query(ctx, breakdownQuery, filter)
	if err != nil {
		return nil, fmt.Errorf("search products breakdown: %w", err)
	}
	defer whRows.Close()

	for whRows.Next() {
		var (
			productID int64
			ws        entity.WarehouseStock
		)
		if err := whRows.Scan(&productID, &ws.Warehouse, &ws.Stock); err != nil {
			return nil, fmt.Errorf("scan product breakdown: %w", err)
		}
		if i, ok := index[productID]; ok {
			summaries[i].ByWarehouse = append(summaries[i].ByWarehouse, ws)
		}
	}
	return summaries, whRows.Err()
}
