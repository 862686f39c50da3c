package postgres

import (
	"context"
	"fmt"

	"github.com/repucenter/repucenter-api/internal/domain/entity"
	"github.com/repucenter/repucenter-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL (usable con pool o tx).
// El libro es append-only: este adaptador no expone UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta el movimiento en una única sentencia; la DB asigna id (bigserial)
// y created_at (now()), que quedan escritos en m vía RETURNING.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (product_id, warehouse_id, type_code, qty, reference, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		m.ProductID, m.WarehouseID, m.Type.String(), m.Qty,
		nullIfEmpty(m.Reference), nullIfEmpty(m.Notes), m.CreatedBy,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// TraceBySKU devuelve los movimientos del SKU con el delta calculado en SQL,
// ordenados por (created_at, id); id desempata timestamps iguales para un
// orden total determinista.
func (r *MovementRepo) TraceBySKU(ctx context.Context, sku string) ([]entity.TraceEntry, error) {
	query := `
		SELECT p.sku,
		       p.name AS product_name,
		       w.name AS warehouse,
		       m.type_code,
		       CASE
		         WHEN m.type_code = 'IN'  THEN m.qty
		         WHEN m.type_code = 'OUT' THEN -m.qty
		         WHEN m.type_code = 'ADJ' THEN m.qty
		       END AS quantity_delta,
		       m.reference,
		       m.created_at,
		       m.id
		FROM products p
		JOIN movements  m ON m.product_id = p.id
		JOIN warehouses w ON w.id = m.warehouse_id
		WHERE p.sku = $1
		ORDER BY m.created_at ASC, m.id ASC`
	rows, err := r.q.Query(ctx, query, sku)
	if err != nil {
		return nil, fmt.Errorf("trace by sku: %w", err)
	}
	defer rows.Close()

	var entries []entity.TraceEntry
	for rows.Next() {
		var (
			e         entity.TraceEntry
			typeCode  string
			reference *string
		)
		if err := rows.Scan(&e.SKU, &e.ProductName, &e.Warehouse, &typeCode,
			&e.QuantityDelta, &reference, &e.CreatedAt, &e.MovementID); err != nil {
			return nil, fmt.Errorf("scan trace entry: %w", err)
		}
		e.Type = entity.MovementType(typeCode)
		if reference != nil {
			e.Reference = *reference
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// nullIfEmpty convierte "" a NULL para columnas de texto opcionales.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
