package repository

import (
	"context"

	"github.com/repucenter/repucenter-api/internal/domain/entity"
)

// MovementRepository puerto de persistencia para el libro de movimientos (append-only).
type MovementRepository interface {
	// Create inserta el movimiento; la DB asigna ID y CreatedAt, que quedan
	// escritos en m. No existe camino de update ni delete.
	Create(ctx context.Context, m *entity.Movement) error

	// TraceBySKU devuelve todos los movimientos del SKU (todas las bodegas) con
	// el delta ya con signo, ordenados por (created_at ASC, id ASC). Slice vacío
	// si el SKU no existe o no tiene movimientos.
	TraceBySKU(ctx context.Context, sku string) ([]entity.TraceEntry, error)
}
