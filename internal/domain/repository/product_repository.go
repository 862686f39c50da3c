package repository

import (
	"context"

	"github.com/repucenter/repucenter-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos (lectura; se crean fuera del servicio).
type ProductRepository interface {
	// GetBySKU devuelve el producto con ese SKU, o (nil, nil) si no existe.
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
}
