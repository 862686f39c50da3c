package repository

import "context"

// WarehouseRepository puerto de persistencia para bodegas (lectura; se crean fuera del servicio).
type WarehouseRepository interface {
	// Exists indica si la bodega con ese ID existe.
	Exists(ctx context.Context, id int64) (bool, error)
}
