package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
// Se crea fuera de este servicio y es inmutable una vez referenciada.
type Warehouse struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
