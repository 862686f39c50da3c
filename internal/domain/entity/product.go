package entity

import "time"

// Product representa un producto identificado por SKU único.
// Se crea fuera de este servicio y es inmutable una vez referenciado por movimientos.
type Product struct {
	ID        int64
	SKU       string // código único visible al exterior
	Name      string
	CreatedAt time.Time
}
