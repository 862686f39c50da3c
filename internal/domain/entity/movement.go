package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MovementType es el tipo de un movimiento de inventario; enumeración cerrada.
type MovementType string

// Tipos de movimiento válidos. Ningún otro valor se persiste.
const (
	MovementTypeIN  MovementType = "IN"  // entrada
	MovementTypeOUT MovementType = "OUT" // salida
	MovementTypeADJ MovementType = "ADJ" // ajuste (cantidad con signo)
)

// ParseMovementType normaliza (trim + mayúsculas) y valida un type_code.
func ParseMovementType(code string) (MovementType, error) {
	switch MovementType(strings.ToUpper(strings.TrimSpace(code))) {
	case MovementTypeIN:
		return MovementTypeIN, nil
	case MovementTypeOUT:
		return MovementTypeOUT, nil
	case MovementTypeADJ:
		return MovementTypeADJ, nil
	default:
		return "", fmt.Errorf("type_code inválido: %q (use IN, OUT o ADJ)", code)
	}
}

// String implementa fmt.Stringer.
func (t MovementType) String() string { return string(t) }

// Movement es una entrada del libro de movimientos: inmutable tras su creación.
// Qty es la cantidad almacenada: valor absoluto para IN/OUT, con signo para ADJ.
// Las correcciones se hacen con movimientos compensatorios, nunca con UPDATE/DELETE.
type Movement struct {
	ID          int64 // asignado por la DB (bigserial), desempate del orden cronológico
	ProductID   int64
	WarehouseID int64
	Type        MovementType
	Qty         decimal.Decimal
	Reference   string
	Notes       string
	CreatedBy   int64
	CreatedAt   time.Time // asignado por la DB, clave de orden principal
}
