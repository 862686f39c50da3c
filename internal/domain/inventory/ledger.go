package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/repucenter/repucenter-api/internal/domain"
	"github.com/repucenter/repucenter-api/internal/domain/entity"
)

// Reglas del libro de movimientos (servicio de dominio, funciones puras).
//
// Convención de persistencia vs. exposición:
//   - se almacena |qty| para IN/OUT (el signo va implícito en el tipo) y qty con
//     signo para ADJ;
//   - toda vista calculada (stock, traza, respuesta de escritura) usa el efecto
//     con signo: +qty para IN, -qty para OUT, qty tal cual para ADJ.

// ValidateQty aplica la regla de signo de entrada: IN/OUT exigen qty > 0, ADJ exige qty != 0.
func ValidateQty(t entity.MovementType, qty decimal.Decimal) error {
	switch t {
	case entity.MovementTypeIN, entity.MovementTypeOUT:
		if !qty.GreaterThan(decimal.Zero) {
			return fmt.Errorf("%w: qty debe ser > 0 para IN/OUT", domain.ErrInvalidInput)
		}
	case entity.MovementTypeADJ:
		if qty.IsZero() {
			return fmt.Errorf("%w: qty no puede ser 0 para ADJ", domain.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: type_code desconocido", domain.ErrInvalidInput)
	}
	return nil
}

// NormalizeQty devuelve la cantidad a persistir: |qty| para IN/OUT, qty con signo para ADJ.
func NormalizeQty(t entity.MovementType, qty decimal.Decimal) decimal.Decimal {
	if t == entity.MovementTypeIN || t == entity.MovementTypeOUT {
		return qty.Abs()
	}
	return qty
}

// Effect devuelve el efecto con signo de una cantidad ya almacenada:
// +stored para IN, -stored para OUT, stored tal cual para ADJ.
func Effect(t entity.MovementType, stored decimal.Decimal) decimal.Decimal {
	switch t {
	case entity.MovementTypeIN:
		return stored
	case entity.MovementTypeOUT:
		return stored.Neg()
	default:
		return stored
	}
}

// SignedQty devuelve la forma lógica expuesta al cliente para una cantidad de entrada.
// Equivale a Effect(t, NormalizeQty(t, qty)).
func SignedQty(t entity.MovementType, qty decimal.Decimal) decimal.Decimal {
	return Effect(t, NormalizeQty(t, qty))
}
