package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrSKUNotFound       = errors.New("SKU no existe")
	ErrWarehouseNotFound = errors.New("bodega no existe")
	ErrNoMovements       = errors.New("SKU sin movimientos")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
)
