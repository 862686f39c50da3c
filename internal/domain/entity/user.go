package entity

import (
	"fmt"
	"time"
)

// Role es el rol de un usuario; enumeración cerrada, no comparar contra strings sueltos.
type Role string

// Roles válidos para User.
const (
	RoleJefeBodega Role = "JEFE_BODEGA" // único rol autorizado a registrar movimientos
	RoleOperador   Role = "OPERADOR"
)

// ParseRole valida y convierte un string a Role. Retorna error para valores fuera del catálogo.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleJefeBodega:
		return RoleJefeBodega, nil
	case RoleOperador:
		return RoleOperador, nil
	default:
		return "", fmt.Errorf("rol desconocido: %q", s)
	}
}

// String implementa fmt.Stringer.
func (r Role) String() string { return string(r) }

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	CreatedAt    time.Time
}
