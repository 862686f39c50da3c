package repository

import (
	"context"

	"github.com/repucenter/repucenter-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	// FindByUsername devuelve el usuario con ese username, o (nil, nil) si no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
