package domain

import (
	"context"
	"errors"
)

// ---------- Errores de dominio ----------
var (
	ErrUserAlreadyExists = errors.New("user already exists")
)

// ---------- Interfaces (Ports) ----------

// UserRepository define las operaciones persistentes para User.
type UserRepository interface {
	// List devuelve la página filtrada, ordenada y paginada.
	List(ctx context.Context, f UserFilter) ([]User, error)

	// Count devuelve el total filtrado ignorando la paginación.
	Count(ctx context.Context, f UserFilter) (int, error)

	// Create inserta el usuario y su evento outbox en una transacción,
	// asignando el ID generado. Debe devolver ErrUserAlreadyExists si el
	// email ya está registrado.
	Create(ctx context.Context, u *User) error
}
