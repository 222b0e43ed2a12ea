package domain

import (
	"strconv"

	sharedDomain "github.com/davicafu/mirtech-api/internal/shared/domain"
)

// Tipos de evento del agregado User.
const (
	UserCreated = "user.created"
)

// NewUserCreatedEvent construye el evento outbox de un usuario ya insertado
// (requiere el ID generado por la base de datos).
func NewUserCreatedEvent(u *User) sharedDomain.OutboxEvent {
	return sharedDomain.NewOutboxEvent("user", strconv.FormatInt(u.ID, 10), UserCreated, u)
}
