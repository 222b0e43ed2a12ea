package domain

import (
	"strconv"

	sharedDomain "github.com/davicafu/mirtech-api/internal/shared/domain"
)

// Tipos de evento del agregado Order.
const (
	OrderCreated = "order.created"
)

// NewOrderCreatedEvent construye el evento outbox de un pedido ya insertado.
func NewOrderCreatedEvent(o *Order) sharedDomain.OutboxEvent {
	return sharedDomain.NewOutboxEvent("order", strconv.FormatInt(o.ID, 10), OrderCreated, o)
}
