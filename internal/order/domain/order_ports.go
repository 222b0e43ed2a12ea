package domain

import (
	"context"
	"errors"
)

// ---------- Errores de dominio ----------
var (
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidDateRange indica un filtro de fecha no parseable.
	// Es fatal para la petición, nunca se reintenta ni se ignora.
	ErrInvalidDateRange = errors.New("invalid date range")
)

// ---------- Interfaces (Ports) ----------

// OrderRepository define las operaciones persistentes para Order.
type OrderRepository interface {
	// List devuelve la página filtrada, ordenada y paginada, con el
	// nombre del dueño resuelto vía LEFT JOIN.
	List(ctx context.Context, f OrderFilter) ([]OrderRow, error)

	// Count devuelve el total filtrado ignorando la paginación.
	Count(ctx context.Context, f OrderFilter) (int, error)

	// GetByID devuelve el pedido con su dueño resuelto.
	// Debe devolver ErrOrderNotFound si no existe.
	GetByID(ctx context.Context, id int64) (*OrderRow, error)

	// ListTransactions devuelve las transacciones del pedido con el
	// producto resuelto, en orden de inserción.
	ListTransactions(ctx context.Context, orderID int64) ([]TransactionRow, error)

	// Create inserta el pedido y su evento outbox en una transacción,
	// asignando el ID generado.
	Create(ctx context.Context, o *Order) error
}
