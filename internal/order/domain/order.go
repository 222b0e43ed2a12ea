package domain

import "time"

// Order representa la fila persistida de un pedido.
type Order struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ---------------- Filas con relaciones resueltas ----------------

// OrderRow es la fila de pedido con el nombre del dueño ya resuelto por el
// repositorio (LEFT JOIN). Username es nil si el usuario fue eliminado.
type OrderRow struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
	Username  *string
}

// TransactionRow es la línea de transacción con el producto resuelto.
// ProductName/ProductPrice son nil si el producto referenciado no existe.
type TransactionRow struct {
	ID           int64
	OrderID      int64
	ProductID    int64
	Quantity     int
	TotalPrice   float64
	ProductName  *string
	ProductPrice *float64
}

// ---------------- DTOs de respuesta ----------------

// OrderSummary es el elemento del listado de pedidos.
type OrderSummary struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	Username  *string `json:"username"`
	CreatedAt string  `json:"created_at"` // ISO8601
}

// TransactionLine es una transacción dentro del detalle de pedido.
type TransactionLine struct {
	ID           int64    `json:"id"`
	OrderID      int64    `json:"order_id"`
	ProductID    int64    `json:"product_id"`
	Quantity     int      `json:"quantity"`
	TotalPrice   float64  `json:"total_price"`
	ProductName  *string  `json:"product_name"`
	ProductPrice *float64 `json:"product_price"`
}

// OrderDetail es la respuesta del detalle de pedido con sus transacciones.
type OrderDetail struct {
	ID           int64             `json:"id"`
	UserID       int64             `json:"user_id"`
	Username     *string           `json:"username"`
	CreatedAt    string            `json:"created_at"`
	Transactions []TransactionLine `json:"transactions"`
}
