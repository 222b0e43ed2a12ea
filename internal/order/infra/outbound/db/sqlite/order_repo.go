package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// _ "github.com/mattn/go-sqlite3" // better performance but requires gcc
	_ "modernc.org/sqlite"

	"github.com/davicafu/mirtech-api/internal/order/domain"
	sharedSQLite "github.com/davicafu/mirtech-api/internal/shared/infra/db/sqlite"
)

type OrderRepoSQLite struct {
	db *sql.DB
}

var _ domain.OrderRepository = (*OrderRepoSQLite)(nil)

func NewOrderRepoSQLite(db *sql.DB) *OrderRepoSQLite {
	return &OrderRepoSQLite{db: db}
}

// buildWhere traduce el filtro a condiciones sobre el join orders/users.
func buildWhere(f domain.OrderFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if f.Username != nil {
		conditions = append(conditions, "u.name LIKE ?")
		args = append(args, "%"+*f.Username+"%")
	}
	if f.Range != nil {
		conditions = append(conditions, "o.created_at BETWEEN ? AND ?")
		args = append(args, f.Range.Start, f.Range.End)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

const orderSelect = `SELECT o.id, o.user_id, o.created_at, u.name
	FROM orders o LEFT JOIN users u ON u.id = o.user_id`

func scanOrderRow(scanner interface{ Scan(...interface{}) error }) (domain.OrderRow, error) {
	var row domain.OrderRow
	var username sql.NullString
	if err := scanner.Scan(&row.ID, &row.UserID, &row.CreatedAt, &username); err != nil {
		return domain.OrderRow{}, err
	}
	if username.Valid {
		row.Username = &username.String
	}
	return row, nil
}

func (r *OrderRepoSQLite) List(ctx context.Context, f domain.OrderFilter) ([]domain.OrderRow, error) {
	where, args := buildWhere(f)

	query := orderSelect + where
	if f.Sort.Field != "" {
		dir := "ASC"
		if f.Sort.Desc {
			dir = "DESC"
		}
		query += fmt.Sprintf(" ORDER BY o.%s %s", f.Sort.Field, dir)
	}
	query += " LIMIT ? OFFSET ?"
	args = append(args, f.Pagination.Limit, f.Pagination.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.OrderRow
	for rows.Next() {
		row, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, row)
	}

	return orders, rows.Err()
}

func (r *OrderRepoSQLite) Count(ctx context.Context, f domain.OrderFilter) (int, error) {
	where, args := buildWhere(f)

	query := "SELECT COUNT(*) FROM orders o LEFT JOIN users u ON u.id = o.user_id" + where

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *OrderRepoSQLite) GetByID(ctx context.Context, id int64) (*domain.OrderRow, error) {
	row, err := scanOrderRow(r.db.QueryRowContext(ctx, orderSelect+" WHERE o.id = ?", id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *OrderRepoSQLite) ListTransactions(ctx context.Context, orderID int64) ([]domain.TransactionRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT t.id, t.order_id, t.product_id, t.quantity, t.total_price, p.name, p.price
		 FROM transactions t LEFT JOIN products p ON p.id = t.product_id
		 WHERE t.order_id = ?
		 ORDER BY t.id`, orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.TransactionRow
	for rows.Next() {
		var tx domain.TransactionRow
		var productName sql.NullString
		var productPrice sql.NullFloat64
		if err := rows.Scan(&tx.ID, &tx.OrderID, &tx.ProductID, &tx.Quantity, &tx.TotalPrice, &productName, &productPrice); err != nil {
			return nil, err
		}
		if productName.Valid {
			tx.ProductName = &productName.String
		}
		if productPrice.Valid {
			tx.ProductPrice = &productPrice.Float64
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

// Create inserta pedido y evento outbox en una transacción.
func (r *OrderRepoSQLite) Create(ctx context.Context, o *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() // Se ignora si el Commit() es exitoso

	res, err := tx.ExecContext(ctx,
		`INSERT INTO orders (user_id, created_at) VALUES (?, ?)`,
		o.UserID, o.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	o.ID = id

	if err := sharedSQLite.InsertOutboxTx(ctx, tx, domain.NewOrderCreatedEvent(o)); err != nil {
		return err
	}

	return tx.Commit()
}
