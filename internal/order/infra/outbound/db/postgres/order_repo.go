package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // Driver de PostgreSQL

	"github.com/davicafu/mirtech-api/internal/order/domain"
	sharedPostgres "github.com/davicafu/mirtech-api/internal/shared/infra/db/postgres"
)

type OrderRepoPostgres struct {
	db *sql.DB
}

var _ domain.OrderRepository = (*OrderRepoPostgres)(nil)

func NewOrderRepoPostgres(db *sql.DB) *OrderRepoPostgres {
	return &OrderRepoPostgres{db: db}
}

func buildWhere(f domain.OrderFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if f.Username != nil {
		args = append(args, "%"+*f.Username+"%")
		conditions = append(conditions, fmt.Sprintf("u.name ILIKE $%d", len(args)))
	}
	if f.Range != nil {
		args = append(args, f.Range.Start, f.Range.End)
		conditions = append(conditions, fmt.Sprintf("o.created_at BETWEEN $%d AND $%d", len(args)-1, len(args)))
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

func (r *OrderRepoPostgres) List(ctx context.Context, f domain.OrderFilter) ([]domain.OrderRow, error) {
	where, args := buildWhere(f)

	query := orderSelect + where
	if f.Sort.Field != "" {
		dir := "ASC"
		if f.Sort.Desc {
			dir = "DESC"
		}
		query += fmt.Sprintf(" ORDER BY o.%s %s", f.Sort.Field, dir)
	}
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
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

func (r *OrderRepoPostgres) Count(ctx context.Context, f domain.OrderFilter) (int, error) {
	where, args := buildWhere(f)

	query := "SELECT COUNT(*) FROM orders o LEFT JOIN users u ON u.id = o.user_id" + where

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *OrderRepoPostgres) GetByID(ctx context.Context, id int64) (*domain.OrderRow, error) {
	row, err := scanOrderRow(r.db.QueryRowContext(ctx, orderSelect+" WHERE o.id = $1", id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *OrderRepoPostgres) ListTransactions(ctx context.Context, orderID int64) ([]domain.TransactionRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT t.id, t.order_id, t.product_id, t.quantity, t.total_price, p.name, p.price
		 FROM transactions t LEFT JOIN products p ON p.id = t.product_id
		 WHERE t.order_id = $1
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
func (r *OrderRepoPostgres) Create(ctx context.Context, o *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() // Se ignora si el Commit() es exitoso

	err = tx.QueryRowContext(ctx,
		`INSERT INTO orders (user_id, created_at) VALUES ($1, $2) RETURNING id`,
		o.UserID, o.CreatedAt,
	).Scan(&o.ID)
	if err != nil {
		return err
	}

	if err := sharedPostgres.InsertOutboxTx(ctx, tx, domain.NewOrderCreatedEvent(o)); err != nil {
		return err
	}

	return tx.Commit()
}
