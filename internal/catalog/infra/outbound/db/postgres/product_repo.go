package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // Driver de PostgreSQL

	"github.com/davicafu/mirtech-api/internal/catalog/domain"
)

type ProductRepoPostgres struct {
	db *sql.DB
}

var _ domain.ProductRepository = (*ProductRepoPostgres)(nil)

func NewProductRepoPostgres(db *sql.DB) *ProductRepoPostgres {
	return &ProductRepoPostgres{db: db}
}

func buildWhere(f domain.ProductFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if f.Category != nil {
		args = append(args, "%"+*f.Category+"%")
		conditions = append(conditions, fmt.Sprintf("category ILIKE $%d", len(args)))
	}
	if f.Search != nil {
		args = append(args, "%"+*f.Search+"%")
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *ProductRepoPostgres) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	where, args := buildWhere(f)

	query := "SELECT id, name, description, price, category FROM products" + where
	if f.Sort.Field != "" {
		dir := "ASC"
		if f.Sort.Desc {
			dir = "DESC"
		}
		query += fmt.Sprintf(" ORDER BY %s %s", f.Sort.Field, dir)
	}
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.Pagination.Limit, f.Pagination.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var description, category sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &description, &p.Price, &category); err != nil {
			return nil, err
		}
		if description.Valid {
			p.Description = &description.String
		}
		if category.Valid {
			p.Category = &category.String
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *ProductRepoPostgres) Count(ctx context.Context, f domain.ProductFilter) (int, error) {
	where, args := buildWhere(f)

	var total int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}
