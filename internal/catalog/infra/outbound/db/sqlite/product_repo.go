package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// _ "github.com/mattn/go-sqlite3" // better performance but requires gcc
	_ "modernc.org/sqlite"

	"github.com/davicafu/mirtech-api/internal/catalog/domain"
)

type ProductRepoSQLite struct {
	db *sql.DB
}

var _ domain.ProductRepository = (*ProductRepoSQLite)(nil)

func NewProductRepoSQLite(db *sql.DB) *ProductRepoSQLite {
	return &ProductRepoSQLite{db: db}
}

// buildWhere traduce el filtro a condiciones SQL. LIKE en SQLite ya es
// case-insensitive para ASCII.
func buildWhere(f domain.ProductFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if f.Category != nil {
		conditions = append(conditions, "category LIKE ?")
		args = append(args, "%"+*f.Category+"%")
	}
	if f.Search != nil {
		conditions = append(conditions, "name LIKE ?")
		args = append(args, "%"+*f.Search+"%")
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List aplica filtro → orden → paginación. El campo de orden viene ya
// validado contra la lista blanca del dominio; vacío significa orden natural.
func (r *ProductRepoSQLite) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	where, args := buildWhere(f)

	query := "SELECT id, name, description, price, category FROM products" + where
	if f.Sort.Field != "" {
		dir := "ASC"
		if f.Sort.Desc {
			dir = "DESC"
		}
		query += fmt.Sprintf(" ORDER BY %s %s", f.Sort.Field, dir)
	}
	query += " LIMIT ? OFFSET ?"
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

// Count devuelve el total filtrado sin paginar.
func (r *ProductRepoSQLite) Count(ctx context.Context, f domain.ProductFilter) (int, error) {
	where, args := buildWhere(f)

	var total int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}
