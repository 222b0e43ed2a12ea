package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// _ "github.com/mattn/go-sqlite3" // better performance but requires gcc
	_ "modernc.org/sqlite"

	sharedSQLite "github.com/davicafu/mirtech-api/internal/shared/infra/db/sqlite"
	"github.com/davicafu/mirtech-api/internal/user/domain"
)

type UserRepoSQLite struct {
	db *sql.DB
}

var _ domain.UserRepository = (*UserRepoSQLite)(nil)

func NewUserRepoSQLite(db *sql.DB) *UserRepoSQLite {
	return &UserRepoSQLite{db: db}
}

func buildWhere(f domain.UserFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if f.Search != nil {
		conditions = append(conditions, "name LIKE ?")
		args = append(args, "%"+*f.Search+"%")
	}
	if f.Email != nil {
		conditions = append(conditions, "email LIKE ?")
		args = append(args, "%"+*f.Email+"%")
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *UserRepoSQLite) List(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	where, args := buildWhere(f)

	query := "SELECT id, name, email FROM users" + where
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

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *UserRepoSQLite) Count(ctx context.Context, f domain.UserFilter) (int, error) {
	where, args := buildWhere(f)

	var total int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users"+where, args...).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Create inserta usuario y evento outbox en una transacción.
func (r *UserRepoSQLite) Create(ctx context.Context, u *domain.User) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() // Se ignora si el Commit() es exitoso

	res, err := tx.ExecContext(ctx,
		`INSERT INTO users (name, email) VALUES (?, ?)`,
		u.Name, u.Email,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domain.ErrUserAlreadyExists
		}
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = id

	if err := sharedSQLite.InsertOutboxTx(ctx, tx, domain.NewUserCreatedEvent(u)); err != nil {
		return err
	}

	return tx.Commit()
}
