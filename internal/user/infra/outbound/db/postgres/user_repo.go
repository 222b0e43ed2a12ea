package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // Driver de PostgreSQL

	sharedPostgres "github.com/davicafu/mirtech-api/internal/shared/infra/db/postgres"
	"github.com/davicafu/mirtech-api/internal/user/domain"
)

type UserRepoPostgres struct {
	db *sql.DB
}

var _ domain.UserRepository = (*UserRepoPostgres)(nil)

func NewUserRepoPostgres(db *sql.DB) *UserRepoPostgres {
	return &UserRepoPostgres{db: db}
}

func buildWhere(f domain.UserFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if f.Search != nil {
		args = append(args, "%"+*f.Search+"%")
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if f.Email != nil {
		args = append(args, "%"+*f.Email+"%")
		conditions = append(conditions, fmt.Sprintf("email ILIKE $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *UserRepoPostgres) List(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	where, args := buildWhere(f)

	query := "SELECT id, name, email FROM users" + where
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

func (r *UserRepoPostgres) Count(ctx context.Context, f domain.UserFilter) (int, error) {
	where, args := buildWhere(f)

	var total int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users"+where, args...).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Create inserta usuario y evento outbox en una transacción.
func (r *UserRepoPostgres) Create(ctx context.Context, u *domain.User) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() // Se ignora si el Commit() es exitoso

	err = tx.QueryRowContext(ctx,
		`INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id`,
		u.Name, u.Email,
	).Scan(&u.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrUserAlreadyExists
		}
		return err
	}

	if err := sharedPostgres.InsertOutboxTx(ctx, tx, domain.NewUserCreatedEvent(u)); err != nil {
		return err
	}

	return tx.Commit()
}
