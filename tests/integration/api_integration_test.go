package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	_ "modernc.org/sqlite"

	catalogDomain "github.com/davicafu/mirtech-api/internal/catalog/domain"
	catalogSQLite "github.com/davicafu/mirtech-api/internal/catalog/infra/outbound/db/sqlite"
	orderDomain "github.com/davicafu/mirtech-api/internal/order/domain"
	orderSQLite "github.com/davicafu/mirtech-api/internal/order/infra/outbound/db/sqlite"
	dbSQLite "github.com/davicafu/mirtech-api/internal/shared/infra/db/sqlite"
	userDomain "github.com/davicafu/mirtech-api/internal/user/domain"
	userSQLite "github.com/davicafu/mirtech-api/internal/user/infra/outbound/db/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	assert.NoError(t, err)
	assert.NoError(t, dbSQLite.InitSchema(db))
	return db
}

func seedProducts(t *testing.T, db *sql.DB) {
	rows := []struct {
		name, category string
		price          float64
	}{
		{"Compact Widget", "tools", 9.99},
		{"Deluxe Widget", "tools", 19.99},
		{"Smart Drill", "tools", 89.00},
		{"Eco Lamp", "furniture", 14.50},
		{"Classic Chair", "furniture", 45.00},
	}
	for _, r := range rows {
		_, err := db.Exec(
			`INSERT INTO products (name, description, price, category) VALUES (?, NULL, ?, ?)`,
			r.name, r.price, r.category)
		assert.NoError(t, err)
	}
}

func TestProductSQLiteIntegration_FilterSortPaginate(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	seedProducts(t, db)

	repo := catalogSQLite.NewProductRepoSQLite(db)
	ctx := context.Background()

	// Filtro por categoría: el total ignora la paginación.
	f := catalogDomain.NewProductFilter("tools", "", "id", "asc", 0, 2)
	items, err := repo.List(ctx, f)
	assert.NoError(t, err)
	assert.Len(t, items, 2)

	total, err := repo.Count(ctx, f)
	assert.NoError(t, err)
	assert.Equal(t, 3, total)

	// Segunda página.
	f = catalogDomain.NewProductFilter("tools", "", "id", "asc", 2, 2)
	items, err = repo.List(ctx, f)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Smart Drill", items[0].Name)

	// Búsqueda por subcadena case-insensitive.
	f = catalogDomain.NewProductFilter("", "WIDGET", "id", "asc", 0, 10)
	items, err = repo.List(ctx, f)
	assert.NoError(t, err)
	assert.Len(t, items, 2)

	// Orden por precio descendente.
	f = catalogDomain.NewProductFilter("", "", "price", "desc", 0, 10)
	items, err = repo.List(ctx, f)
	assert.NoError(t, err)
	assert.Equal(t, "Smart Drill", items[0].Name)
	assert.Equal(t, "Compact Widget", items[len(items)-1].Name)
}

func TestUserSQLiteIntegration_CreateListAndOutbox(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := userSQLite.NewUserRepoSQLite(db)
	ctx := context.Background()

	user := &userDomain.User{Name: "Ana", Email: "ana@example.com"}
	assert.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	// Email duplicado: la restricción UNIQUE se traduce al error de dominio.
	dup := &userDomain.User{Name: "Otra Ana", Email: "ana@example.com"}
	assert.ErrorIs(t, repo.Create(ctx, dup), userDomain.ErrUserAlreadyExists)

	users, err := repo.List(ctx, userDomain.NewUserFilter("an", "", "id", "asc", 0, 10))
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "Ana", users[0].Name)

	// El Create dejó su evento en la tabla outbox, pendiente de publicar.
	outbox := dbSQLite.NewOutboxRepoSQLite(db)
	pending, err := outbox.FetchPendingOutbox(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, userDomain.UserCreated, pending[0].EventType)

	assert.NoError(t, outbox.MarkOutboxProcessed(ctx, pending[0].ID))
	pending, err = outbox.FetchPendingOutbox(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, pending, 0)
}

func TestOrderSQLiteIntegration_DateBoundariesAndDetail(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	seedProducts(t, db)

	userRepo := userSQLite.NewUserRepoSQLite(db)
	orderRepo := orderSQLite.NewOrderRepoSQLite(db)
	ctx := context.Background()

	owner := &userDomain.User{Name: "Ana", Email: "ana@example.com"}
	assert.NoError(t, userRepo.Create(ctx, owner))

	insertOrder := func(at time.Time) int64 {
		o := &orderDomain.Order{UserID: owner.ID, CreatedAt: at}
		assert.NoError(t, orderRepo.Create(ctx, o))
		return o.ID
	}

	lastSecond := insertOrder(time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC))
	nextDay := insertOrder(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	inRange := insertOrder(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))

	// El último segundo del día final entra en el rango; el día siguiente no.
	f, err := orderDomain.NewOrderFilter("", "2024-06-01", "2024-06-30", "id", "asc", 0, 10)
	assert.NoError(t, err)

	rows, err := orderRepo.List(ctx, f)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, lastSecond, rows[0].ID)
	assert.Equal(t, inRange, rows[1].ID)

	total, err := orderRepo.Count(ctx, f)
	assert.NoError(t, err)
	assert.Equal(t, 2, total)

	// Filtro por nombre del dueño, case-insensitive.
	f, err = orderDomain.NewOrderFilter("ANA", "", "", "id", "asc", 0, 10)
	assert.NoError(t, err)
	rows, err = orderRepo.List(ctx, f)
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.NotNil(t, rows[0].Username)
	assert.Equal(t, "Ana", *rows[0].Username)

	// Detalle: transacciones con producto resuelto.
	_, err = db.Exec(
		`INSERT INTO transactions (order_id, product_id, quantity, total_price) VALUES (?, 1, 2, 19.98)`,
		inRange)
	assert.NoError(t, err)

	row, err := orderRepo.GetByID(ctx, inRange)
	assert.NoError(t, err)
	assert.Equal(t, owner.ID, row.UserID)

	txs, err := orderRepo.ListTransactions(ctx, inRange)
	assert.NoError(t, err)
	assert.Len(t, txs, 1)
	assert.NotNil(t, txs[0].ProductName)
	assert.Equal(t, "Compact Widget", *txs[0].ProductName)

	// Pedido inexistente.
	_, err = orderRepo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, orderDomain.ErrOrderNotFound)

	_, err = orderRepo.GetByID(ctx, nextDay)
	assert.NoError(t, err)
}
