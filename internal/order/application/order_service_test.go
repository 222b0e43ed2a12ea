package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/davicafu/mirtech-api/internal/order/domain"
	"github.com/davicafu/mirtech-api/tests/mocks"
)

func seedOrderRepo() *mocks.InMemoryOrderRepo {
	repo := mocks.NewInMemoryOrderRepo()
	repo.Usernames[1] = "Ana"
	repo.Products[10] = struct {
		Name  string
		Price float64
	}{Name: "Compact Widget", Price: 9.99}

	repo.AddOrder(domain.Order{ID: 1, UserID: 1, CreatedAt: time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)})
	repo.AddOrder(domain.Order{ID: 2, UserID: 99, CreatedAt: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)}) // dueño eliminado

	repo.Transactions = append(repo.Transactions,
		domain.TransactionRow{ID: 1, OrderID: 1, ProductID: 10, Quantity: 2, TotalPrice: 19.98},
		domain.TransactionRow{ID: 2, OrderID: 1, ProductID: 777, Quantity: 1, TotalPrice: 5.00}, // producto eliminado
	)
	return repo
}

func TestListOrders_ResolvesUsernameOrNil(t *testing.T) {
	repo := seedOrderRepo()
	service := NewOrderService(repo, mocks.NewDummyCache(), 60, zap.NewNop())

	f, err := domain.NewOrderFilter("", "", "", "id", "asc", 0, 10)
	assert.NoError(t, err)

	page, err := service.ListOrders(context.Background(), f)
	assert.NoError(t, err)
	assert.Len(t, page.Items, 2)

	assert.NotNil(t, page.Items[0].Username)
	assert.Equal(t, "Ana", *page.Items[0].Username)
	// Un dueño inexistente deja username en nil, no rompe el listado.
	assert.Nil(t, page.Items[1].Username)
}

func TestListOrders_DateRangeIncludesEndOfDay(t *testing.T) {
	repo := seedOrderRepo()
	repo.AddOrder(domain.Order{ID: 3, UserID: 1, CreatedAt: time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)})
	service := NewOrderService(repo, mocks.NewDummyCache(), 60, zap.NewNop())

	f, err := domain.NewOrderFilter("", "2024-06-01", "2024-06-30", "id", "asc", 0, 10)
	assert.NoError(t, err)

	page, err := service.ListOrders(context.Background(), f)
	assert.NoError(t, err)
	// Entra el último segundo del 30 de junio, pero no el 1 de julio.
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(1), page.Items[0].ID)
	assert.Equal(t, int64(3), page.Items[1].ID)
}

func TestListOrders_SecondCallIsCacheHit(t *testing.T) {
	repo := seedOrderRepo()
	cache := mocks.NewDummyCache()
	service := NewOrderService(repo, cache, 60, zap.NewNop())

	f, _ := domain.NewOrderFilter("ana", "", "", "created_at", "desc", 0, 10)

	_, err := service.ListOrders(context.Background(), f)
	assert.NoError(t, err)
	_, err = service.ListOrders(context.Background(), f)
	assert.NoError(t, err)

	assert.Equal(t, 1, repo.ListCalls)
	assert.Equal(t, 1, repo.CountCalls)
}

func TestGetOrder_DetailWithTransactions(t *testing.T) {
	repo := seedOrderRepo()
	service := NewOrderService(repo, mocks.NewDummyCache(), 60, zap.NewNop())

	detail, err := service.GetOrder(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), detail.ID)
	assert.Equal(t, "2024-06-15T10:00:00Z", detail.CreatedAt)
	assert.Len(t, detail.Transactions, 2)

	// Producto resuelto en la primera línea, eliminado en la segunda.
	assert.NotNil(t, detail.Transactions[0].ProductName)
	assert.Equal(t, "Compact Widget", *detail.Transactions[0].ProductName)
	assert.Nil(t, detail.Transactions[1].ProductName)
	assert.Nil(t, detail.Transactions[1].ProductPrice)
}

func TestGetOrder_NotFound(t *testing.T) {
	repo := seedOrderRepo()
	service := NewOrderService(repo, mocks.NewDummyCache(), 60, zap.NewNop())

	_, err := service.GetOrder(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestGetOrder_IsNeverCached(t *testing.T) {
	repo := seedOrderRepo()
	cache := mocks.NewDummyCache()
	service := NewOrderService(repo, cache, 60, zap.NewNop())

	_, err := service.GetOrder(context.Background(), 1)
	assert.NoError(t, err)
	_, err = service.GetOrder(context.Background(), 1)
	assert.NoError(t, err)

	// El detalle va siempre al Record Store, sin pasar por la caché.
	assert.Equal(t, 2, repo.GetCalls)
	assert.Equal(t, 0, cache.GetCalls)
	assert.Equal(t, 0, cache.SetCalls)
}

func TestGetOrder_EmptyTransactionsSerializeAsEmptyArray(t *testing.T) {
	repo := seedOrderRepo()
	service := NewOrderService(repo, mocks.NewDummyCache(), 60, zap.NewNop())

	detail, err := service.GetOrder(context.Background(), 2)
	assert.NoError(t, err)
	assert.NotNil(t, detail.Transactions)
	assert.Len(t, detail.Transactions, 0)
}

func TestCreateOrder_DefaultsAndOutbox(t *testing.T) {
	repo := seedOrderRepo()
	service := NewOrderService(repo, mocks.NewDummyCache(), 60, zap.NewNop())

	before := time.Now().UTC()
	order, err := service.CreateOrder(context.Background(), 1, nil)
	assert.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.False(t, order.CreatedAt.Before(before))

	// ✅ Verificar que se creó un evento Outbox
	assert.Len(t, repo.Outbox, 1)
	assert.Equal(t, domain.OrderCreated, repo.Outbox[0].EventType)
}

func TestCreateOrder_ExplicitCreatedAt(t *testing.T) {
	repo := seedOrderRepo()
	service := NewOrderService(repo, mocks.NewDummyCache(), 60, zap.NewNop())

	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	order, err := service.CreateOrder(context.Background(), 1, &at)
	assert.NoError(t, err)
	assert.Equal(t, at, order.CreatedAt)
}
