package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/davicafu/mirtech-api/internal/order/domain"
	sharedDomain "github.com/davicafu/mirtech-api/internal/shared/domain"
	platformCache "github.com/davicafu/mirtech-api/internal/shared/infra/platform/cache"
)

// OrderService define los casos de uso relacionados con Order.
type OrderService struct {
	repo    domain.OrderRepository
	cache   platformCache.Cache
	ttlSecs int
	log     *zap.Logger
}

func NewOrderService(repo domain.OrderRepository, cache platformCache.Cache, ttlSecs int, log *zap.Logger) *OrderService {
	return &OrderService{
		repo:    repo,
		cache:   cache,
		ttlSecs: ttlSecs,
		log:     log,
	}
}

// ListOrders resuelve el listado con cache-aside. El payload cacheado es el
// mismo que ensambla este servicio; un hit se devuelve sin revalidar.
func (s *OrderService) ListOrders(ctx context.Context, f domain.OrderFilter) (sharedDomain.ListPage[domain.OrderSummary], error) {
	return platformCache.GetOrFetch(ctx, s.cache, f.CacheKey(), s.ttlSecs, s.log,
		func(ctx context.Context) (sharedDomain.ListPage[domain.OrderSummary], error) {
			var zero sharedDomain.ListPage[domain.OrderSummary]

			rows, err := s.repo.List(ctx, f)
			if err != nil {
				return zero, err
			}

			total, err := s.repo.Count(ctx, f)
			if err != nil {
				return zero, err
			}

			return sharedDomain.NewListPage(newOrderSummaries(rows), total), nil
		})
}

// GetOrder devuelve el detalle de un pedido con sus transacciones.
// El detalle no pasa por la caché: siempre consulta el Record Store y
// devuelve ErrOrderNotFound si el pedido no existe.
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*domain.OrderDetail, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	txRows, err := s.repo.ListTransactions(ctx, id)
	if err != nil {
		return nil, err
	}

	return newOrderDetail(row, txRows), nil
}

// CreateOrder inserta el pedido junto a su evento outbox. Los listados
// cacheados no se invalidan: la ventana de staleness es el TTL.
func (s *OrderService) CreateOrder(ctx context.Context, userID int64, createdAt *time.Time) (*domain.Order, error) {
	order := &domain.Order{
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if createdAt != nil {
		order.CreatedAt = *createdAt
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}
