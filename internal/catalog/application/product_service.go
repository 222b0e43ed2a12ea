package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/davicafu/mirtech-api/internal/catalog/domain"
	sharedDomain "github.com/davicafu/mirtech-api/internal/shared/domain"
	platformCache "github.com/davicafu/mirtech-api/internal/shared/infra/platform/cache"
)

// ProductService define los casos de uso de lectura del catálogo.
type ProductService struct {
	repo    domain.ProductRepository
	cache   platformCache.Cache
	ttlSecs int
	log     *zap.Logger
}

func NewProductService(repo domain.ProductRepository, cache platformCache.Cache, ttlSecs int, log *zap.Logger) *ProductService {
	return &ProductService{
		repo:    repo,
		cache:   cache,
		ttlSecs: ttlSecs,
		log:     log,
	}
}

// ListProducts resuelve el listado con cache-aside: las dos consultas al
// Record Store (página y total) solo se ejecutan en un miss.
func (s *ProductService) ListProducts(ctx context.Context, f domain.ProductFilter) (sharedDomain.ListPage[domain.Product], error) {
	return platformCache.GetOrFetch(ctx, s.cache, f.CacheKey(), s.ttlSecs, s.log,
		func(ctx context.Context) (sharedDomain.ListPage[domain.Product], error) {
			var zero sharedDomain.ListPage[domain.Product]

			items, err := s.repo.List(ctx, f)
			if err != nil {
				return zero, err
			}

			// Total sobre el filtro sin paginar: no depende de skip/limit.
			total, err := s.repo.Count(ctx, f)
			if err != nil {
				return zero, err
			}

			return sharedDomain.NewListPage(items, total), nil
		})
}
