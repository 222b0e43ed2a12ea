package application

import (
	"context"

	"go.uber.org/zap"

	sharedDomain "github.com/davicafu/mirtech-api/internal/shared/domain"
	platformCache "github.com/davicafu/mirtech-api/internal/shared/infra/platform/cache"
	"github.com/davicafu/mirtech-api/internal/user/domain"
)

// UserService define los casos de uso relacionados con User.
type UserService struct {
	repo    domain.UserRepository
	cache   platformCache.Cache
	ttlSecs int
	log     *zap.Logger
}

func NewUserService(repo domain.UserRepository, cache platformCache.Cache, ttlSecs int, log *zap.Logger) *UserService {
	return &UserService{
		repo:    repo,
		cache:   cache,
		ttlSecs: ttlSecs,
		log:     log,
	}
}

// ListUsers resuelve el listado con cache-aside.
func (s *UserService) ListUsers(ctx context.Context, f domain.UserFilter) (sharedDomain.ListPage[domain.User], error) {
	return platformCache.GetOrFetch(ctx, s.cache, f.CacheKey(), s.ttlSecs, s.log,
		func(ctx context.Context) (sharedDomain.ListPage[domain.User], error) {
			var zero sharedDomain.ListPage[domain.User]

			items, err := s.repo.List(ctx, f)
			if err != nil {
				return zero, err
			}

			total, err := s.repo.Count(ctx, f)
			if err != nil {
				return zero, err
			}

			return sharedDomain.NewListPage(items, total), nil
		})
}

// CreateUser inserta el usuario junto a su evento outbox. No se invalida
// ninguna caché de listados: la ventana de staleness es el TTL.
func (s *UserService) CreateUser(ctx context.Context, name, email string) (*domain.User, error) {
	user := &domain.User{
		Name:  name,
		Email: email,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
