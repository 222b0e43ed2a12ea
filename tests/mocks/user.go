package mocks

import (
	"context"
	"sort"
	"sync"

	sharedDomain "github.com/davicafu/mirtech-api/internal/shared/domain"
	userDomain "github.com/davicafu/mirtech-api/internal/user/domain"
)

// InMemoryUserRepo simula UserRepository con outbox incluido. Asigna IDs
// autoincrementales igual que las tablas reales.
type InMemoryUserRepo struct {
	Users  []userDomain.User
	Outbox []sharedDomain.OutboxEvent
	nextID int64
	mu     sync.Mutex

	ListCalls  int
	CountCalls int
}

var _ userDomain.UserRepository = (*InMemoryUserRepo)(nil)

func NewInMemoryUserRepo(users ...userDomain.User) *InMemoryUserRepo {
	r := &InMemoryUserRepo{nextID: 1}
	for _, u := range users {
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
		r.Users = append(r.Users, u)
	}
	return r
}

func (r *InMemoryUserRepo) filtered(f userDomain.UserFilter) []userDomain.User {
	var list []userDomain.User
	for _, u := range r.Users {
		if f.Search != nil && !containsFold(u.Name, *f.Search) {
			continue
		}
		if f.Email != nil && !containsFold(u.Email, *f.Email) {
			continue
		}
		list = append(list, u)
	}
	return list
}

func (r *InMemoryUserRepo) List(ctx context.Context, f userDomain.UserFilter) ([]userDomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ListCalls++
	list := r.filtered(f)

	if f.Sort.Field != "" {
		sort.SliceStable(list, func(i, j int) bool {
			var less bool
			switch f.Sort.Field {
			case "name":
				less = list[i].Name < list[j].Name
			case "email":
				less = list[i].Email < list[j].Email
			default:
				less = list[i].ID < list[j].ID
			}
			if f.Sort.Desc {
				return !less
			}
			return less
		})
	}

	return paginate(list, f.Pagination.Offset, f.Pagination.Limit), nil
}

func (r *InMemoryUserRepo) Count(ctx context.Context, f userDomain.UserFilter) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.CountCalls++
	return len(r.filtered(f)), nil
}

func (r *InMemoryUserRepo) Create(ctx context.Context, u *userDomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.Users {
		if existing.Email == u.Email {
			return userDomain.ErrUserAlreadyExists
		}
	}

	u.ID = r.nextID
	r.nextID++
	r.Users = append(r.Users, *u)
	r.Outbox = append(r.Outbox, userDomain.NewUserCreatedEvent(u))
	return nil
}
