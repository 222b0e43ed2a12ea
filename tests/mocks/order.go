package mocks

import (
	"context"
	"sort"
	"sync"

	orderDomain "github.com/davicafu/mirtech-api/internal/order/domain"
	sharedDomain "github.com/davicafu/mirtech-api/internal/shared/domain"
)

// InMemoryOrderRepo simula OrderRepository. Resuelve el nombre del dueño y
// el producto de cada transacción desde mapas, como harían los LEFT JOIN.
type InMemoryOrderRepo struct {
	Orders       []orderDomain.Order
	Transactions []orderDomain.TransactionRow
	Usernames    map[int64]string  // user_id → name
	Products     map[int64]struct { // product_id → datos resueltos
		Name  string
		Price float64
	}
	Outbox []sharedDomain.OutboxEvent
	nextID int64
	mu     sync.Mutex

	ListCalls  int
	CountCalls int
	GetCalls   int
}

var _ orderDomain.OrderRepository = (*InMemoryOrderRepo)(nil)

func NewInMemoryOrderRepo() *InMemoryOrderRepo {
	return &InMemoryOrderRepo{
		Usernames: make(map[int64]string),
		Products: make(map[int64]struct {
			Name  string
			Price float64
		}),
		nextID: 1,
	}
}

// AddOrder inserta un pedido directamente, sin outbox, para preparar tests.
func (r *InMemoryOrderRepo) AddOrder(o orderDomain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.ID >= r.nextID {
		r.nextID = o.ID + 1
	}
	r.Orders = append(r.Orders, o)
}

func (r *InMemoryOrderRepo) resolve(o orderDomain.Order) orderDomain.OrderRow {
	row := orderDomain.OrderRow{ID: o.ID, UserID: o.UserID, CreatedAt: o.CreatedAt}
	if name, ok := r.Usernames[o.UserID]; ok {
		row.Username = &name
	}
	return row
}

func (r *InMemoryOrderRepo) filtered(f orderDomain.OrderFilter) []orderDomain.OrderRow {
	var list []orderDomain.OrderRow
	for _, o := range r.Orders {
		row := r.resolve(o)
		if f.Username != nil {
			if row.Username == nil || !containsFold(*row.Username, *f.Username) {
				continue
			}
		}
		if f.Range != nil {
			if o.CreatedAt.Before(f.Range.Start) || o.CreatedAt.After(f.Range.End) {
				continue
			}
		}
		list = append(list, row)
	}
	return list
}

func (r *InMemoryOrderRepo) List(ctx context.Context, f orderDomain.OrderFilter) ([]orderDomain.OrderRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ListCalls++
	list := r.filtered(f)

	if f.Sort.Field != "" {
		sort.SliceStable(list, func(i, j int) bool {
			var less bool
			switch f.Sort.Field {
			case "created_at":
				less = list[i].CreatedAt.Before(list[j].CreatedAt)
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

func (r *InMemoryOrderRepo) Count(ctx context.Context, f orderDomain.OrderFilter) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.CountCalls++
	return len(r.filtered(f)), nil
}

func (r *InMemoryOrderRepo) GetByID(ctx context.Context, id int64) (*orderDomain.OrderRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.GetCalls++
	for _, o := range r.Orders {
		if o.ID == id {
			row := r.resolve(o)
			return &row, nil
		}
	}
	return nil, orderDomain.ErrOrderNotFound
}

func (r *InMemoryOrderRepo) ListTransactions(ctx context.Context, orderID int64) ([]orderDomain.TransactionRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var list []orderDomain.TransactionRow
	for _, tx := range r.Transactions {
		if tx.OrderID != orderID {
			continue
		}
		if p, ok := r.Products[tx.ProductID]; ok {
			name, price := p.Name, p.Price
			tx.ProductName = &name
			tx.ProductPrice = &price
		}
		list = append(list, tx)
	}
	return list, nil
}

func (r *InMemoryOrderRepo) Create(ctx context.Context, o *orderDomain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = r.nextID
	r.nextID++
	r.Orders = append(r.Orders, *o)
	r.Outbox = append(r.Outbox, orderDomain.NewOrderCreatedEvent(o))
	return nil
}
