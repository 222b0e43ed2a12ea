package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"

	catalogDomain "github.com/davicafu/mirtech-api/internal/catalog/domain"
)

// InMemoryProductRepo simula ProductRepository sobre un slice. Aplica la
// misma semántica que los adaptadores SQL: subcadena case-insensitive,
// orden solo si Sort.Field no está vacío y paginación al final.
type InMemoryProductRepo struct {
	Products []catalogDomain.Product
	mu       sync.Mutex

	// Contadores para verificar que un hit de caché no toca el repo.
	ListCalls  int
	CountCalls int
}

var _ catalogDomain.ProductRepository = (*InMemoryProductRepo)(nil)

func NewInMemoryProductRepo(products ...catalogDomain.Product) *InMemoryProductRepo {
	return &InMemoryProductRepo{Products: products}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (r *InMemoryProductRepo) filtered(f catalogDomain.ProductFilter) []catalogDomain.Product {
	var list []catalogDomain.Product
	for _, p := range r.Products {
		if f.Category != nil && (p.Category == nil || !containsFold(*p.Category, *f.Category)) {
			continue
		}
		if f.Search != nil && !containsFold(p.Name, *f.Search) {
			continue
		}
		list = append(list, p)
	}
	return list
}

func (r *InMemoryProductRepo) List(ctx context.Context, f catalogDomain.ProductFilter) ([]catalogDomain.Product, error) {
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
			case "price":
				less = list[i].Price < list[j].Price
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

func (r *InMemoryProductRepo) Count(ctx context.Context, f catalogDomain.ProductFilter) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.CountCalls++
	return len(r.filtered(f)), nil
}

// paginate recorta una página [offset, offset+limit) sin salirse del slice.
func paginate[T any](list []T, offset, limit int) []T {
	if offset >= len(list) {
		return nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}
