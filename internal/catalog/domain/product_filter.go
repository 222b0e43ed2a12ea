package domain

import (
	"strconv"

	sharedDomain "github.com/davicafu/mirtech-api/internal/shared/domain"
)

// ProductKind es el namespace de las claves de caché de productos.
const ProductKind = "products"

// Campos por los que se puede ordenar el listado. Un sort_by fuera de esta
// lista degrada a "sin orden" en NewSort, nunca a reflexión sobre columnas.
var productSortFields = map[string]struct{}{
	"id":    {},
	"name":  {},
	"price": {},
}

// ProductFilter es la especificación de consulta del listado de productos:
// filtros de subcadena (nil = ausente), orden normalizado y paginación.
type ProductFilter struct {
	Category *string
	Search   *string // subcadena sobre name, case-insensitive

	Sort       sharedDomain.Sort
	Pagination sharedDomain.Pagination
}

// NewProductFilter normaliza los parámetros crudos del boundary.
func NewProductFilter(category, search, sortBy, sortOrder string, offset, limit int) ProductFilter {
	f := ProductFilter{
		Sort:       sharedDomain.NewSort(sortBy, sortOrder, productSortFields),
		Pagination: sharedDomain.NewPagination(offset, limit),
	}
	if category != "" {
		f.Category = &category
	}
	if search != "" {
		f.Search = &search
	}
	return f
}

// CacheKey deriva la clave del listado. El orden de los campos es fijo:
// filtros, orden y paginación, siempre sobre los valores ya normalizados.
func (f ProductFilter) CacheKey() string {
	return sharedDomain.CacheKey(ProductKind,
		sharedDomain.StrOrEmpty(f.Category),
		sharedDomain.StrOrEmpty(f.Search),
		f.Sort.Field,
		f.Sort.Order(),
		strconv.Itoa(f.Pagination.Offset),
		strconv.Itoa(f.Pagination.Limit),
	)
}
