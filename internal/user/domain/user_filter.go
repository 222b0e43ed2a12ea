package domain

import (
	"strconv"

	sharedDomain "github.com/davicafu/mirtech-api/internal/shared/domain"
)

// UserKind es el namespace de las claves de caché de usuarios.
const UserKind = "users"

var userSortFields = map[string]struct{}{
	"id":    {},
	"name":  {},
	"email": {},
}

// UserFilter es la especificación de consulta del listado de usuarios.
type UserFilter struct {
	Search *string // subcadena sobre name, case-insensitive
	Email  *string // subcadena sobre email, case-insensitive

	Sort       sharedDomain.Sort
	Pagination sharedDomain.Pagination
}

// NewUserFilter normaliza los parámetros crudos del boundary.
func NewUserFilter(search, email, sortBy, sortOrder string, offset, limit int) UserFilter {
	f := UserFilter{
		Sort:       sharedDomain.NewSort(sortBy, sortOrder, userSortFields),
		Pagination: sharedDomain.NewPagination(offset, limit),
	}
	if search != "" {
		f.Search = &search
	}
	if email != "" {
		f.Email = &email
	}
	return f
}

// CacheKey deriva la clave del listado con el orden de campos fijo.
func (f UserFilter) CacheKey() string {
	return sharedDomain.CacheKey(UserKind,
		sharedDomain.StrOrEmpty(f.Email),
		sharedDomain.StrOrEmpty(f.Search),
		f.Sort.Field,
		f.Sort.Order(),
		strconv.Itoa(f.Pagination.Offset),
		strconv.Itoa(f.Pagination.Limit),
	)
}
