package domain

import (
	"fmt"
	"strconv"
	"time"

	sharedDomain "github.com/davicafu/mirtech-api/internal/shared/domain"
)

// OrderKind es el namespace de las claves de caché de pedidos.
const OrderKind = "orders"

// DateLayout es el formato de los filtros de fecha del boundary.
const DateLayout = "2006-01-02"

var orderSortFields = map[string]struct{}{
	"id":         {},
	"created_at": {},
}

// DateRange es un rango inclusivo sobre created_at, ya normalizado: End
// cubre hasta el final del día indicado.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// OrderFilter es la especificación de consulta del listado de pedidos.
type OrderFilter struct {
	Username *string    // subcadena sobre el nombre del dueño
	Range    *DateRange // nil si el rango no aplica

	Sort       sharedDomain.Sort
	Pagination sharedDomain.Pagination
}

// NewOrderFilter normaliza los parámetros crudos del boundary.
//
// El rango de fechas solo aplica con ambos extremos presentes; un rango
// parcial se ignora sin error. Una fecha no parseable sí es fatal
// (ErrInvalidDateRange). El extremo final se extiende al final del día
// (00:00:00 del día siguiente menos un segundo) para que un filtro con
// granularidad de día incluya la fecha final completa.
func NewOrderFilter(username, startDate, endDate, sortBy, sortOrder string, offset, limit int) (OrderFilter, error) {
	f := OrderFilter{
		Sort:       sharedDomain.NewSort(sortBy, sortOrder, orderSortFields),
		Pagination: sharedDomain.NewPagination(offset, limit),
	}
	if username != "" {
		f.Username = &username
	}

	if startDate != "" && endDate != "" {
		start, err := time.Parse(DateLayout, startDate)
		if err != nil {
			return OrderFilter{}, fmt.Errorf("%w: %q", ErrInvalidDateRange, startDate)
		}
		end, err := time.Parse(DateLayout, endDate)
		if err != nil {
			return OrderFilter{}, fmt.Errorf("%w: %q", ErrInvalidDateRange, endDate)
		}
		f.Range = &DateRange{
			Start: start,
			End:   end.AddDate(0, 0, 1).Add(-time.Second),
		}
	}

	return f, nil
}

// CacheKey deriva la clave del listado con el orden de campos fijo.
func (f OrderFilter) CacheKey() string {
	var start, end string
	if f.Range != nil {
		start = f.Range.Start.Format(DateLayout)
		end = f.Range.End.Format(DateLayout)
	}
	return sharedDomain.CacheKey(OrderKind,
		sharedDomain.StrOrEmpty(f.Username),
		start,
		end,
		f.Sort.Field,
		f.Sort.Order(),
		strconv.Itoa(f.Pagination.Offset),
		strconv.Itoa(f.Pagination.Limit),
	)
}
