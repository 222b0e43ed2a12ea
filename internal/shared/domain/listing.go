package domain

// ---------------- Paginación y orden ----------------

const DefaultLimit = 10

// Pagination describe límite y offset. No hay límite máximo de página.
type Pagination struct {
	Offset int
	Limit  int
}

// NewPagination normaliza los valores crudos del boundary:
// offset negativo pasa a 0 y limit no positivo al valor por defecto.
func NewPagination(offset, limit int) Pagination {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return Pagination{Offset: offset, Limit: limit}
}

// Sort indica campo y dirección. Un Field vacío significa "sin orden":
// el repositorio devuelve el orden natural de la tabla.
type Sort struct {
	Field string
	Desc  bool
}

// NewSort valida sortBy contra la lista blanca de campos de la entidad.
// Un campo desconocido degrada silenciosamente a "sin orden", nunca a error.
func NewSort(sortBy, sortOrder string, allowed map[string]struct{}) Sort {
	if _, ok := allowed[sortBy]; !ok {
		sortBy = ""
	}
	return Sort{Field: sortBy, Desc: sortOrder == "desc"}
}

func (s Sort) Order() string {
	if s.Desc {
		return "desc"
	}
	return "asc"
}

// ---------------- Payload de listado ----------------

// ListPage es la forma {items, total} que devuelven todos los listados.
// Total cuenta los registros filtrados ignorando la paginación.
type ListPage[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewListPage garantiza que items serialice como [] y nunca como null.
func NewListPage[T any](items []T, total int) ListPage[T] {
	if items == nil {
		items = []T{}
	}
	return ListPage[T]{Items: items, Total: total}
}
