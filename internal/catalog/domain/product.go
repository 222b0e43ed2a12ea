package domain

// Product representa un producto del catálogo. Es una instantánea inmutable
// de la fila en el Record Store; los campos opcionales serializan como null.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Category    *string `json:"category"`
}
