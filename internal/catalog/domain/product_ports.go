package domain

import (
	"context"
)

// ProductRepository define las lecturas persistentes para Product.
type ProductRepository interface {
	// List devuelve la página filtrada, ordenada y paginada según el filtro.
	List(ctx context.Context, f ProductFilter) ([]Product, error)

	// Count devuelve el total de productos que cumplen el filtro,
	// ignorando la paginación.
	Count(ctx context.Context, f ProductFilter) (int, error)
}
