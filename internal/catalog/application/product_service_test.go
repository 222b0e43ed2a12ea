package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/davicafu/mirtech-api/internal/catalog/domain"
	"github.com/davicafu/mirtech-api/tests/mocks"
)

func strPtr(s string) *string { return &s }

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Compact Widget", Price: 9.99, Category: strPtr("tools")},
		{ID: 2, Name: "Deluxe Widget", Price: 19.99, Category: strPtr("tools")},
		{ID: 3, Name: "Eco Lamp", Price: 14.50, Category: strPtr("furniture")},
		{ID: 4, Name: "Smart Drill", Price: 89.00, Category: strPtr("tools")},
	}
}

func TestListProducts_FilterAndTotal(t *testing.T) {
	repo := mocks.NewInMemoryProductRepo(sampleProducts()...)
	service := NewProductService(repo, mocks.NewDummyCache(), 60, zap.NewNop())

	// "widget" dentro de "tools": coincide por subcadena case-insensitive.
	f := domain.NewProductFilter("tools", "widget", "id", "asc", 0, 10)
	page, err := service.ListProducts(context.Background(), f)
	assert.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, "Compact Widget", page.Items[0].Name)
}

func TestListProducts_TotalIgnoresPagination(t *testing.T) {
	repo := mocks.NewInMemoryProductRepo(sampleProducts()...)
	service := NewProductService(repo, mocks.NewDummyCache(), 60, zap.NewNop())

	f := domain.NewProductFilter("tools", "", "id", "asc", 0, 2)
	page, err := service.ListProducts(context.Background(), f)
	assert.NoError(t, err)
	assert.Len(t, page.Items, 2)
	// Total cuenta el filtro completo, no la página.
	assert.Equal(t, 3, page.Total)
}

func TestListProducts_SecondCallIsCacheHit(t *testing.T) {
	repo := mocks.NewInMemoryProductRepo(sampleProducts()...)
	cache := mocks.NewDummyCache()
	service := NewProductService(repo, cache, 60, zap.NewNop())

	f := domain.NewProductFilter("tools", "", "price", "desc", 0, 10)

	page1, err := service.ListProducts(context.Background(), f)
	assert.NoError(t, err)
	assert.Equal(t, 1, repo.ListCalls)
	assert.True(t, cache.Contains(f.CacheKey()))

	// La segunda llamada con el mismo filtro no vuelve a tocar el repo.
	page2, err := service.ListProducts(context.Background(), f)
	assert.NoError(t, err)
	assert.Equal(t, 1, repo.ListCalls)
	assert.Equal(t, 1, repo.CountCalls)
	assert.Equal(t, page1, page2)
}

func TestListProducts_DistinctFiltersUseDistinctKeys(t *testing.T) {
	repo := mocks.NewInMemoryProductRepo(sampleProducts()...)
	cache := mocks.NewDummyCache()
	service := NewProductService(repo, cache, 60, zap.NewNop())

	f1 := domain.NewProductFilter("tools", "", "id", "asc", 0, 10)
	f2 := domain.NewProductFilter("furniture", "", "id", "asc", 0, 10)

	_, err := service.ListProducts(context.Background(), f1)
	assert.NoError(t, err)
	_, err = service.ListProducts(context.Background(), f2)
	assert.NoError(t, err)

	// Dos filtros distintos: dos misses, dos consultas al repo.
	assert.Equal(t, 2, repo.ListCalls)
	assert.Equal(t, 2, cache.SetCalls)
}

func TestListProducts_CacheDownDegradesToDirectQuery(t *testing.T) {
	repo := mocks.NewInMemoryProductRepo(sampleProducts()...)
	cache := &mocks.FailingCache{}
	service := NewProductService(repo, cache, 60, zap.NewNop())

	f := domain.NewProductFilter("", "", "id", "asc", 0, 10)
	page, err := service.ListProducts(context.Background(), f)

	// La caché caída nunca es fatal: se responde con la consulta directa.
	assert.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 1, cache.GetCalls)
	// Y tras el Get fallido no se intenta escribir.
	assert.Equal(t, 0, cache.SetCalls)
}

func TestListProducts_EmptyResultStillCaches(t *testing.T) {
	repo := mocks.NewInMemoryProductRepo(sampleProducts()...)
	cache := mocks.NewDummyCache()
	service := NewProductService(repo, cache, 60, zap.NewNop())

	f := domain.NewProductFilter("books", "", "id", "asc", 0, 10)
	page, err := service.ListProducts(context.Background(), f)
	assert.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Len(t, page.Items, 0)
	assert.Equal(t, 0, page.Total)

	// Un resultado vacío también se cachea.
	assert.True(t, cache.Contains(f.CacheKey()))
	_, err = service.ListProducts(context.Background(), f)
	assert.NoError(t, err)
	assert.Equal(t, 1, repo.ListCalls)
}
