package mocks

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	platformCache "github.com/davicafu/mirtech-api/internal/shared/infra/platform/cache"
)

// DummyCache es un mock de caché en memoria, genérico y seguro para
// concurrencia. Sin TTL: las entradas viven hasta que se borran.
type DummyCache struct {
	store map[string][]byte
	mu    sync.RWMutex

	// Contadores para asserts de hit/miss y de escritura.
	GetCalls int
	SetCalls int
}

var _ platformCache.Cache = (*DummyCache)(nil)

func NewDummyCache() *DummyCache {
	return &DummyCache{
		store: make(map[string][]byte),
	}
}

func (c *DummyCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.GetCalls++

	data, ok := c.store[key]
	if !ok {
		return false, nil // Cache miss
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil // Cache hit
}

func (c *DummyCache) Set(ctx context.Context, key string, val interface{}, ttlSecs int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.SetCalls++

	data, err := json.Marshal(val)
	if err != nil {
		return err
	}

	c.store[key] = data
	return nil
}

func (c *DummyCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	return nil
}

// SetForTest inserta una entrada directamente, sin pasar por los contadores.
func (c *DummyCache) SetForTest(key string, val interface{}) {
	data, _ := json.Marshal(val)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = data
}

// Contains indica si la clave existe, para asserts sobre qué se cacheó.
func (c *DummyCache) Contains(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.store[key]
	return ok
}

// ErrCacheDown es el error que devuelve FailingCache en cada operación.
var ErrCacheDown = errors.New("cache down")

// FailingCache simula una caché caída: Get y Set fallan siempre.
// Los contadores permiten verificar que tras un Get fallido no se
// intenta ninguna escritura.
type FailingCache struct {
	GetCalls int
	SetCalls int
}

var _ platformCache.Cache = (*FailingCache)(nil)

func (c *FailingCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.GetCalls++
	return false, ErrCacheDown
}

func (c *FailingCache) Set(ctx context.Context, key string, val interface{}, ttlSecs int) error {
	c.SetCalls++
	return ErrCacheDown
}

func (c *FailingCache) Delete(ctx context.Context, key string) error {
	return ErrCacheDown
}
