package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKey_Deterministic(t *testing.T) {
	k1 := CacheKey("products", "tools", "", "id", "asc", "0", "10")
	k2 := CacheKey("products", "tools", "", "id", "asc", "0", "10")
	assert.Equal(t, k1, k2)
}

func TestCacheKey_Format(t *testing.T) {
	key := CacheKey("orders", "ana", "2024-01-01", "2024-01-31", "id", "asc", "0", "10")
	assert.True(t, strings.HasPrefix(key, "orders:"))
	// namespace + ":" + hash de 64 bits en hex
	assert.Len(t, key, len("orders:")+16)
}

func TestCacheKey_DistinguishesFields(t *testing.T) {
	base := CacheKey("products", "tools", "", "id", "asc", "0", "10")

	tests := []struct {
		name  string
		other string
	}{
		{"otro namespace", CacheKey("users", "tools", "", "id", "asc", "0", "10")},
		{"otro filtro", CacheKey("products", "toys", "", "id", "asc", "0", "10")},
		{"otro orden", CacheKey("products", "tools", "", "id", "desc", "0", "10")},
		{"otra página", CacheKey("products", "tools", "", "id", "asc", "10", "10")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base, tt.other)
		})
	}
}

func TestStrOrEmpty(t *testing.T) {
	assert.Equal(t, "", StrOrEmpty(nil))

	s := "tools"
	assert.Equal(t, "tools", StrOrEmpty(&s))
}
