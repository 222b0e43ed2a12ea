package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination_Normalization(t *testing.T) {
	tests := []struct {
		name           string
		offset, limit  int
		wantOff, wantL int
	}{
		{"valores válidos", 20, 5, 20, 5},
		{"offset negativo pasa a 0", -3, 5, 0, 5},
		{"limit cero pasa al default", 0, 0, 0, DefaultLimit},
		{"limit negativo pasa al default", 0, -1, 0, DefaultLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.offset, tt.limit)
			assert.Equal(t, tt.wantOff, p.Offset)
			assert.Equal(t, tt.wantL, p.Limit)
		})
	}
}

func TestNewSort_WhiteList(t *testing.T) {
	allowed := map[string]struct{}{"id": {}, "name": {}}

	s := NewSort("name", "desc", allowed)
	assert.Equal(t, "name", s.Field)
	assert.True(t, s.Desc)

	// Campo desconocido degrada a "sin orden", nunca a error.
	s = NewSort("password", "asc", allowed)
	assert.Equal(t, "", s.Field)

	// Cualquier cosa distinta de "desc" es ascendente, incluso "DESC".
	s = NewSort("id", "DESC", allowed)
	assert.False(t, s.Desc)
	assert.Equal(t, "asc", s.Order())
}

func TestNewListPage_NilItemsSerializesAsEmptyArray(t *testing.T) {
	page := NewListPage[int](nil, 0)

	data, err := json.Marshal(page)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"total":0}`, string(data))
}
