package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportMode_IsValid(t *testing.T) {
	assert.True(t, TransportCLI.IsValid())
	assert.True(t, TransportNative.IsValid())
	assert.False(t, TransportMode("sdk").IsValid())
	assert.False(t, TransportMode("").IsValid())
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		input string
		want  SortOrder
		ok    bool
	}{
		{"name-ascending", SortOrder{Key: SortByName}, true},
		{"-sort name-descending", SortOrder{Key: SortByName, Descending: true}, true},
		{"-sort date-modified-descending", SortOrder{Key: SortByDateModified, Descending: true}, true},
		{"sort:size-ascending", SortOrder{Key: SortBySize}, true},
		{"  PATH-Ascending ", SortOrder{Key: SortByPath}, true},
		{"run-count-ascending", SortOrder{}, false},
		{"name", SortOrder{}, false},
		{"", SortOrder{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSortOrder(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortOrder_String(t *testing.T) {
	assert.Equal(t, "name-ascending", DefaultSortOrder().String())
	assert.Equal(t, "date-created-descending", SortOrder{Key: SortByDateCreated, Descending: true}.String())
}

func TestQueryOptions_BelowMinimum(t *testing.T) {
	assert.True(t, QueryOptions{}.BelowMinimum(""))
	assert.False(t, QueryOptions{}.BelowMinimum("a"))
	assert.True(t, QueryOptions{MinChars: 3}.BelowMinimum("ab"))
	assert.False(t, QueryOptions{MinChars: 3}.BelowMinimum("abc"))
	// Counted in runes, not bytes.
	assert.True(t, QueryOptions{MinChars: 3}.BelowMinimum("日本"))
}

func TestQueryOptions_EffectiveLimit(t *testing.T) {
	assert.Equal(t, uint32(DefaultMaxResults), QueryOptions{}.EffectiveLimit())
	assert.Equal(t, uint32(DefaultMaxResults), QueryOptions{MaxResults: -5}.EffectiveLimit())
	assert.Equal(t, uint32(25), QueryOptions{MaxResults: 25}.EffectiveLimit())
	if math.MaxInt > math.MaxUint32 {
		assert.Equal(t, uint32(math.MaxUint32), QueryOptions{MaxResults: math.MaxInt}.EffectiveLimit())
	}
}
