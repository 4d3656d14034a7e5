package util

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundPercent(t *testing.T) {
	tests := []struct {
		name        string
		part, whole int
		want        int
	}{
		{"full", 5, 5, 100},
		{"zero part", 0, 5, 0},
		{"zero whole", 3, 0, 0},
		{"negative whole", 3, -1, 0},
		{"half rounds up", 1, 8, 13},
		{"rounds down", 1, 3, 33},
		{"rounds up", 2, 3, 67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundPercent(tt.part, tt.whole))
		})
	}
}

func TestNewULID_ParsesAndSorts(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	first := NewULIDAt(at)
	second := NewULIDAt(at)

	parsed, err := ulid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(at), parsed.Time())
	assert.Less(t, first, second)
	assert.Len(t, NewULID(), 26)
}
