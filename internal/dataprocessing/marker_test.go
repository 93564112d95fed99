package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindMarkerIndex(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   int
		ok     bool
	}{
		{
			name:   "I marker",
			tokens: []string{"T987", "Widget", "kit", "I", "V", "TAMS1"},
			want:   3,
			ok:     true,
		},
		{
			name:   "S marker",
			tokens: []string{"T987", "Widget", "kit", "S", "V", "TAMS1"},
			want:   3,
			ok:     true,
		},
		{
			name:   "I preferred over S",
			tokens: []string{"T1", "S", "V", "I", "V", "X"},
			want:   3,
			ok:     true,
		},
		{
			name:   "I without V falls through to S",
			tokens: []string{"T1", "I", "beam", "S", "V", "X"},
			want:   3,
			ok:     true,
		},
		{
			name:   "only first I occurrence considered",
			tokens: []string{"T1", "I", "beam", "I", "V", "X"},
			want:   -1,
			ok:     false,
		},
		{
			name:   "no qualifying marker",
			tokens: []string{"T1", "Widget", "kit", "I", "TAMS1"},
			want:   -1,
			ok:     false,
		},
		{
			name:   "marker at end has no companion",
			tokens: []string{"T1", "Widget", "I"},
			want:   -1,
			ok:     false,
		},
		{
			name:   "empty",
			tokens: nil,
			want:   -1,
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindMarkerIndex(tt.tokens)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
