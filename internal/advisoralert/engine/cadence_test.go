package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldEscalate(t *testing.T) {
	tests := []struct {
		days, start, interval int
		want                  bool
	}{
		{days: 6, start: 7, interval: 3, want: false},
		{days: 7, start: 7, interval: 3, want: true},
		{days: 8, start: 7, interval: 3, want: false},
		{days: 9, start: 7, interval: 3, want: false},
		{days: 10, start: 7, interval: 3, want: true},
		{days: 13, start: 7, interval: 3, want: true},
		{days: 3, start: 3, interval: 3, want: true},
		{days: 4, start: 3, interval: 3, want: false},
		{days: 6, start: 3, interval: 3, want: true},
		{days: 5, start: 3, interval: 0, want: false},
	}

	for _, tt := range tests {
		got := shouldEscalate(tt.days, tt.start, tt.interval)
		assert.Equal(t, tt.want, got, "shouldEscalate(%d, %d, %d)", tt.days, tt.start, tt.interval)
	}
}
