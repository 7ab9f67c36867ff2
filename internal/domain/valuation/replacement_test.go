package valuation

import (
	"testing"

	"github.com/vonadraft/draft-assistant/internal/domain/player"
)

func TestReplacementValue(t *testing.T) {
	pool := []player.Player{
		{ID: "rb3", Projection: 180},
		{ID: "rb1", Projection: 250},
		{ID: "rb4", Projection: 140},
		{ID: "rb2", Projection: 220},
	}

	tests := []struct {
		name string
		rank int
		want float64
	}{
		{name: "first", rank: 1, want: 250},
		{name: "third", rank: 3, want: 180},
		{name: "last", rank: 4, want: 140},
		{name: "pool smaller than rank", rank: 5, want: 0},
		{name: "rank zero", rank: 0, want: 0},
		{name: "negative rank", rank: -2, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ReplacementValue(pool, tc.rank); got != tc.want {
				t.Fatalf("ReplacementValue(rank=%d) = %v, want %v", tc.rank, got, tc.want)
			}
		})
	}
}

func TestReplacementValueEmptyPool(t *testing.T) {
	if got := ReplacementValue(nil, 12); got != 0 {
		t.Fatalf("ReplacementValue(empty pool) = %v, want 0", got)
	}
}

func TestValueScore(t *testing.T) {
	if got := ValueScore(250, 140); got != 110 {
		t.Fatalf("ValueScore(250, 140) = %v, want 110", got)
	}
	if got := ValueScore(100, 140); got != -40 {
		t.Fatalf("ValueScore(100, 140) = %v, want -40", got)
	}
	// A zero baseline means the pool was too shallow to set one; the score
	// stays neutral instead of inflating to the raw projection.
	if got := ValueScore(250, 0); got != 0 {
		t.Fatalf("ValueScore(250, 0) = %v, want 0", got)
	}
}
