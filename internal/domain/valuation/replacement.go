package valuation

import (
	"context"
	"sort"
	"time"

	"github.com/vonadraft/draft-assistant/internal/domain/player"
)

// Level is the replacement baseline for one position: the projection of the
// Rank-th best player, below which a roster spot adds no value.
type Level struct {
	Position  player.Position
	Rank      int
	Value     float64
	Notes     string
	UpdatedAt time.Time
}

// LevelRepository stores replacement baselines per position.
type LevelRepository interface {
	ListLevels(ctx context.Context) ([]Level, error)
	UpdateRank(ctx context.Context, position player.Position, rank int) error
	UpdateValue(ctx context.Context, position player.Position, value float64) error
}

// ReplacementValue picks the rank-th best projection from a position pool.
// Pools smaller than the rank yield zero, so every player there scores at
// full projection value.
func ReplacementValue(pool []player.Player, rank int) float64 {
	if rank < 1 || len(pool) < rank {
		return 0
	}

	projections := make([]float64, len(pool))
	for i, p := range pool {
		projections[i] = p.Projection
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(projections)))

	return projections[rank-1]
}

// ValueScore converts a raw projection into value over replacement.
func ValueScore(projection, replacementValue float64) float64 {
	if replacementValue == 0 {
		return 0
	}
	return projection - replacementValue
}
