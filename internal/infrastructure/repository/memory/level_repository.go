package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vonadraft/draft-assistant/internal/domain/player"
	"github.com/vonadraft/draft-assistant/internal/domain/valuation"
)

type LevelRepository struct {
	mu     sync.RWMutex
	levels map[player.Position]valuation.Level
	now    func() time.Time
}

func NewLevelRepository(levels []valuation.Level) *LevelRepository {
	repo := &LevelRepository{
		levels: make(map[player.Position]valuation.Level, len(levels)),
		now:    time.Now,
	}
	for _, lvl := range levels {
		repo.levels[lvl.Position] = lvl
	}
	return repo
}

func (r *LevelRepository) ListLevels(_ context.Context) ([]valuation.Level, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]valuation.Level, 0, len(r.levels))
	for _, lvl := range r.levels {
		out = append(out, lvl)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return positionRank(out[i].Position) < positionRank(out[j].Position)
	})

	return out, nil
}

func positionRank(position player.Position) int {
	for i, p := range player.PositionOrder {
		if p == position {
			return i
		}
	}
	return len(player.PositionOrder)
}

func (r *LevelRepository) UpdateRank(_ context.Context, position player.Position, rank int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lvl := r.levels[position]
	lvl.Position = position
	lvl.Rank = rank
	lvl.UpdatedAt = r.now()
	r.levels[position] = lvl
	return nil
}

func (r *LevelRepository) UpdateValue(_ context.Context, position player.Position, value float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lvl := r.levels[position]
	lvl.Position = position
	lvl.Value = value
	lvl.UpdatedAt = r.now()
	r.levels[position] = lvl
	return nil
}
