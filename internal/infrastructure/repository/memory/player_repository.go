package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vonadraft/draft-assistant/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	byID    map[string]player.Player
	ordered []string
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	repo := &PlayerRepository{
		byID: make(map[string]player.Player, len(players)),
	}
	for _, p := range players {
		if _, seen := repo.byID[p.ID]; !seen {
			repo.ordered = append(repo.ordered, p.ID)
		}
		repo.byID[p.ID] = p
	}
	return repo
}

func (r *PlayerRepository) ListAll(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.ordered))
	for _, id := range r.ordered {
		out = append(out, r.byID[id])
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[playerID]
	return p, ok, nil
}

func (r *PlayerRepository) ListByPosition(_ context.Context, position player.Position) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, id := range r.ordered {
		if p := r.byID[id]; p.Position == position {
			out = append(out, p)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Projection > out[j].Projection
	})

	return out, nil
}

func (r *PlayerRepository) UpsertBatch(_ context.Context, players []player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range players {
		if _, seen := r.byID[p.ID]; !seen {
			r.ordered = append(r.ordered, p.ID)
		}
		r.byID[p.ID] = p
	}

	return nil
}

func (r *PlayerRepository) UpdateValueScores(_ context.Context, scoreByID map[string]float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, score := range scoreByID {
		p, ok := r.byID[id]
		if !ok {
			continue
		}
		p.ValueScore = score
		r.byID[id] = p
	}

	return nil
}
