package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/vonadraft/draft-assistant/internal/domain/player"
	"github.com/vonadraft/draft-assistant/internal/platform/cache"
)

const catalogCacheKey = "catalog:all"

// PlayerFilter narrows catalog listings.
type PlayerFilter struct {
	Position string
	Team     string
	Search   string
}

// PlayerService serves the read-mostly projection catalog.
type PlayerService struct {
	playerRepo player.Repository
	store      *cache.Store
}

func NewPlayerService(playerRepo player.Repository, store *cache.Store) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		store:      store,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context, filter PlayerFilter) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	players, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	position := player.Position(strings.ToUpper(strings.TrimSpace(filter.Position)))
	if filter.Position != "" {
		if _, ok := player.AllPositions[position]; !ok {
			return nil, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, filter.Position)
		}
	}
	team := strings.ToUpper(strings.TrimSpace(filter.Team))
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	out := make([]player.Player, 0, len(players))
	for _, p := range players {
		if filter.Position != "" && p.Position != position {
			continue
		}
		if team != "" && !strings.EqualFold(p.Team, team) {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}

	return item, nil
}

// InvalidateCatalog drops the cached catalog after ingestion or rescoring.
func (s *PlayerService) InvalidateCatalog(ctx context.Context) {
	if s.store != nil {
		s.store.Delete(ctx, catalogCacheKey)
	}
}

func (s *PlayerService) loadCatalog(ctx context.Context) ([]player.Player, error) {
	if s.store == nil {
		players, err := s.playerRepo.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list players: %w", err)
		}
		return players, nil
	}

	value, err := s.store.GetOrLoad(ctx, catalogCacheKey, func(ctx context.Context) (any, error) {
		players, err := s.playerRepo.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list players: %w", err)
		}
		return players, nil
	})
	if err != nil {
		return nil, err
	}

	players, ok := value.([]player.Player)
	if !ok {
		return nil, fmt.Errorf("unexpected catalog cache entry type %T", value)
	}
	return players, nil
}

func matchesSearch(p player.Player, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Team), search) ||
		strings.Contains(strings.ToLower(string(p.Position)), search)
}
