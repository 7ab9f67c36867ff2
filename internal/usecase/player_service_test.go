package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/vonadraft/draft-assistant/internal/domain/player"
	"github.com/vonadraft/draft-assistant/internal/infrastructure/repository/memory"
	"github.com/vonadraft/draft-assistant/internal/platform/cache"
)

func TestPlayerService_ListPlayers_Filters(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()), nil)

	t.Run("position", func(t *testing.T) {
		players, err := svc.ListPlayers(t.Context(), PlayerFilter{Position: "qb"})
		if err != nil {
			t.Fatalf("list players failed: %v", err)
		}
		if len(players) == 0 {
			t.Fatalf("expected quarterbacks")
		}
		for _, p := range players {
			if p.Position != player.PositionQuarterback {
				t.Fatalf("unexpected position in result: %s", p.Position)
			}
		}
	})

	t.Run("team", func(t *testing.T) {
		players, err := svc.ListPlayers(t.Context(), PlayerFilter{Team: "buf"})
		if err != nil {
			t.Fatalf("list players failed: %v", err)
		}
		for _, p := range players {
			if p.Team != "BUF" {
				t.Fatalf("unexpected team in result: %s", p.Team)
			}
		}
	})

	t.Run("search", func(t *testing.T) {
		players, err := svc.ListPlayers(t.Context(), PlayerFilter{Search: "mahomes"})
		if err != nil {
			t.Fatalf("list players failed: %v", err)
		}
		if len(players) != 1 || players[0].ID != "patrick-mahomes-qb" {
			t.Fatalf("unexpected search result: %+v", players)
		}
	})

	t.Run("unknown position", func(t *testing.T) {
		_, err := svc.ListPlayers(t.Context(), PlayerFilter{Position: "FLEX"})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestPlayerService_GetPlayer(t *testing.T) {
	svc := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()), nil)

	p, err := svc.GetPlayer(t.Context(), "josh-allen-qb")
	if err != nil {
		t.Fatalf("get player failed: %v", err)
	}
	if p.Name != "Josh Allen" {
		t.Fatalf("unexpected player: %+v", p)
	}

	_, err = svc.GetPlayer(t.Context(), "no-such-player")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, err = svc.GetPlayer(t.Context(), "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_CatalogCacheInvalidation(t *testing.T) {
	repo := memory.NewPlayerRepository([]player.Player{
		{ID: "qb1", Name: "QB One", Position: player.PositionQuarterback, Projection: 300},
	})
	store := cache.NewStore(time.Minute)
	svc := NewPlayerService(repo, store)

	players, err := svc.ListPlayers(t.Context(), PlayerFilter{})
	if err != nil {
		t.Fatalf("list players failed: %v", err)
	}
	if len(players) != 1 {
		t.Fatalf("unexpected catalog size: %d", len(players))
	}

	// A repo write behind the cache stays invisible until invalidation.
	err = repo.UpsertBatch(t.Context(), []player.Player{
		{ID: "qb2", Name: "QB Two", Position: player.PositionQuarterback, Projection: 280},
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	players, err = svc.ListPlayers(t.Context(), PlayerFilter{})
	if err != nil {
		t.Fatalf("list players failed: %v", err)
	}
	if len(players) != 1 {
		t.Fatalf("expected cached catalog of 1, got %d", len(players))
	}

	svc.InvalidateCatalog(t.Context())

	players, err = svc.ListPlayers(t.Context(), PlayerFilter{})
	if err != nil {
		t.Fatalf("list players failed: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected refreshed catalog of 2, got %d", len(players))
	}
}
