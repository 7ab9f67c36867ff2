package usecase

import (
	"errors"
	"testing"

	"github.com/vonadraft/draft-assistant/internal/domain/player"
	"github.com/vonadraft/draft-assistant/internal/domain/valuation"
	"github.com/vonadraft/draft-assistant/internal/infrastructure/repository/memory"
	"github.com/vonadraft/draft-assistant/internal/platform/logging"
)

func newReplacementFixture() (*ReplacementService, *memory.PlayerRepository, *memory.LevelRepository) {
	playerRepo := memory.NewPlayerRepository([]player.Player{
		{ID: "qb1", Name: "QB One", Position: player.PositionQuarterback, Projection: 300},
		{ID: "qb2", Name: "QB Two", Position: player.PositionQuarterback, Projection: 280},
		{ID: "qb3", Name: "QB Three", Position: player.PositionQuarterback, Projection: 250},
		{ID: "rb1", Name: "RB One", Position: player.PositionRunningBack, Projection: 200},
	})
	levelRepo := memory.NewLevelRepository([]valuation.Level{
		{Position: player.PositionQuarterback, Rank: 2},
		{Position: player.PositionRunningBack, Rank: 2},
	})

	svc := NewReplacementService(playerRepo, levelRepo, nil, logging.NewNop())
	return svc, playerRepo, levelRepo
}

func TestReplacementService_Recalculate(t *testing.T) {
	svc, playerRepo, levelRepo := newReplacementFixture()

	if err := svc.Recalculate(t.Context()); err != nil {
		t.Fatalf("recalculate failed: %v", err)
	}

	levels, err := levelRepo.ListLevels(t.Context())
	if err != nil {
		t.Fatalf("list levels failed: %v", err)
	}
	valueByPosition := make(map[player.Position]float64, len(levels))
	for _, level := range levels {
		valueByPosition[level.Position] = level.Value
	}
	if got := valueByPosition[player.PositionQuarterback]; got != 280 {
		t.Fatalf("unexpected QB replacement value: got=%v want=280", got)
	}
	// Only one RB in the pool, so a rank of 2 leaves the baseline unset.
	if got := valueByPosition[player.PositionRunningBack]; got != 0 {
		t.Fatalf("unexpected RB replacement value: got=%v want=0", got)
	}

	tests := []struct {
		id   string
		want float64
	}{
		{id: "qb1", want: 20},
		{id: "qb2", want: 0},
		{id: "qb3", want: -30},
		{id: "rb1", want: 0},
	}
	for _, tc := range tests {
		p, exists, err := playerRepo.GetByID(t.Context(), tc.id)
		if err != nil || !exists {
			t.Fatalf("get %s failed: exists=%v err=%v", tc.id, exists, err)
		}
		if p.ValueScore != tc.want {
			t.Fatalf("value score for %s = %v, want %v", tc.id, p.ValueScore, tc.want)
		}
	}
}

func TestReplacementService_UpdateRanks(t *testing.T) {
	svc, playerRepo, levelRepo := newReplacementFixture()

	err := svc.UpdateRanks(t.Context(), map[player.Position]int{
		player.PositionQuarterback: 3,
	})
	if err != nil {
		t.Fatalf("update ranks failed: %v", err)
	}

	levels, err := levelRepo.ListLevels(t.Context())
	if err != nil {
		t.Fatalf("list levels failed: %v", err)
	}
	for _, level := range levels {
		if level.Position != player.PositionQuarterback {
			continue
		}
		if level.Rank != 3 {
			t.Fatalf("unexpected QB rank: got=%d want=3", level.Rank)
		}
		if level.Value != 250 {
			t.Fatalf("unexpected QB replacement value: got=%v want=250", level.Value)
		}
	}

	p, _, err := playerRepo.GetByID(t.Context(), "qb1")
	if err != nil {
		t.Fatalf("get qb1 failed: %v", err)
	}
	if p.ValueScore != 50 {
		t.Fatalf("value score not rescored: got=%v want=50", p.ValueScore)
	}
}

func TestReplacementService_UpdateRanks_Invalid(t *testing.T) {
	svc, _, _ := newReplacementFixture()

	tests := []struct {
		name  string
		ranks map[player.Position]int
	}{
		{name: "empty", ranks: nil},
		{name: "unknown position", ranks: map[player.Position]int{"FLEX": 10}},
		{name: "rank below one", ranks: map[player.Position]int{player.PositionQuarterback: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.UpdateRanks(t.Context(), tc.ranks)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
