package usecase

import (
	"context"
	"fmt"

	"github.com/vonadraft/draft-assistant/internal/domain/player"
	"github.com/vonadraft/draft-assistant/internal/domain/valuation"
	"github.com/vonadraft/draft-assistant/internal/platform/logging"
)

// ReplacementService manages per-position replacement baselines and keeps
// catalog value scores consistent with them.
type ReplacementService struct {
	playerRepo player.Repository
	levelRepo  valuation.LevelRepository
	catalog    *PlayerService
	logger     *logging.Logger
}

func NewReplacementService(
	playerRepo player.Repository,
	levelRepo valuation.LevelRepository,
	catalog *PlayerService,
	logger *logging.Logger,
) *ReplacementService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReplacementService{
		playerRepo: playerRepo,
		levelRepo:  levelRepo,
		catalog:    catalog,
		logger:     logger,
	}
}

func (s *ReplacementService) GetLevels(ctx context.Context) ([]valuation.Level, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReplacementService.GetLevels")
	defer span.End()

	levels, err := s.levelRepo.ListLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list replacement levels: %w", err)
	}

	return levels, nil
}

// UpdateRanks sets new replacement ranks and recalculates values and catalog
// scores in the same pass.
func (s *ReplacementService) UpdateRanks(ctx context.Context, rankByPosition map[player.Position]int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReplacementService.UpdateRanks")
	defer span.End()

	if len(rankByPosition) == 0 {
		return fmt.Errorf("%w: at least one position rank is required", ErrInvalidInput)
	}
	for pos, rank := range rankByPosition {
		if _, ok := player.AllPositions[pos]; !ok {
			return fmt.Errorf("%w: unknown position %q", ErrInvalidInput, pos)
		}
		if rank < 1 {
			return fmt.Errorf("%w: replacement rank for %s must be >= 1", ErrInvalidInput, pos)
		}
	}

	for pos, rank := range rankByPosition {
		if err := s.levelRepo.UpdateRank(ctx, pos, rank); err != nil {
			return fmt.Errorf("update replacement rank for %s: %w", pos, err)
		}
	}

	return s.Recalculate(ctx)
}

// Recalculate derives replacement values from current projections, then
// rescores every catalog entry against them.
func (s *ReplacementService) Recalculate(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReplacementService.Recalculate")
	defer span.End()

	levels, err := s.levelRepo.ListLevels(ctx)
	if err != nil {
		return fmt.Errorf("list replacement levels: %w", err)
	}

	valueByPosition := make(map[player.Position]float64, len(levels))
	for _, level := range levels {
		pool, err := s.playerRepo.ListByPosition(ctx, level.Position)
		if err != nil {
			return fmt.Errorf("list %s pool: %w", level.Position, err)
		}

		value := valuation.ReplacementValue(pool, level.Rank)
		valueByPosition[level.Position] = value
		if err := s.levelRepo.UpdateValue(ctx, level.Position, value); err != nil {
			return fmt.Errorf("update replacement value for %s: %w", level.Position, err)
		}

		s.logger.InfoContext(ctx, "replacement value recalculated",
			"position", level.Position,
			"rank", level.Rank,
			"value", value,
			"pool_size", len(pool),
		)
	}

	players, err := s.playerRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list players for rescoring: %w", err)
	}

	scoreByID := make(map[string]float64, len(players))
	for _, p := range players {
		scoreByID[p.ID] = valuation.ValueScore(p.Projection, valueByPosition[p.Position])
	}

	if err := s.playerRepo.UpdateValueScores(ctx, scoreByID); err != nil {
		return fmt.Errorf("update value scores: %w", err)
	}

	if s.catalog != nil {
		s.catalog.InvalidateCatalog(ctx)
	}

	return nil
}
