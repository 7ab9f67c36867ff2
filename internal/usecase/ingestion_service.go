package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/vonadraft/draft-assistant/internal/domain/player"
	"github.com/vonadraft/draft-assistant/internal/platform/logging"
)

const (
	syncStatusSuccess = "success"
	syncStatusFailed  = "failed"
)

// FeedPlayer is one row from the upstream projection feed, keyed by name and
// position the way the feed publishes it.
type FeedPlayer struct {
	Name       string
	Team       string
	Position   player.Position
	ByeWeek    *int
	Projection float64
	ADP        *float64
}

// ProjectionFeed is what ingestion needs from the upstream data vendor.
type ProjectionFeed interface {
	FetchProjections(ctx context.Context, position player.Position) ([]FeedPlayer, error)
	FetchADP(ctx context.Context) (map[string]float64, error)
}

type SyncInput struct {
	// Positions narrows the sync; empty means every position.
	Positions  []player.Position
	MaxWorkers int
}

type SyncResult struct {
	TaskCount    int              `json:"task_count"`
	SuccessCount int              `json:"success_count"`
	FailedCount  int              `json:"failed_count"`
	WorkerCount  int              `json:"worker_count"`
	Tasks        []SyncTaskResult `json:"tasks"`
}

type SyncTaskResult struct {
	Position   string `json:"position"`
	Status     string `json:"status"`
	Records    int    `json:"records"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// IngestionService pulls projections and ADP from the feed and rebuilds the
// catalog, fanning out one task per position over a bounded worker pool.
type IngestionService struct {
	feed        ProjectionFeed
	playerRepo  player.Repository
	replacement *ReplacementService
	catalog     *PlayerService
	logger      *logging.Logger
	maxWorkers  int
}

func NewIngestionService(
	feed ProjectionFeed,
	playerRepo player.Repository,
	replacement *ReplacementService,
	catalog *PlayerService,
	maxWorkers int,
	logger *logging.Logger,
) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &IngestionService{
		feed:        feed,
		playerRepo:  playerRepo,
		replacement: replacement,
		catalog:     catalog,
		logger:      logger,
		maxWorkers:  maxWorkers,
	}
}

func (s *IngestionService) SyncProjections(ctx context.Context, input SyncInput) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.SyncProjections")
	defer span.End()

	if s.feed == nil {
		return SyncResult{}, fmt.Errorf("%w: projection feed is not configured", ErrDependencyUnavailable)
	}

	positions := input.Positions
	if len(positions) == 0 {
		positions = player.PositionOrder
	}
	for _, pos := range positions {
		if _, ok := player.AllPositions[pos]; !ok {
			return SyncResult{}, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, pos)
		}
	}

	adpByName, err := s.feed.FetchADP(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%w: fetch adp: %v", ErrDependencyUnavailable, err)
	}

	workerCount := input.MaxWorkers
	if workerCount < 1 || workerCount > s.maxWorkers {
		workerCount = s.maxWorkers
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return SyncResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan SyncTaskResult, len(positions))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, pos := range positions {
		pos := pos
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := SyncTaskResult{Position: string(pos)}

			records, taskErr := s.syncPosition(ctx, pos, adpByName)
			row.Records = records
			row.DurationMs = time.Since(start).Milliseconds()
			if taskErr != nil {
				row.Status = syncStatusFailed
				row.Message = taskErr.Error()
				failedCount.Add(1)
			} else {
				row.Status = syncStatusSuccess
				successCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return SyncResult{}, fmt.Errorf("submit sync task: %w", err)
		}
	}

	workers.Wait()
	close(results)

	out := SyncResult{
		TaskCount:   len(positions),
		WorkerCount: workerCount,
	}
	for row := range results {
		out.Tasks = append(out.Tasks, row)
	}
	out.SuccessCount = int(successCount.Load())
	out.FailedCount = int(failedCount.Load())

	if s.catalog != nil {
		s.catalog.InvalidateCatalog(ctx)
	}
	if out.FailedCount == 0 && s.replacement != nil {
		if err := s.replacement.Recalculate(ctx); err != nil {
			return out, fmt.Errorf("recalculate after sync: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "projection sync finished",
		"tasks", out.TaskCount,
		"success", out.SuccessCount,
		"failed", out.FailedCount,
		"workers", out.WorkerCount,
	)

	return out, nil
}

func (s *IngestionService) syncPosition(ctx context.Context, pos player.Position, adpByName map[string]float64) (int, error) {
	rows, err := s.feed.FetchProjections(ctx, pos)
	if err != nil {
		return 0, fmt.Errorf("fetch %s projections: %w", pos, err)
	}

	players := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		p := player.Player{
			ID:         catalogID(row.Name, pos),
			Name:       row.Name,
			Team:       row.Team,
			Position:   pos,
			ByeWeek:    row.ByeWeek,
			Projection: row.Projection,
			ADP:        row.ADP,
		}
		if p.ADP == nil {
			if adp, ok := adpByName[row.Name]; ok {
				p.ADP = &adp
			}
		}
		if err := p.Validate(); err != nil {
			s.logger.WarnContext(ctx, "skipping invalid feed row",
				"position", pos,
				"player", row.Name,
				"error", err,
			)
			continue
		}
		players = append(players, p)
	}

	if err := s.playerRepo.UpsertBatch(ctx, players); err != nil {
		return 0, fmt.Errorf("upsert %s players: %w", pos, err)
	}

	return len(players), nil
}

// catalogID derives a stable ID from the feed's natural key. Feeds key rows
// by display name, so re-ingesting updates in place instead of duplicating.
func catalogID(name string, pos player.Position) string {
	var slug strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			slug.WriteRune(r)
			lastDash = false
		case r == '\'' || r == '.':
			// Dropped outright so "Ja'Marr" and "C.J." collapse cleanly.
		default:
			if !lastDash {
				slug.WriteByte('-')
				lastDash = true
			}
		}
	}

	out := strings.TrimRight(slug.String(), "-")
	return out + "-" + strings.ToLower(string(pos))
}
