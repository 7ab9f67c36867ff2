package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/vonadraft/draft-assistant/internal/domain/player"
	"github.com/vonadraft/draft-assistant/internal/infrastructure/repository/memory"
	"github.com/vonadraft/draft-assistant/internal/platform/logging"
)

type stubFeed struct {
	projections map[player.Position][]FeedPlayer
	adp         map[string]float64
	adpErr      error
	fetchErr    map[player.Position]error
}

func (f *stubFeed) FetchProjections(_ context.Context, pos player.Position) ([]FeedPlayer, error) {
	if err := f.fetchErr[pos]; err != nil {
		return nil, err
	}
	return f.projections[pos], nil
}

func (f *stubFeed) FetchADP(context.Context) (map[string]float64, error) {
	if f.adpErr != nil {
		return nil, f.adpErr
	}
	return f.adp, nil
}

func TestIngestionService_SyncProjections(t *testing.T) {
	feed := &stubFeed{
		projections: map[player.Position][]FeedPlayer{
			player.PositionQuarterback: {
				{Name: "Josh Allen", Team: "BUF", Projection: 388.4},
				{Name: "Lamar Jackson", Team: "BAL", Projection: 381.2},
			},
			player.PositionRunningBack: {
				{Name: "Bijan Robinson", Team: "ATL", Projection: 289.7},
			},
		},
		adp: map[string]float64{
			"Josh Allen":     22.0,
			"Bijan Robinson": 1.8,
		},
	}
	playerRepo := memory.NewPlayerRepository(nil)
	svc := NewIngestionService(feed, playerRepo, nil, nil, 4, logging.NewNop())

	result, err := svc.SyncProjections(t.Context(), SyncInput{
		Positions: []player.Position{player.PositionQuarterback, player.PositionRunningBack},
	})
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	if result.TaskCount != 2 || result.SuccessCount != 2 || result.FailedCount != 0 {
		t.Fatalf("unexpected counts: tasks=%d success=%d failed=%d", result.TaskCount, result.SuccessCount, result.FailedCount)
	}
	if len(result.Tasks) != 2 {
		t.Fatalf("unexpected task rows: %d", len(result.Tasks))
	}

	p, exists, err := playerRepo.GetByID(t.Context(), "josh-allen-qb")
	if err != nil || !exists {
		t.Fatalf("expected josh-allen-qb in catalog: exists=%v err=%v", exists, err)
	}
	if p.ADP == nil || *p.ADP != 22.0 {
		t.Fatalf("ADP not filled in from feed: %v", p.ADP)
	}
	if p.Team != "BUF" || p.Projection != 388.4 {
		t.Fatalf("unexpected catalog row: %+v", p)
	}

	// Lamar has no ADP row upstream: the catalog entry stays unranked.
	p, exists, err = playerRepo.GetByID(t.Context(), "lamar-jackson-qb")
	if err != nil || !exists {
		t.Fatalf("expected lamar-jackson-qb in catalog: exists=%v err=%v", exists, err)
	}
	if p.ADP != nil {
		t.Fatalf("expected nil ADP, got %v", *p.ADP)
	}
}

func TestIngestionService_SyncProjections_DefaultsToAllPositions(t *testing.T) {
	feed := &stubFeed{adp: map[string]float64{}}
	svc := NewIngestionService(feed, memory.NewPlayerRepository(nil), nil, nil, 2, logging.NewNop())

	result, err := svc.SyncProjections(t.Context(), SyncInput{})
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if result.TaskCount != len(player.PositionOrder) {
		t.Fatalf("unexpected task count: got=%d want=%d", result.TaskCount, len(player.PositionOrder))
	}
	if result.WorkerCount != 2 {
		t.Fatalf("unexpected worker count: got=%d want=2", result.WorkerCount)
	}
}

func TestIngestionService_SyncProjections_SkipsInvalidRows(t *testing.T) {
	feed := &stubFeed{
		projections: map[player.Position][]FeedPlayer{
			player.PositionKicker: {
				{Name: "Good Kicker", Team: "DAL", Projection: 140},
				{Name: "", Team: "NYJ", Projection: 120},
				{Name: "Bad Projection", Team: "SF", Projection: -5},
			},
		},
		adp: map[string]float64{},
	}
	playerRepo := memory.NewPlayerRepository(nil)
	svc := NewIngestionService(feed, playerRepo, nil, nil, 1, logging.NewNop())

	result, err := svc.SyncProjections(t.Context(), SyncInput{
		Positions: []player.Position{player.PositionKicker},
	})
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if result.Tasks[0].Records != 1 {
		t.Fatalf("unexpected record count: got=%d want=1", result.Tasks[0].Records)
	}

	players, err := playerRepo.ListAll(t.Context())
	if err != nil {
		t.Fatalf("list players failed: %v", err)
	}
	if len(players) != 1 || players[0].ID != "good-kicker-k" {
		t.Fatalf("unexpected catalog contents: %+v", players)
	}
}

func TestIngestionService_SyncProjections_ReportsTaskFailures(t *testing.T) {
	feed := &stubFeed{
		projections: map[player.Position][]FeedPlayer{
			player.PositionQuarterback: {{Name: "Josh Allen", Team: "BUF", Projection: 388.4}},
		},
		adp: map[string]float64{},
		fetchErr: map[player.Position]error{
			player.PositionRunningBack: errors.New("upstream timeout"),
		},
	}
	svc := NewIngestionService(feed, memory.NewPlayerRepository(nil), nil, nil, 2, logging.NewNop())

	result, err := svc.SyncProjections(t.Context(), SyncInput{
		Positions: []player.Position{player.PositionQuarterback, player.PositionRunningBack},
	})
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if result.SuccessCount != 1 || result.FailedCount != 1 {
		t.Fatalf("unexpected counts: success=%d failed=%d", result.SuccessCount, result.FailedCount)
	}

	var failed *SyncTaskResult
	for i := range result.Tasks {
		if result.Tasks[i].Status == syncStatusFailed {
			failed = &result.Tasks[i]
		}
	}
	if failed == nil {
		t.Fatalf("expected a failed task row")
	}
	if failed.Position != "RB" || failed.Message == "" {
		t.Fatalf("unexpected failed row: %+v", failed)
	}
}

func TestIngestionService_SyncProjections_FeedUnavailable(t *testing.T) {
	svc := NewIngestionService(nil, memory.NewPlayerRepository(nil), nil, nil, 2, logging.NewNop())

	_, err := svc.SyncProjections(t.Context(), SyncInput{})
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestIngestionService_SyncProjections_ADPFetchFailure(t *testing.T) {
	feed := &stubFeed{adpErr: errors.New("rate limited")}
	svc := NewIngestionService(feed, memory.NewPlayerRepository(nil), nil, nil, 2, logging.NewNop())

	_, err := svc.SyncProjections(t.Context(), SyncInput{})
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestCatalogID(t *testing.T) {
	tests := []struct {
		name string
		pos  player.Position
		want string
	}{
		{name: "Ja'Marr Chase", pos: player.PositionWideReceiver, want: "jamarr-chase-wr"},
		{name: "Amon-Ra St. Brown", pos: player.PositionWideReceiver, want: "amon-ra-st-brown-wr"},
		{name: "  C.J. Stroud ", pos: player.PositionQuarterback, want: "cj-stroud-qb"},
		{name: "49ers D/ST", pos: player.PositionDefense, want: "49ers-d-st-dst"},
	}

	for _, tc := range tests {
		if got := catalogID(tc.name, tc.pos); got != tc.want {
			t.Fatalf("catalogID(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
