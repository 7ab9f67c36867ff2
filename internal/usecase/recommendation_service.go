package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vonadraft/draft-assistant/internal/domain/draft"
	"github.com/vonadraft/draft-assistant/internal/domain/player"
	"github.com/vonadraft/draft-assistant/internal/domain/valuation"
)

const defaultRecommendationLimit = 25

// Recommendation is one board row: a player with the scarcity-adjusted value
// of taking them right now.
type Recommendation struct {
	Player    player.Player
	VONAScore float64
}

// RecommendationBoard is the valuation output for the slot on the clock.
type RecommendationBoard struct {
	Current         CurrentPickInfo
	PicksUntilTurn  int
	Recommendations []Recommendation
}

type RecommendationFilter struct {
	Position string
	Limit    int
}

// RecommendationService recomputes the VONA board on every request. Results
// depend on draft state at computation time and are never cached or stored.
type RecommendationService struct {
	drafts *DraftService
}

func NewRecommendationService(drafts *DraftService) *RecommendationService {
	return &RecommendationService{drafts: drafts}
}

func (s *RecommendationService) Board(ctx context.Context, sessionID string, filter RecommendationFilter) (RecommendationBoard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecommendationService.Board")
	defer span.End()

	var position player.Position
	if filter.Position != "" {
		position = player.Position(strings.ToUpper(strings.TrimSpace(filter.Position)))
		if _, ok := player.AllPositions[position]; !ok {
			return RecommendationBoard{}, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, filter.Position)
		}
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}

	detail, err := s.drafts.GetSession(ctx, sessionID)
	if err != nil {
		return RecommendationBoard{}, err
	}
	session := detail.Session

	current, err := s.drafts.CurrentPick(ctx, sessionID)
	if err != nil {
		return RecommendationBoard{}, err
	}
	if current.Complete {
		return RecommendationBoard{Current: current}, nil
	}

	available, err := s.drafts.AvailablePlayers(ctx, sessionID)
	if err != nil {
		return RecommendationBoard{}, err
	}

	scores := valuation.VONAScores(valuation.Input{
		CurrentPick: session.CurrentPick,
		NumTeams:    session.Config.NumTeams,
		DraftType:   session.Config.Type,
		Available:   available,
	})

	rows := make([]Recommendation, 0, len(available))
	for _, p := range available {
		if position != "" && p.Position != position {
			continue
		}
		rows = append(rows, Recommendation{
			Player:    p,
			VONAScore: scores[p.ID],
		})
	}

	if position != "" && len(rows) == 0 {
		return RecommendationBoard{}, fmt.Errorf("%w: %s", valuation.ErrEmptyPool, position)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].VONAScore != rows[j].VONAScore {
			return rows[i].VONAScore > rows[j].VONAScore
		}
		if rows[i].Player.ValueScore != rows[j].Player.ValueScore {
			return rows[i].Player.ValueScore > rows[j].Player.ValueScore
		}
		left, right := rows[i].Player.ADP, rows[j].Player.ADP
		switch {
		case left == nil:
			return false
		case right == nil:
			return true
		default:
			return *left < *right
		}
	})

	if len(rows) > limit {
		rows = rows[:limit]
	}

	return RecommendationBoard{
		Current:         current,
		PicksUntilTurn:  draft.PicksUntilNextTurn(session.CurrentPick, session.Config.NumTeams, session.Config.Type),
		Recommendations: rows,
	}, nil
}
