package valuation

import (
	"errors"
	"sort"

	"github.com/vonadraft/draft-assistant/internal/domain/draft"
	"github.com/vonadraft/draft-assistant/internal/domain/player"
)

// ErrEmptyPool reports that no players remain at a queried position.
var ErrEmptyPool = errors.New("no players left at position")

// Input is a snapshot of draft state for one valuation pass. Available keeps
// the caller's ordering; ties in value are broken by that ordering.
type Input struct {
	CurrentPick int
	NumTeams    int
	DraftType   draft.Type
	Available   []player.Player
}

// VONAScores computes Value Over Next Available for every available player.
//
// The engine predicts which players disappear before the team on the clock
// picks again (lowest ADP first, players without ADP never predicted gone),
// counts predicted losses per position, and scores each player against the
// value left at their position once those losses happen. A position absent
// from the predicted-gone set scores zero: no scarcity pressure before the
// next turn. Pure function; results go stale the moment a pick is recorded.
func VONAScores(in Input) map[string]float64 {
	out := make(map[string]float64, len(in.Available))
	if len(in.Available) == 0 {
		return out
	}

	gone := predictedGone(in.Available, draft.PicksUntilNextTurn(in.CurrentPick, in.NumTeams, in.DraftType))

	counts := make(map[player.Position]int, len(player.AllPositions))
	for _, p := range gone {
		counts[p.Position]++
	}

	scarcity := make(map[player.Position]int, len(counts))
	for pos, count := range counts {
		if count > 0 {
			scarcity[pos] = count + 1
		}
	}

	byPosition := rankByValue(in.Available)

	for _, p := range in.Available {
		rank := scarcity[p.Position]
		if rank == 0 {
			out[p.ID] = 0
			continue
		}

		ranked := byPosition[p.Position]
		// Fewer players than the scarcity rank: baseline falls to the
		// lowest-ranked player still available at the position.
		idx := rank - 1
		if idx >= len(ranked) {
			idx = len(ranked) - 1
		}
		out[p.ID] = p.ValueScore - ranked[idx].ValueScore
	}

	return out
}

// predictedGone returns the gap players expected to be drafted before the
// current team's next turn, ordered by ADP.
func predictedGone(available []player.Player, gap int) []player.Player {
	withADP := make([]player.Player, 0, len(available))
	for _, p := range available {
		if p.ADP != nil {
			withADP = append(withADP, p)
		}
	}

	sort.SliceStable(withADP, func(i, j int) bool {
		return *withADP[i].ADP < *withADP[j].ADP
	})

	if gap > len(withADP) {
		gap = len(withADP)
	}
	if gap < 0 {
		gap = 0
	}

	return withADP[:gap]
}

// rankByValue groups the pool by position, each group stably sorted by value
// score descending.
func rankByValue(available []player.Player) map[player.Position][]player.Player {
	byPosition := make(map[player.Position][]player.Player)
	for _, p := range available {
		byPosition[p.Position] = append(byPosition[p.Position], p)
	}

	for pos := range byPosition {
		ranked := byPosition[pos]
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].ValueScore > ranked[j].ValueScore
		})
		byPosition[pos] = ranked
	}

	return byPosition
}
