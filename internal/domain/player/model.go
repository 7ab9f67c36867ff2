package player

import "fmt"

// Position represents NFL roster slots used in fantasy scoring.
type Position string

const (
	PositionQuarterback  Position = "QB"
	PositionRunningBack  Position = "RB"
	PositionWideReceiver Position = "WR"
	PositionTightEnd     Position = "TE"
	PositionKicker       Position = "K"
	PositionDefense      Position = "DST"
)

var AllPositions = map[Position]struct{}{
	PositionQuarterback:  {},
	PositionRunningBack:  {},
	PositionWideReceiver: {},
	PositionTightEnd:     {},
	PositionKicker:       {},
	PositionDefense:      {},
}

// PositionOrder is the canonical ordering used by boards and recalculation loops.
var PositionOrder = []Position{
	PositionQuarterback,
	PositionRunningBack,
	PositionWideReceiver,
	PositionTightEnd,
	PositionKicker,
	PositionDefense,
}

// Player is one draftable entry in the projection catalog. DST entries use the
// team name as the player name, matching upstream projection feeds.
type Player struct {
	ID         string
	Name       string
	Team       string
	Position   Position
	ByeWeek    *int
	Projection float64
	// ADP is nil when the market has no consensus for the player yet.
	ADP        *float64
	ValueScore float64
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.Projection < 0 {
		return fmt.Errorf("player projection cannot be negative")
	}
	if p.ADP != nil && *p.ADP <= 0 {
		return fmt.Errorf("player adp must be greater than zero when set")
	}

	return nil
}
