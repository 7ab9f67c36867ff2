package draft

import "fmt"

// Slot is one entry in the generated pick schedule.
type Slot struct {
	PickNumber int
	Round      int
	TeamNumber int
}

// GenerateOrder produces the full pick schedule for a config: exactly
// NumTeams*NumRounds slots with contiguous pick numbers starting at 1.
// Straight drafts repeat 1..T every round; snake drafts reverse team order
// on even rounds.
func GenerateOrder(cfg Config) ([]Slot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slots := make([]Slot, 0, cfg.TotalPicks())
	pick := 1
	for round := 1; round <= cfg.NumRounds; round++ {
		reversed := cfg.Type == TypeSnake && round%2 == 0
		for i := 0; i < cfg.NumTeams; i++ {
			team := i + 1
			if reversed {
				team = cfg.NumTeams - i
			}
			slots = append(slots, Slot{
				PickNumber: pick,
				Round:      round,
				TeamNumber: team,
			})
			pick++
		}
	}

	return slots, nil
}

// SlotForPick locates the schedule entry for an overall pick number.
func SlotForPick(cfg Config, pickNumber int) (Slot, error) {
	if err := cfg.Validate(); err != nil {
		return Slot{}, err
	}
	if pickNumber < 1 || pickNumber > cfg.TotalPicks() {
		return Slot{}, fmt.Errorf("%w: pick %d outside schedule of %d", ErrInvalidConfig, pickNumber, cfg.TotalPicks())
	}

	round := (pickNumber-1)/cfg.NumTeams + 1
	posInRound := (pickNumber-1)%cfg.NumTeams + 1

	team := posInRound
	if cfg.Type == TypeSnake && round%2 == 0 {
		team = cfg.NumTeams - posInRound + 1
	}

	return Slot{PickNumber: pickNumber, Round: round, TeamNumber: team}, nil
}

// PicksUntilNextTurn counts the picks strictly between the current pick and
// the same team's next slot. For the team on the clock this is the size of the
// window the VONA engine must predict over.
func PicksUntilNextTurn(currentPick, numTeams int, draftType Type) int {
	posInRound := (currentPick-1)%numTeams + 1
	remainingInRound := numTeams - posInRound

	if draftType == TypeSnake {
		// The same seat picks again mirrored in the next round.
		nextRoundPos := numTeams - posInRound + 1
		return remainingInRound + nextRoundPos - 1
	}

	return remainingInRound + posInRound - 1
}
