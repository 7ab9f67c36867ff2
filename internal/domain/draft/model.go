package draft

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidConfig  = errors.New("invalid draft configuration")
	ErrSlotTaken      = errors.New("pick slot already filled")
	ErrPlayerDrafted  = errors.New("player already drafted")
	ErrUnknownPlayer  = errors.New("unknown player")
	ErrNoPicks        = errors.New("no picks to undo")
	ErrSessionClosed  = errors.New("draft session is not active")
	ErrDraftComplete  = errors.New("draft is complete")
	ErrUnknownSession = errors.New("unknown draft session")
)

// Type selects how team order changes between rounds.
type Type string

const (
	TypeSnake    Type = "snake"
	TypeStraight Type = "straight"
)

// Status tracks the lifecycle of a draft session.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPaused    Status = "paused"
)

// Config is the immutable shape of a draft: created once per setup.
type Config struct {
	ID        string
	Name      string
	NumTeams  int
	NumRounds int
	Type      Type
	CreatedAt time.Time
}

func (c Config) Validate() error {
	if c.NumTeams < 1 {
		return fmt.Errorf("%w: num_teams must be >= 1, got %d", ErrInvalidConfig, c.NumTeams)
	}
	if c.NumRounds < 1 {
		return fmt.Errorf("%w: num_rounds must be >= 1, got %d", ErrInvalidConfig, c.NumRounds)
	}
	if c.Type != TypeSnake && c.Type != TypeStraight {
		return fmt.Errorf("%w: draft type must be snake or straight, got %q", ErrInvalidConfig, c.Type)
	}

	return nil
}

// TotalPicks is the length of the full pick schedule.
func (c Config) TotalPicks() int {
	return c.NumTeams * c.NumRounds
}

// Session is one live run of a draft against a Config.
type Session struct {
	ID          string
	ConfigID    string
	Config      Config
	Name        string
	CurrentPick int
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Complete reports whether every slot in the schedule has been filled.
func (s Session) Complete() bool {
	return s.CurrentPick > s.Config.TotalPicks()
}

// Pick records that a schedule slot was filled by a player. Value and VONA
// scores are captured at pick time for later review; they are not kept fresh.
type Pick struct {
	ID         string
	SessionID  string
	PickNumber int
	Round      int
	TeamNumber int
	PlayerID   string
	PlayerName string
	Position   string
	ValueScore float64
	VONAScore  float64
	PickedAt   time.Time
}

// TeamName labels one franchise slot within a session.
type TeamName struct {
	SessionID  string
	TeamNumber int
	Name       string
}

// Settings holds per-session user preferences.
type Settings struct {
	SessionID    string
	MyTeamNumber *int
	Notes        string
	UpdatedAt    time.Time
}
