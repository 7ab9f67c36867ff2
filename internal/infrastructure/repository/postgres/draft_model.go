package postgres

import (
	"database/sql"
	"time"

	"github.com/vonadraft/draft-assistant/internal/domain/draft"
)

type draftConfigTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	NumTeams  int       `db:"num_teams"`
	NumRounds int       `db:"num_rounds"`
	DraftType string    `db:"draft_type"`
	CreatedAt time.Time `db:"created_at"`
}

func draftConfigFromRow(row draftConfigTableModel) draft.Config {
	return draft.Config{
		ID:        row.ID,
		Name:      row.Name,
		NumTeams:  row.NumTeams,
		NumRounds: row.NumRounds,
		Type:      draft.Type(row.DraftType),
		CreatedAt: row.CreatedAt,
	}
}

type draftSessionTableModel struct {
	ID          string    `db:"id"`
	ConfigID    string    `db:"config_id"`
	Name        string    `db:"name"`
	CurrentPick int       `db:"current_pick"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`

	ConfigName      string    `db:"config_name"`
	ConfigNumTeams  int       `db:"config_num_teams"`
	ConfigNumRounds int       `db:"config_num_rounds"`
	ConfigDraftType string    `db:"config_draft_type"`
	ConfigCreatedAt time.Time `db:"config_created_at"`
}

func draftSessionFromRow(row draftSessionTableModel) draft.Session {
	return draft.Session{
		ID:          row.ID,
		ConfigID:    row.ConfigID,
		Name:        row.Name,
		CurrentPick: row.CurrentPick,
		Status:      draft.Status(row.Status),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		Config: draft.Config{
			ID:        row.ConfigID,
			Name:      row.ConfigName,
			NumTeams:  row.ConfigNumTeams,
			NumRounds: row.ConfigNumRounds,
			Type:      draft.Type(row.ConfigDraftType),
			CreatedAt: row.ConfigCreatedAt,
		},
	}
}

type draftPickTableModel struct {
	ID         string    `db:"id"`
	SessionID  string    `db:"session_id"`
	PickNumber int       `db:"pick_number"`
	Round      int       `db:"round"`
	TeamNumber int       `db:"team_number"`
	PlayerID   string    `db:"player_id"`
	PlayerName string    `db:"player_name"`
	Position   string    `db:"position"`
	ValueScore float64   `db:"value_score"`
	VONAScore  float64   `db:"vona_score"`
	PickedAt   time.Time `db:"picked_at"`
}

func draftPickFromRow(row draftPickTableModel) draft.Pick {
	return draft.Pick{
		ID:         row.ID,
		SessionID:  row.SessionID,
		PickNumber: row.PickNumber,
		Round:      row.Round,
		TeamNumber: row.TeamNumber,
		PlayerID:   row.PlayerID,
		PlayerName: row.PlayerName,
		Position:   row.Position,
		ValueScore: row.ValueScore,
		VONAScore:  row.VONAScore,
		PickedAt:   row.PickedAt,
	}
}

type draftTeamTableModel struct {
	SessionID  string `db:"session_id"`
	TeamNumber int    `db:"team_number"`
	Name       string `db:"name"`
}

type draftSettingsTableModel struct {
	SessionID    string        `db:"session_id"`
	MyTeamNumber sql.NullInt64 `db:"my_team_number"`
	Notes        string        `db:"notes"`
	UpdatedAt    time.Time     `db:"updated_at"`
}

func draftSettingsFromRow(row draftSettingsTableModel) draft.Settings {
	settings := draft.Settings{
		SessionID: row.SessionID,
		Notes:     row.Notes,
		UpdatedAt: row.UpdatedAt,
	}
	if row.MyTeamNumber.Valid {
		team := int(row.MyTeamNumber.Int64)
		settings.MyTeamNumber = &team
	}
	return settings
}
