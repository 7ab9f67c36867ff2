package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vonadraft/draft-assistant/internal/domain/draft"
	qb "github.com/vonadraft/draft-assistant/internal/platform/querybuilder"
)

type DraftRepository struct {
	db *sqlx.DB
}

var draftSessionSelectColumns = []string{
	"s.id",
	"s.config_id",
	"s.name",
	"s.current_pick",
	"s.status",
	"s.created_at",
	"s.updated_at",
	"c.name AS config_name",
	"c.num_teams AS config_num_teams",
	"c.num_rounds AS config_num_rounds",
	"c.draft_type AS config_draft_type",
	"c.created_at AS config_created_at",
}

var draftPickSelectColumns = []string{
	"id",
	"session_id",
	"pick_number",
	"round",
	"team_number",
	"player_id",
	"player_name",
	"position",
	"value_score",
	"vona_score",
	"picked_at",
}

func NewDraftRepository(db *sqlx.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

func (r *DraftRepository) CreateConfig(ctx context.Context, cfg draft.Config) error {
	query, args, err := qb.InsertInto("draft_configs").
		Columns("id", "name", "num_teams", "num_rounds", "draft_type", "created_at").
		Values(cfg.ID, cfg.Name, cfg.NumTeams, cfg.NumRounds, string(cfg.Type), cfg.CreatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert draft config query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert draft config: %w", err)
	}
	return nil
}

func (r *DraftRepository) GetConfig(ctx context.Context, configID string) (draft.Config, bool, error) {
	query, args, err := qb.Select("id", "name", "num_teams", "num_rounds", "draft_type", "created_at").
		From("draft_configs").
		Where(qb.Eq("id", configID)).
		ToSQL()
	if err != nil {
		return draft.Config{}, false, fmt.Errorf("build get draft config query: %w", err)
	}

	var row draftConfigTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return draft.Config{}, false, nil
		}
		return draft.Config{}, false, fmt.Errorf("get draft config: %w", err)
	}

	return draftConfigFromRow(row), true, nil
}

func (r *DraftRepository) DeleteConfig(ctx context.Context, configID string) error {
	query, args, err := qb.DeleteFrom("draft_configs").
		Where(qb.Eq("id", configID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete draft config query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete draft config: %w", err)
	}
	return nil
}

func (r *DraftRepository) CreateSession(ctx context.Context, session draft.Session) error {
	query, args, err := qb.InsertInto("draft_sessions").
		Columns("id", "config_id", "name", "current_pick", "status", "created_at", "updated_at").
		Values(session.ID, session.ConfigID, session.Name, session.CurrentPick, string(session.Status), session.CreatedAt, session.UpdatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert draft session query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert draft session: %w", err)
	}
	return nil
}

func (r *DraftRepository) GetSession(ctx context.Context, sessionID string) (draft.Session, bool, error) {
	query, args, err := qb.Select(draftSessionSelectColumns...).
		From("draft_sessions s JOIN draft_configs c ON c.id = s.config_id").
		Where(qb.Eq("s.id", sessionID)).
		ToSQL()
	if err != nil {
		return draft.Session{}, false, fmt.Errorf("build get draft session query: %w", err)
	}

	var row draftSessionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return draft.Session{}, false, nil
		}
		return draft.Session{}, false, fmt.Errorf("get draft session: %w", err)
	}

	return draftSessionFromRow(row), true, nil
}

func (r *DraftRepository) ListSessions(ctx context.Context) ([]draft.Session, error) {
	query, args, err := qb.Select(draftSessionSelectColumns...).
		From("draft_sessions s JOIN draft_configs c ON c.id = s.config_id").
		OrderBy("s.created_at DESC", "s.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list draft sessions query: %w", err)
	}

	var rows []draftSessionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list draft sessions: %w", err)
	}

	out := make([]draft.Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, draftSessionFromRow(row))
	}
	return out, nil
}

func (r *DraftRepository) UpdateSessionProgress(ctx context.Context, sessionID string, currentPick int, status draft.Status) error {
	query, args, err := qb.Update("draft_sessions").
		Set("current_pick", currentPick).
		Set("status", string(status)).
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("id", sessionID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update draft session query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update draft session: %w", err)
	}
	return nil
}

func (r *DraftRepository) DeleteSession(ctx context.Context, sessionID string) error {
	query, args, err := qb.DeleteFrom("draft_sessions").
		Where(qb.Eq("id", sessionID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete draft session query: %w", err)
	}

	// Picks, team names, and settings cascade with the session row.
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete draft session: %w", err)
	}
	return nil
}

func (r *DraftRepository) InsertPick(ctx context.Context, pick draft.Pick) error {
	query, args, err := qb.InsertInto("draft_picks").
		Columns("id", "session_id", "pick_number", "round", "team_number", "player_id", "player_name", "position", "value_score", "vona_score", "picked_at").
		Values(pick.ID, pick.SessionID, pick.PickNumber, pick.Round, pick.TeamNumber, pick.PlayerID, pick.PlayerName, pick.Position, pick.ValueScore, pick.VONAScore, pick.PickedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert draft pick query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert draft pick: %w", err)
	}
	return nil
}

func (r *DraftRepository) DeletePick(ctx context.Context, sessionID string, pickNumber int) error {
	query, args, err := qb.DeleteFrom("draft_picks").
		Where(
			qb.Eq("session_id", sessionID),
			qb.Eq("pick_number", pickNumber),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete draft pick query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete draft pick: %w", err)
	}
	return nil
}

func (r *DraftRepository) ListPicks(ctx context.Context, sessionID string) ([]draft.Pick, error) {
	query, args, err := qb.Select(draftPickSelectColumns...).From("draft_picks").
		Where(qb.Eq("session_id", sessionID)).
		OrderBy("pick_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list draft picks query: %w", err)
	}

	var rows []draftPickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list draft picks: %w", err)
	}

	out := make([]draft.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, draftPickFromRow(row))
	}
	return out, nil
}

func (r *DraftRepository) ReplaceTeamNames(ctx context.Context, sessionID string, names []draft.TeamName) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace team names tx: %w", err)
	}
	defer tx.Rollback()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("draft_teams").
		Where(qb.Eq("session_id", sessionID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete team names query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("delete team names: %w", err)
	}

	if len(names) > 0 {
		builder := qb.InsertInto("draft_teams").Columns("session_id", "team_number", "name")
		for _, n := range names {
			builder.Values(sessionID, n.TeamNumber, n.Name)
		}
		insertQuery, insertArgs, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert team names query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("insert team names: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace team names tx: %w", err)
	}
	return nil
}

func (r *DraftRepository) ListTeamNames(ctx context.Context, sessionID string) ([]draft.TeamName, error) {
	query, args, err := qb.Select("session_id", "team_number", "name").
		From("draft_teams").
		Where(qb.Eq("session_id", sessionID)).
		OrderBy("team_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team names query: %w", err)
	}

	var rows []draftTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list team names: %w", err)
	}

	out := make([]draft.TeamName, 0, len(rows))
	for _, row := range rows {
		out = append(out, draft.TeamName{
			SessionID:  row.SessionID,
			TeamNumber: row.TeamNumber,
			Name:       row.Name,
		})
	}
	return out, nil
}

func (r *DraftRepository) GetSettings(ctx context.Context, sessionID string) (draft.Settings, bool, error) {
	query, args, err := qb.Select("session_id", "my_team_number", "notes", "updated_at").
		From("draft_settings").
		Where(qb.Eq("session_id", sessionID)).
		ToSQL()
	if err != nil {
		return draft.Settings{}, false, fmt.Errorf("build get draft settings query: %w", err)
	}

	var row draftSettingsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return draft.Settings{}, false, nil
		}
		return draft.Settings{}, false, fmt.Errorf("get draft settings: %w", err)
	}

	return draftSettingsFromRow(row), true, nil
}

func (r *DraftRepository) UpsertSettings(ctx context.Context, settings draft.Settings) error {
	query, args, err := qb.InsertInto("draft_settings").
		Columns("session_id", "my_team_number", "notes", "updated_at").
		Values(settings.SessionID, nullableTeamNumber(settings.MyTeamNumber), settings.Notes, settings.UpdatedAt).
		Suffix(`ON CONFLICT (session_id) DO UPDATE SET
			my_team_number = EXCLUDED.my_team_number,
			notes = EXCLUDED.notes,
			updated_at = EXCLUDED.updated_at`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert draft settings query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert draft settings: %w", err)
	}
	return nil
}

func nullableTeamNumber(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
