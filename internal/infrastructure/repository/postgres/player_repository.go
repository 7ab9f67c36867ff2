package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vonadraft/draft-assistant/internal/domain/player"
	qb "github.com/vonadraft/draft-assistant/internal/platform/querybuilder"
)

const upsertBatchSize = 200

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"name",
	"team",
	"position",
	"bye_week",
	"projection",
	"adp",
	"value_score",
	"created_at",
	"updated_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListAll(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		OrderBy("adp ASC NULLS LAST", "projection DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) ListByPosition(ctx context.Context, position player.Position) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("position", string(position))).
		OrderBy("projection DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by position query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by position: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) UpsertBatch(ctx context.Context, players []player.Player) error {
	if len(players) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for start := 0; start < len(players); start += upsertBatchSize {
		end := start + upsertBatchSize
		if end > len(players) {
			end = len(players)
		}
		if err := r.upsertChunk(ctx, players[start:end], now); err != nil {
			return err
		}
	}
	return nil
}

func (r *PlayerRepository) upsertChunk(ctx context.Context, players []player.Player, now time.Time) error {
	builder := qb.InsertInto("players").
		Columns("id", "name", "team", "position", "bye_week", "projection", "adp", "value_score", "created_at", "updated_at")
	for _, p := range players {
		builder.Values(p.ID, p.Name, p.Team, string(p.Position), nullableInt(p.ByeWeek), p.Projection, nullableFloat(p.ADP), p.ValueScore, now, now)
	}
	builder.Suffix(`ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		team = EXCLUDED.team,
		position = EXCLUDED.position,
		bye_week = EXCLUDED.bye_week,
		projection = EXCLUDED.projection,
		adp = EXCLUDED.adp,
		value_score = EXCLUDED.value_score,
		updated_at = EXCLUDED.updated_at`)

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert players query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert players: %w", err)
	}
	return nil
}

func (r *PlayerRepository) UpdateValueScores(ctx context.Context, scoreByID map[string]float64) error {
	if len(scoreByID) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update value scores tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for id, score := range scoreByID {
		query, args, err := qb.Update("players").
			Set("value_score", score).
			Set("updated_at", now).
			Where(qb.Eq("id", id)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build update value score query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("update value score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update value scores tx: %w", err)
	}
	return nil
}
