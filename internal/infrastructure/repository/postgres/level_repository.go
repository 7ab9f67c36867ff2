package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vonadraft/draft-assistant/internal/domain/player"
	"github.com/vonadraft/draft-assistant/internal/domain/valuation"
	qb "github.com/vonadraft/draft-assistant/internal/platform/querybuilder"
)

type LevelRepository struct {
	db *sqlx.DB
}

type levelTableModel struct {
	Position  string          `db:"position"`
	Rank      int             `db:"replacement_rank"`
	Value     sql.NullFloat64 `db:"replacement_value"`
	Notes     string          `db:"notes"`
	UpdatedAt time.Time       `db:"updated_at"`
}

func NewLevelRepository(db *sqlx.DB) *LevelRepository {
	return &LevelRepository{db: db}
}

func (r *LevelRepository) ListLevels(ctx context.Context) ([]valuation.Level, error) {
	query, args, err := qb.Select("position", "replacement_rank", "replacement_value", "notes", "updated_at").
		From("replacement_levels").
		OrderBy("position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select replacement levels query: %w", err)
	}

	var rows []levelTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select replacement levels: %w", err)
	}

	out := make([]valuation.Level, 0, len(rows))
	for _, row := range rows {
		out = append(out, valuation.Level{
			Position:  player.Position(row.Position),
			Rank:      row.Rank,
			Value:     row.Value.Float64,
			Notes:     row.Notes,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return out, nil
}

func (r *LevelRepository) UpdateRank(ctx context.Context, position player.Position, rank int) error {
	query, args, err := qb.Update("replacement_levels").
		Set("replacement_rank", rank).
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("position", string(position))).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update replacement rank query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update replacement rank: %w", err)
	}
	return nil
}

func (r *LevelRepository) UpdateValue(ctx context.Context, position player.Position, value float64) error {
	query, args, err := qb.Update("replacement_levels").
		Set("replacement_value", value).
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("position", string(position))).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update replacement value query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update replacement value: %w", err)
	}
	return nil
}
