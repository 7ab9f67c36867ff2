package postgres

import (
	"database/sql"
	"time"

	"github.com/vonadraft/draft-assistant/internal/domain/player"
)

type playerTableModel struct {
	ID         string          `db:"id"`
	Name       string          `db:"name"`
	Team       string          `db:"team"`
	Position   string          `db:"position"`
	ByeWeek    sql.NullInt64   `db:"bye_week"`
	Projection float64         `db:"projection"`
	ADP        sql.NullFloat64 `db:"adp"`
	ValueScore float64         `db:"value_score"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

func playerFromRow(row playerTableModel) player.Player {
	p := player.Player{
		ID:         row.ID,
		Name:       row.Name,
		Team:       row.Team,
		Position:   player.Position(row.Position),
		Projection: row.Projection,
		ValueScore: row.ValueScore,
	}
	if row.ByeWeek.Valid {
		week := int(row.ByeWeek.Int64)
		p.ByeWeek = &week
	}
	if row.ADP.Valid {
		adp := row.ADP.Float64
		p.ADP = &adp
	}
	return p
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
