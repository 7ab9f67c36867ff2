package player

import "context"

// Repository describes catalog persistence needs from use cases.
type Repository interface {
	ListAll(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	ListByPosition(ctx context.Context, position Position) ([]Player, error)
	UpsertBatch(ctx context.Context, players []Player) error
	UpdateValueScores(ctx context.Context, scoreByID map[string]float64) error
}
