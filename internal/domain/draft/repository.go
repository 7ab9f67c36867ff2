package draft

import "context"

// Repository describes draft persistence needs from use cases. Implementations
// back it with postgres in production and an in-memory store in tests.
type Repository interface {
	CreateConfig(ctx context.Context, cfg Config) error
	GetConfig(ctx context.Context, configID string) (Config, bool, error)
	DeleteConfig(ctx context.Context, configID string) error

	CreateSession(ctx context.Context, session Session) error
	GetSession(ctx context.Context, sessionID string) (Session, bool, error)
	ListSessions(ctx context.Context) ([]Session, error)
	UpdateSessionProgress(ctx context.Context, sessionID string, currentPick int, status Status) error
	DeleteSession(ctx context.Context, sessionID string) error

	InsertPick(ctx context.Context, pick Pick) error
	DeletePick(ctx context.Context, sessionID string, pickNumber int) error
	ListPicks(ctx context.Context, sessionID string) ([]Pick, error)

	ReplaceTeamNames(ctx context.Context, sessionID string, names []TeamName) error
	ListTeamNames(ctx context.Context, sessionID string) ([]TeamName, error)

	GetSettings(ctx context.Context, sessionID string) (Settings, bool, error)
	UpsertSettings(ctx context.Context, settings Settings) error
}
