package app

import (
	"fmt"
	"net/http"
	"strings"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"github.com/vonadraft/draft-assistant/external/fantasypros"
	"github.com/vonadraft/draft-assistant/internal/config"
	"github.com/vonadraft/draft-assistant/internal/domain/draft"
	"github.com/vonadraft/draft-assistant/internal/domain/player"
	"github.com/vonadraft/draft-assistant/internal/domain/valuation"
	"github.com/vonadraft/draft-assistant/internal/infrastructure/repository/memory"
	"github.com/vonadraft/draft-assistant/internal/infrastructure/repository/postgres"
	"github.com/vonadraft/draft-assistant/internal/interfaces/httpapi"
	"github.com/vonadraft/draft-assistant/internal/platform/cache"
	idgen "github.com/vonadraft/draft-assistant/internal/platform/id"
	"github.com/vonadraft/draft-assistant/internal/platform/logging"
	"github.com/vonadraft/draft-assistant/internal/usecase"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
)

type repositories struct {
	players player.Repository
	drafts  draft.Repository
	levels  valuation.LevelRepository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	playerSvc := usecase.NewPlayerService(repos.players, store)
	replacementSvc := usecase.NewReplacementService(repos.players, repos.levels, playerSvc, logger)
	draftSvc := usecase.NewDraftService(repos.drafts, repos.players, idgen.NewRandomGenerator(), logger)
	recommendationSvc := usecase.NewRecommendationService(draftSvc)

	var ingestionSvc *usecase.IngestionService
	if cfg.FeedEnabled {
		feed := fantasypros.NewClient(fantasypros.ClientConfig{
			BaseURL:       cfg.FeedBaseURL,
			APIKey:        cfg.FeedAPIKey,
			Timeout:       cfg.FeedTimeout,
			MaxRetries:    cfg.FeedMaxRetries,
			RatePerSecond: cfg.FeedRatePerSecond,
			Logger:        logger,
		})
		ingestionSvc = usecase.NewIngestionService(feed, repos.players, replacementSvc, playerSvc, cfg.SyncWorkers, logger)
	}

	handler := httpapi.NewHandler(playerSvc, replacementSvc, draftSvc, recommendationSvc, ingestionSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	dbURL := strings.TrimSpace(cfg.DBURL)
	if dbURL == "" {
		logger.Info("db url not configured, using in-memory repositories with seed data")
		return repositories{
			players: memory.NewPlayerRepository(memory.SeedPlayers()),
			drafts:  memory.NewDraftRepository(),
			levels:  memory.NewLevelRepository(memory.SeedLevels()),
		}, nil
	}

	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
	)
	if err != nil {
		return repositories{}, fmt.Errorf("connect postgres: %w", err)
	}
	logger.Info("postgres connected", "db_name", dbNameFromURL(dbURL))

	return repositories{
		players: postgres.NewPlayerRepository(db),
		drafts:  postgres.NewDraftRepository(db),
		levels:  postgres.NewLevelRepository(db),
	}, nil
}
