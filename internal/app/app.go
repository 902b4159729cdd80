package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/worldcup-analytics/internal/config"
	"github.com/riskibarqy/worldcup-analytics/internal/domain/match"
	"github.com/riskibarqy/worldcup-analytics/internal/infrastructure/dataset"
	"github.com/riskibarqy/worldcup-analytics/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/worldcup-analytics/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/worldcup-analytics/internal/interfaces/httpapi"
	"github.com/riskibarqy/worldcup-analytics/internal/platform/cache"
	idgen "github.com/riskibarqy/worldcup-analytics/internal/platform/id"
	"github.com/riskibarqy/worldcup-analytics/internal/platform/logging"
	"github.com/riskibarqy/worldcup-analytics/internal/platform/resilience"
	"github.com/riskibarqy/worldcup-analytics/internal/usecase"
)

// NewHTTPServer loads the tournament corpus once, freezes it into an in-memory
// snapshot and wires the HTTP stack on top of it. A failed load is logged and
// the server still starts; every data endpoint then answers 503.
//
// The returned cleanup releases the database and cache connections.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Warn("cleanup failed", "error", err)
			}
		}
	}

	source, closeSource, err := newMatchSource(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if closeSource != nil {
		closers = append(closers, closeSource)
	}

	corpus := loadCorpus(ctx, cfg, source, logger)
	snapshot := memory.NewSnapshot(corpus)
	matchRepo := memory.NewMatchRepository(snapshot)
	teamRepo := memory.NewTeamRepository(snapshot)
	playerRepo := memory.NewPlayerRepository(snapshot)

	resultCache, closeCache := newResultCache(ctx, cfg, logger)
	if closeCache != nil {
		closers = append(closers, closeCache)
	}

	matchSvc := usecase.NewMatchService(matchRepo)
	teamSvc := usecase.NewTeamService(teamRepo, matchRepo, resultCache)
	goalSvc := usecase.NewGoalService(matchRepo, resultCache)
	playerSvc := usecase.NewPlayerService(playerRepo, matchRepo)

	handler := httpapi.NewHandler(matchSvc, teamSvc, goalSvc, playerSvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		CompressionLevel:   cfg.CompressionLevel,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		IDs:                idgen.NewUUIDGenerator(),
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func newMatchSource(cfg config.Config, logger *logging.Logger) (match.Source, func() error, error) {
	switch cfg.DataSource {
	case config.DataSourcePostgres:
		db, err := OpenDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("match source selected", "source", config.DataSourcePostgres, "db_name", dbNameFromURL(cfg.DBURL), "dsn", redactDBURL(cfg.DBURL))
		return postgres.NewMatchSource(db, cfg.DatasetYears), db.Close, nil
	default:
		logger.Info("match source selected", "source", config.DataSourceJSON, "dir", cfg.DatasetsDir)
		return dataset.NewLoader(dataset.Config{
			Dir:     cfg.DatasetsDir,
			Years:   cfg.DatasetYears,
			Workers: cfg.DatasetLoadWorkers,
		}, logger), nil, nil
	}
}

func loadCorpus(ctx context.Context, cfg config.Config, source match.Source, logger *logging.Logger) match.Corpus {
	loadCtx, cancel := context.WithTimeout(ctx, cfg.DatasetLoadTimeout)
	defer cancel()

	corpus, err := source.Load(loadCtx)
	if err != nil {
		logger.Error("load match corpus failed, serving without data",
			"error", err,
			"source", cfg.DataSource,
			"timeout", errors.Is(err, context.DeadlineExceeded),
		)
		return match.Corpus{}
	}

	logger.Info("match corpus loaded",
		"source", cfg.DataSource,
		"matches", len(corpus.Matches),
		"teams", len(corpus.Teams),
		"tournaments", len(corpus.TeamsByYear),
	)
	return corpus
}

// newResultCache returns nil when caching is disabled or redis is unreachable;
// services treat a nil cache as a pass-through.
func newResultCache(ctx context.Context, cfg config.Config, logger *logging.Logger) (*cache.Cache, func() error) {
	if !cfg.CacheEnabled {
		logger.Info("result cache disabled", "reason", "CACHE_ENABLED=false")
		return nil, nil
	}

	if cfg.CacheBackend != config.CacheBackendRedis {
		return cache.New(cache.NewStore(cfg.CacheTTL), logger), nil
	}

	store, err := cache.NewRedisStore(ctx, cache.RedisConfig{
		URL:       cfg.RedisURL,
		KeyPrefix: cfg.RedisKeyPrefix,
		TTL:       cfg.CacheTTL,
		Circuit: resilience.CircuitBreakerConfig{
			Enabled:          cfg.RedisCircuitEnabled,
			FailureThreshold: cfg.RedisCircuitFailureCount,
			OpenTimeout:      cfg.RedisCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.RedisCircuitHalfOpenMax,
			OnStateChange: func(from, to resilience.CircuitState) {
				logger.Warn("redis circuit state changed", "from", string(from), "to", string(to))
			},
		},
	})
	if err != nil {
		logger.Warn("redis cache unavailable, falling back to memory", "error", err)
		return cache.New(cache.NewStore(cfg.CacheTTL), logger), nil
	}

	logger.Info("result cache enabled", "backend", config.CacheBackendRedis, "ttl", cfg.CacheTTL.String())
	return cache.New(store, logger), store.Close
}

// OpenDB opens the traced postgres pool used by the match source and the importer.
func OpenDB(cfg config.Config) (*sqlx.DB, error) {
	db, err := openTracedDB(NormalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary), dbNameFromURL(cfg.DBURL))
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}
