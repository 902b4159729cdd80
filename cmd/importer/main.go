// Command importer copies the openfootball JSON corpus into postgres so the API
// can run with DATA_SOURCE=postgres.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/worldcup-analytics/internal/app"
	"github.com/riskibarqy/worldcup-analytics/internal/config"
	"github.com/riskibarqy/worldcup-analytics/internal/infrastructure/dataset"
	"github.com/riskibarqy/worldcup-analytics/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/worldcup-analytics/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := logging.NewJSON(cfg.LogLevel).With("component", "importer")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	started := time.Now()

	loadCtx, cancel := context.WithTimeout(ctx, cfg.DatasetLoadTimeout)
	defer cancel()

	loader := dataset.NewLoader(dataset.Config{
		Dir:     cfg.DatasetsDir,
		Years:   cfg.DatasetYears,
		Workers: cfg.DatasetLoadWorkers,
	}, logger)
	corpus, err := loader.Load(loadCtx)
	if err != nil {
		return err
	}

	db, err := app.OpenDB(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := postgres.NewMatchWriter(db).Import(ctx, corpus); err != nil {
		return err
	}

	logger.Info("corpus imported",
		"matches", len(corpus.Matches),
		"teams", len(corpus.Teams),
		"tournaments", len(corpus.TeamsByYear),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return nil
}
