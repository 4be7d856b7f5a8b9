// cmd/menu-ingress/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/menulab/menu-ingress/pkg/config"
	"github.com/menulab/menu-ingress/pkg/connector"
	"github.com/menulab/menu-ingress/pkg/pipeline"
	"github.com/menulab/menu-ingress/pkg/transform"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := buildLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx := context.Background()

	factory := connector.NewFactory(cfg, logger)
	store, err := factory.CreateStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	source, err := factory.CreateSource(ctx, store)
	if err != nil {
		return err
	}
	if cfg.SourceDriver == config.DriverSnowflake {
		defer source.Close()
	}

	// Structural checks before any record is touched.
	if err := source.Validate(); err != nil {
		return fmt.Errorf("source validation failed: %w", err)
	}
	if err := store.EnsureTables(ctx); err != nil {
		return err
	}

	rows, err := source.FetchRawMenus(ctx)
	if err != nil {
		return err
	}

	rules := transform.DefaultRules(time.Now().UTC())
	rules.DateMin = cfg.DateLowerBound

	p, err := pipeline.New(rules, logger, cfg.WorkerPoolSize)
	if err != nil {
		return err
	}

	result, err := p.Clean(ctx, rows)
	if err != nil {
		return fmt.Errorf("clean run aborted: %w", err)
	}

	if _, err := store.InsertCleanMenus(ctx, result.Records, result.RunID, cfg.BatchSize); err != nil {
		return fmt.Errorf("failed to persist cleaned menus: %w", err)
	}
	if err := store.InsertAuditReport(ctx, result.Report, result.RunID); err != nil {
		return fmt.Errorf("failed to persist audit report: %w", err)
	}

	logger.Info("Menu ingress complete",
		zap.String("runID", result.RunID),
		zap.Int("records", len(result.Records)),
		zap.Duration("duration", result.Duration))
	return nil
}

func buildLogger(level, format string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	if format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	return zapCfg.Build()
}
