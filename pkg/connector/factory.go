// pkg/connector/factory.go
package connector

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/menulab/menu-ingress/pkg/config"
)

// Factory creates the record source and the Postgres store.
type Factory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewFactory creates a new connector factory
func NewFactory(cfg *config.Config, logger *zap.Logger) *Factory {
	return &Factory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateStore creates the Postgres store (clean/audit sink, default
// raw source).
func (f *Factory) CreateStore(ctx context.Context) (*PostgresStore, error) {
	f.logger.Info("Creating PostgreSQL store")

	store, err := NewPostgresStore(ctx, f.cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to create PostgreSQL store: %w", err)
	}

	return store, nil
}

// CreateSource returns the configured raw-record source. When the
// driver is postgres, the store itself serves as the source.
func (f *Factory) CreateSource(ctx context.Context, store *PostgresStore) (RecordSource, error) {
	switch f.cfg.SourceDriver {
	case config.DriverPostgres:
		f.logger.Info("Using PostgreSQL as raw source")
		return store, nil

	case config.DriverSnowflake:
		f.logger.Info("Creating Snowflake source")
		source, err := NewSnowflakeSource(ctx, f.cfg.Snowflake)
		if err != nil {
			return nil, fmt.Errorf("failed to create Snowflake source: %w", err)
		}
		return source, nil

	default:
		return nil, fmt.Errorf("unknown source driver %q", f.cfg.SourceDriver)
	}
}
