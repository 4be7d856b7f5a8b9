// pkg/connector/snowflake.go
package connector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	sf "github.com/snowflakedb/gosnowflake"
	"go.uber.org/zap"

	"github.com/menulab/menu-ingress/pkg/config"
)

// SnowflakeSource implements RecordSource for a Snowflake-hosted copy
// of the raw menu table.
type SnowflakeSource struct {
	db     *sqlx.DB
	logger *zap.Logger
	cfg    *config.SnowflakeConfig
}

// NewSnowflakeSource creates a new Snowflake connection
func NewSnowflakeSource(ctx context.Context, cfg *config.SnowflakeConfig) (*SnowflakeSource, error) {
	logger := zap.L().Named("snowflake-source")

	sfConfig := &sf.Config{
		Account:       cfg.Account,
		User:          cfg.User,
		Password:      cfg.Password,
		Database:      cfg.Database,
		Warehouse:     cfg.Warehouse,
		Role:          cfg.Role,
		Authenticator: cfg.Authenticator,
	}

	// Log connection attempt (without credentials)
	logger.Info("Connecting to Snowflake",
		zap.String("account", cfg.Account),
		zap.String("user", cfg.User),
		zap.String("database", cfg.Database),
		zap.String("warehouse", cfg.Warehouse),
		zap.String("role", cfg.Role))

	dsn, err := sf.DSN(sfConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build Snowflake DSN: %w", err)
	}

	db, err := sqlx.Open("snowflake", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Snowflake connection: %w", err)
	}

	ApplyConnectionSettings(
		db,
		cfg.MaxOpenConns,
		cfg.MaxIdleConns,
		cfg.ConnMaxLifetime,
		cfg.ConnMaxIdleTime,
	)

	if cfg.QueryTimeout > 0 {
		_, err = db.ExecContext(
			ctx,
			fmt.Sprintf("ALTER SESSION SET STATEMENT_TIMEOUT_IN_SECONDS = %d",
				int(cfg.QueryTimeout.Seconds())),
		)
		if err != nil {
			logger.Warn("Failed to set statement timeout", zap.Error(err))
		}
	}

	if err := PingWithTimeout(ctx, db, 10*time.Second); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to Snowflake: %w", err)
	}

	source := &SnowflakeSource{
		db:     db,
		logger: logger,
		cfg:    cfg,
	}

	LogConnectionStats(logger, cfg.Database, db)
	return source, nil
}

// Validate verifies the Snowflake connection and that the raw table is
// visible.
func (s *SnowflakeSource) Validate() error {
	var role, database, warehouse string
	err := s.db.QueryRow("SELECT CURRENT_ROLE(), CURRENT_DATABASE(), CURRENT_WAREHOUSE()").Scan(
		&role, &database, &warehouse)
	if err != nil {
		return fmt.Errorf("failed to verify Snowflake access: %w", err)
	}

	s.logger.Info("Connected to Snowflake",
		zap.String("role", role),
		zap.String("database", database),
		zap.String("warehouse", warehouse))

	if database != s.cfg.Database {
		return fmt.Errorf("connected to wrong database: %s (expected: %s)",
			database, s.cfg.Database)
	}

	var count int
	err = s.db.QueryRow(`
		SELECT COUNT(*) FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?
	`, strings.ToUpper(s.cfg.Schema), strings.ToUpper(s.cfg.RawTable)).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check raw table: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("raw table %s.%s does not exist", s.cfg.Schema, s.cfg.RawTable)
	}

	return nil
}

// Close closes the database connection
func (s *SnowflakeSource) Close() error {
	s.logger.Info("Closing Snowflake connection")
	LogConnectionStats(s.logger, s.cfg.Database, s.db)
	return s.db.Close()
}

// FetchRawMenus loads every raw menu row.
func (s *SnowflakeSource) FetchRawMenus(ctx context.Context) ([]map[string]any, error) {
	query := fmt.Sprintf(`
		SELECT ID, NAME, SPONSOR, LOCATION, DATE, PLACE, EVENT, VENUE,
		       OCCASION, CURRENCY, CURRENCY_SYMBOL, CALL_NUMBER,
		       PHYSICAL_DESCRIPTION, PAGE_COUNT, DISH_COUNT, STATUS, NOTES
		FROM %s.%s
		ORDER BY ID
	`, s.cfg.Schema, s.cfg.RawTable)

	rows, err := fetchRows(ctx, s.db, query, s.cfg.QueryTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch raw menus: %w", err)
	}

	s.logger.Info("Fetched raw menus",
		zap.String("table", s.cfg.Schema+"."+s.cfg.RawTable),
		zap.Int("count", len(rows)))
	return rows, nil
}
