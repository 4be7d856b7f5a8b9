// pkg/connector/postgres.go
package connector

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/menulab/menu-ingress/pkg/config"
	"github.com/menulab/menu-ingress/pkg/model"
)

// PostgresStore is the relational boundary of the pipeline: the default
// raw-menu source and the only clean/audit sink.
type PostgresStore struct {
	db     *sqlx.DB
	logger *zap.Logger
	cfg    *config.PostgresConfig
}

// NewPostgresStore creates and initializes a new Postgres store
func NewPostgresStore(ctx context.Context, cfg *config.PostgresConfig) (*PostgresStore, error) {
	logger := zap.L().Named("postgres-store")

	logger.Info("Connecting to PostgreSQL",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.String("user", cfg.User))

	db, err := sqlx.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL connection: %w", err)
	}

	ApplyConnectionSettings(
		db,
		cfg.MaxOpenConns,
		cfg.MaxIdleConns,
		cfg.ConnMaxLifetime,
		cfg.ConnMaxIdleTime,
	)

	if cfg.StatementTimeout > 0 {
		_, err = db.ExecContext(
			ctx,
			fmt.Sprintf("SET statement_timeout = %d", cfg.StatementTimeout.Milliseconds()),
		)
		if err != nil {
			logger.Warn("Failed to set statement timeout", zap.Error(err))
		}
	}

	if err := PingWithTimeout(ctx, db, 5*time.Second); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	store := &PostgresStore{
		db:     db,
		logger: logger,
		cfg:    cfg,
	}

	LogConnectionStats(logger, cfg.Database, db)
	return store, nil
}

// Validate verifies the connection and that the raw table exists. A
// missing raw table is a structural defect, caught before any
// processing.
func (s *PostgresStore) Validate() error {
	var version string
	if err := s.db.QueryRow("SELECT version()").Scan(&version); err != nil {
		return fmt.Errorf("failed to query PostgreSQL version: %w", err)
	}
	s.logger.Info("Connected to PostgreSQL", zap.String("version", version))

	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1
		)
	`, s.cfg.RawTable).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check raw table: %w", err)
	}
	if !exists {
		return fmt.Errorf("raw table %s does not exist", s.cfg.RawTable)
	}

	return nil
}

// Close closes the database connection
func (s *PostgresStore) Close() error {
	s.logger.Info("Closing PostgreSQL connection")
	LogConnectionStats(s.logger, s.cfg.Database, s.db)
	return s.db.Close()
}

// FetchRawMenus loads every raw menu row.
func (s *PostgresStore) FetchRawMenus(ctx context.Context) ([]map[string]any, error) {
	query := fmt.Sprintf(`
		SELECT id, name, sponsor, location, date, place, event, venue,
		       occasion, currency, currency_symbol, call_number,
		       physical_description, page_count, dish_count, status, notes
		FROM %s
		ORDER BY id
	`, s.cfg.RawTable)

	rows, err := fetchRows(ctx, s.db, query, s.cfg.StatementTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch raw menus: %w", err)
	}

	s.logger.Info("Fetched raw menus",
		zap.String("table", s.cfg.RawTable),
		zap.Int("count", len(rows)))
	return rows, nil
}

// EnsureTables creates the clean and audit tables if missing.
func (s *PostgresStore) EnsureTables(ctx context.Context) error {
	cleanSQL := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id BIGINT PRIMARY KEY,
			name TEXT,
			date DATE,
			place TEXT,
			event TEXT,
			venue TEXT,
			occasion TEXT,
			currency TEXT NOT NULL,
			currency_code TEXT NOT NULL,
			call_number_normalized TEXT,
			is_wotm BOOLEAN NOT NULL,
			page_count BIGINT,
			dish_count BIGINT,
			status TEXT,
			notes TEXT,
			run_id TEXT NOT NULL,
			cleaned_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)
	`, s.cfg.CleanTable)

	auditSQL := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id SERIAL PRIMARY KEY,
			run_id TEXT NOT NULL,
			field_name TEXT NOT NULL,
			total INTEGER NOT NULL,
			nulled INTEGER NOT NULL,
			fallback_count INTEGER NOT NULL,
			unmapped_value TEXT,
			unmapped_count INTEGER,
			recorded_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)
	`, s.cfg.AuditTable)

	for _, ddl := range []string{cleanSQL, auditSQL} {
		if _, err := s.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	s.logger.Info("Ensured clean and audit tables exist",
		zap.String("clean", s.cfg.CleanTable),
		zap.String("audit", s.cfg.AuditTable))
	return nil
}

// cleanMenuRow is the named-parameter shape of a cleaned record.
type cleanMenuRow struct {
	ID           int64      `db:"id"`
	Name         *string    `db:"name"`
	Date         *time.Time `db:"date"`
	Place        *string    `db:"place"`
	Event        *string    `db:"event"`
	Venue        *string    `db:"venue"`
	Occasion     *string    `db:"occasion"`
	Currency     string     `db:"currency"`
	CurrencyCode string     `db:"currency_code"`
	CallNumber   *string    `db:"call_number_normalized"`
	IsWOTM       bool       `db:"is_wotm"`
	PageCount    *int64     `db:"page_count"`
	DishCount    *int64     `db:"dish_count"`
	Status       *string    `db:"status"`
	Notes        *string    `db:"notes"`
	RunID        string     `db:"run_id"`
}

func toCleanMenuRow(m model.CleanMenu, runID string) cleanMenuRow {
	row := cleanMenuRow{
		ID:           m.ID,
		Name:         m.Name,
		Date:         m.Date,
		Place:        m.Place,
		Event:        m.Event,
		Occasion:     m.Occasion,
		Currency:     m.Currency,
		CurrencyCode: m.CurrencyCode,
		CallNumber:   m.CallNumber,
		IsWOTM:       m.IsWOTM,
		PageCount:    m.PageCount,
		DishCount:    m.DishCount,
		Status:       m.Status,
		Notes:        m.Notes,
		RunID:        runID,
	}
	if m.Venue != "" {
		v := string(m.Venue)
		row.Venue = &v
	}
	return row
}

// InsertCleanMenus persists the full cleaned record set in one
// transaction, batched.
func (s *PostgresStore) InsertCleanMenus(ctx context.Context, menus []model.CleanMenu, runID string, batchSize int) (int64, error) {
	if len(menus) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 1000
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`
		INSERT INTO %s
		(id, name, date, place, event, venue, occasion, currency,
		 currency_code, call_number_normalized, is_wotm, page_count,
		 dish_count, status, notes, run_id)
		VALUES
		(:id, :name, :date, :place, :event, :venue, :occasion, :currency,
		 :currency_code, :call_number_normalized, :is_wotm, :page_count,
		 :dish_count, :status, :notes, :run_id)
	`, s.cfg.CleanTable)

	var total int64
	for i := 0; i < len(menus); i += batchSize {
		end := i + batchSize
		if end > len(menus) {
			end = len(menus)
		}

		batch := make([]cleanMenuRow, 0, end-i)
		for _, m := range menus[i:end] {
			batch = append(batch, toCleanMenuRow(m, runID))
		}

		result, err := tx.NamedExecContext(ctx, query, batch)
		if err != nil {
			return total, fmt.Errorf("batch insert failed at offset %d: %w", i, err)
		}
		if n, err := result.RowsAffected(); err == nil {
			total += n
		}
	}

	if err := tx.Commit(); err != nil {
		return total, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("Inserted cleaned menus",
		zap.String("table", s.cfg.CleanTable),
		zap.Int64("rows", total))
	return total, nil
}

// InsertAuditReport persists the per-field stats plus one row per
// distinct unmapped value, all tagged with the run ID.
func (s *PostgresStore) InsertAuditReport(ctx context.Context, report model.AuditReport, runID string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	fieldSQL := fmt.Sprintf(`
		INSERT INTO %s (run_id, field_name, total, nulled, fallback_count)
		VALUES ($1, $2, $3, $4, $5)
	`, s.cfg.AuditTable)
	unmappedSQL := fmt.Sprintf(`
		INSERT INTO %s (run_id, field_name, total, nulled, fallback_count, unmapped_value, unmapped_count)
		VALUES ($1, $2, 0, 0, 0, $3, $4)
	`, s.cfg.AuditTable)

	count := 0
	for field, stats := range report {
		if _, err := tx.ExecContext(ctx, fieldSQL,
			runID, field, stats.Total, stats.Nulled, stats.Fallback); err != nil {
			return fmt.Errorf("failed to insert audit row for %s: %w", field, err)
		}
		count++

		for raw, n := range stats.UnmappedValues {
			if _, err := tx.ExecContext(ctx, unmappedSQL, runID, field, raw, n); err != nil {
				return fmt.Errorf("failed to insert unmapped row for %s: %w", field, err)
			}
			count++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("Recorded audit report",
		zap.String("table", s.cfg.AuditTable),
		zap.Int("rows", count))
	return nil
}
