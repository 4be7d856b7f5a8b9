// pkg/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/menulab/menu-ingress/pkg/model"
	"github.com/menulab/menu-ingress/pkg/transform"
)

// Structural defects abort the run before or during processing.
var (
	ErrNoRecords     = errors.New("no input records")
	ErrMissingColumn = errors.New("required source column missing from every record")
)

// Pipeline applies the column transformers across a record set in
// three strictly sequential stages: load, transform, emit. Content
// defects resolve to fallbacks and are counted; only structural
// defects abort.
type Pipeline struct {
	rules   transform.Rules
	logger  *zap.Logger
	workers int
	runID   string
}

// Result is one complete pipeline run: exactly as many cleaned records
// as raw ones, plus the per-field audit report.
type Result struct {
	RunID    string
	Records  []model.CleanMenu
	Report   model.AuditReport
	Duration time.Duration
}

// New builds a pipeline. workers <= 0 means one worker per CPU. The
// rule set is validated up front: a broken rule set is a structural
// defect and no record may be processed against it.
func New(rules transform.Rules, logger *zap.Logger, workers int) (*Pipeline, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rule set: %w", err)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Pipeline{
		rules:   rules,
		logger:  logger.Named("pipeline"),
		workers: workers,
		runID:   uuid.New().String(),
	}, nil
}

// RunID identifies this pipeline instance in audit rows.
func (p *Pipeline) RunID() string {
	return p.runID
}

// Clean runs the three stages over loosely typed source rows and
// returns the cleaned record set with its audit report. The output
// always holds one cleaned record per input row, in input order.
func (p *Pipeline) Clean(ctx context.Context, rows []map[string]any) (*Result, error) {
	start := time.Now()

	// Stage 1: load. Structural validation only, no side effects.
	if len(rows) == 0 {
		return nil, ErrNoRecords
	}
	if err := validateColumns(rows); err != nil {
		return nil, err
	}

	p.logger.Info("Starting clean run",
		zap.String("runID", p.runID),
		zap.Int("records", len(rows)),
		zap.Int("workers", p.workers))

	// Stage 2: transform, sharded across workers. Transformers are
	// pure and the rule tables are read-only, so shards share nothing
	// but the output slice, which they write at disjoint indices.
	records, report, err := p.transformAll(ctx, rows)
	if err != nil {
		return nil, err
	}

	// Stage 3: emit.
	result := &Result{
		RunID:    p.runID,
		Records:  records,
		Report:   report,
		Duration: time.Since(start),
	}
	p.logReport(report)

	p.logger.Info("Clean run complete",
		zap.String("runID", p.runID),
		zap.Int("records", len(result.Records)),
		zap.Duration("duration", result.Duration))

	return result, nil
}

// validateColumns checks that every required source column appears in
// at least one row. A column absent everywhere is a structural defect.
func validateColumns(rows []map[string]any) error {
	for _, col := range model.RequiredColumns {
		found := false
		for _, row := range rows {
			if _, ok := row[col]; ok {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}
	return nil
}

// logReport surfaces the audit report, one line per field plus one per
// distinct unmapped value so mapping tables can be extended.
func (p *Pipeline) logReport(report model.AuditReport) {
	for field, stats := range report {
		p.logger.Info("Field summary",
			zap.String("field", field),
			zap.Int("total", stats.Total),
			zap.Int("nulled", stats.Nulled),
			zap.Int("fallback", stats.Fallback),
			zap.Int("unmappedDistinct", len(stats.UnmappedValues)))

		for raw, count := range stats.UnmappedValues {
			p.logger.Warn("Unmapped value",
				zap.String("field", field),
				zap.String("value", raw),
				zap.Int("count", count))
		}
	}
}
