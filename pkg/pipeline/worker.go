// pkg/pipeline/worker.go
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/menulab/menu-ingress/pkg/model"
	"github.com/menulab/menu-ingress/pkg/transform"
)

// auditedFields are the output fields the report tracks per record.
var auditedFields = []string{
	transform.FieldName,
	transform.FieldDate,
	transform.FieldPlace,
	transform.FieldEvent,
	transform.FieldVenue,
	transform.FieldOccasion,
	transform.FieldCurrency,
	transform.FieldCurrencyCode,
	transform.FieldCallNumber,
}

// shardResult is one worker's partial output: a slice range of cleaned
// records plus a partial audit report.
type shardResult struct {
	worker int
	report model.AuditReport
	err    error
}

// transformAll maps the pure transform across all rows using a fixed
// set of worker goroutines, each owning a contiguous shard. Workers
// write cleaned records at their input indices, so output order is
// input order and no synchronization is needed on the slice. Partial
// reports merge afterwards; the merge is commutative so worker finish
// order does not matter. A structural defect in any shard cancels the
// whole run.
func (p *Pipeline) transformAll(ctx context.Context, rows []map[string]any) ([]model.CleanMenu, model.AuditReport, error) {
	workers := p.workers
	if workers > len(rows) {
		workers = len(rows)
	}

	records := make([]model.CleanMenu, len(rows))
	results := make(chan shardResult, workers)

	shardCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	shardSize := (len(rows) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		lo := w * shardSize
		hi := lo + shardSize
		if hi > len(rows) {
			hi = len(rows)
		}
		if lo >= hi {
			continue
		}

		wg.Add(1)
		go func(worker, lo, hi int) {
			defer wg.Done()
			results <- p.runShard(shardCtx, worker, rows, records, lo, hi)
		}(w, lo, hi)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	report := model.NewAuditReport()
	var firstErr error
	for res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
				cancel()
			}
			continue
		}
		report.Merge(res.report)
	}

	if firstErr != nil {
		return nil, nil, firstErr
	}
	return records, report, nil
}

// runShard transforms rows[lo:hi] into records[lo:hi] and accumulates
// a partial report. Row conversion failures are structural (an
// unusable primary key cannot fall back) and abort the shard.
func (p *Pipeline) runShard(ctx context.Context, worker int, rows []map[string]any, records []model.CleanMenu, lo, hi int) shardResult {
	report := model.NewAuditReport()

	for i := lo; i < hi; i++ {
		if err := ctx.Err(); err != nil {
			return shardResult{worker: worker, err: err}
		}

		raw, err := model.RawMenuFromRow(rows[i])
		if err != nil {
			p.logger.Error("Structural defect in source row",
				zap.Int("worker", worker),
				zap.Int("row", i),
				zap.Error(err))
			return shardResult{worker: worker, err: fmt.Errorf("row %d: %w", i, err)}
		}

		clean, events := transform.TransformRecord(raw, p.rules)
		records[i] = clean

		for _, field := range auditedFields {
			report.CountRecord(field)
		}
		for _, ev := range events {
			report.Record(ev)
		}
	}

	return shardResult{worker: worker, report: report}
}
