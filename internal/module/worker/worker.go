// Package worker runs the enrichment half of the pipeline: it drains legacy
// records from the queue, regenerates their AI-enhanced shape and ships the
// result to the matching index.
package worker

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/zafkielzz/match-made-ai-pipeline/internal/common/dedup"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/common/enricher"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/common/indexer"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/domain"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/queue"
)

// Worker is the enrichment worker pool.
type Worker struct {
	consumer *queue.Consumer
	tracker  *dedup.Tracker
	indexer  indexer.Indexer
	log      *zap.Logger

	batchSize   int
	concurrency int
}

// Config holds worker pool sizing.
type Config struct {
	Concurrency int
	BatchSize   int
}

// NewWorker creates an enrichment worker pool.
func NewWorker(consumer *queue.Consumer, tracker *dedup.Tracker, idx indexer.Indexer, log *zap.Logger, cfg Config) *Worker {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 5
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}

	return &Worker{
		consumer:    consumer,
		tracker:     tracker,
		indexer:     idx,
		log:         log,
		batchSize:   cfg.BatchSize,
		concurrency: cfg.Concurrency,
	}
}

// Run starts the pool and blocks until the context is canceled or a worker
// fails hard.
func (w *Worker) Run(ctx context.Context) error {
	w.log.Info("starting enrichment workers", zap.Int("concurrency", w.concurrency))

	var wg sync.WaitGroup
	errChan := make(chan error, w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			if err := w.runSingle(ctx, workerID); err != nil {
				errChan <- fmt.Errorf("worker %d: %w", workerID, err)
			}
		}(i)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errChan:
		return err
	case <-done:
		return nil
	}
}

func (w *Worker) runSingle(ctx context.Context, workerID int) error {
	log := w.log.With(zap.Int("worker", workerID))
	log.Debug("worker started")

	for {
		select {
		case <-ctx.Done():
			log.Debug("worker stopping")
			return nil
		default:
		}

		// ConsumeBatch blocks on the first record, so an empty queue does
		// not spin.
		records, err := w.consumer.ConsumeBatch(ctx, w.batchSize)
		if err != nil {
			log.Warn("consume failed", zap.Error(err))
			continue
		}
		if len(records) == 0 {
			continue
		}

		enriched := w.enrichBatch(ctx, log, records)
		if len(enriched) == 0 {
			continue
		}

		if err := w.indexer.BulkIndex(ctx, enriched); err != nil {
			log.Error("bulk index failed", zap.Int("count", len(enriched)), zap.Error(err))
			continue
		}

		for _, job := range enriched {
			if err := w.tracker.MarkEnriched(ctx, job.ID, job.Metadata.UpdatedAt); err != nil {
				log.Warn("mark enriched failed", zap.String("id", job.ID), zap.Error(err))
			}
		}

		log.Info("batch enriched", zap.Int("consumed", len(records)), zap.Int("indexed", len(enriched)))
	}
}

// enrichBatch runs the enrichment chain over a batch, skipping records whose
// legacy source is unchanged since the last enrichment.
func (w *Worker) enrichBatch(ctx context.Context, log *zap.Logger, records []domain.LegacyJobRecord) []domain.AIEnhancedJobRecord {
	enriched := make([]domain.AIEnhancedJobRecord, 0, len(records))

	for _, record := range records {
		check, err := w.tracker.Check(ctx, record.ID, record.Metadata.UpdatedAt)
		if err != nil {
			// Change detection is an optimization; enrich anyway.
			log.Warn("dedup check failed", zap.String("id", record.ID), zap.Error(err))
		}
		if check == dedup.ResultUnchanged {
			continue
		}

		enriched = append(enriched, enricher.Enrich(record))
	}

	return enriched
}
