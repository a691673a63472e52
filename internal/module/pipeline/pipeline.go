// Package pipeline wires the submit side of the system: a raw form is
// normalized, gated on validation, scored, persisted as a legacy record and
// queued for enrichment.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zafkielzz/match-made-ai-pipeline/internal/common/indexer"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/common/normalizer"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/common/scorer"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/common/validator"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/domain"
)

// Publisher hands a legacy record to the enrichment queue. Satisfied by
// queue.Publisher.
type Publisher interface {
	Publish(ctx context.Context, record domain.LegacyJobRecord) error
}

// Tracker clears enrichment change-detection state. Satisfied by
// dedup.Tracker.
type Tracker interface {
	Forget(ctx context.Context, recordID string) error
}

// Pipeline runs a job form through normalization, validation and scoring,
// then persists and publishes it for enrichment.
type Pipeline struct {
	normalizer *normalizer.Normalizer
	store      indexer.RecordStore
	publisher  Publisher
	index      indexer.Indexer
	tracker    Tracker
	log        *zap.Logger

	now func() time.Time
}

// New creates a pipeline.
func New(store indexer.RecordStore, publisher Publisher, index indexer.Indexer, tracker Tracker, log *zap.Logger) *Pipeline {
	return &Pipeline{
		normalizer: normalizer.New(),
		store:      store,
		publisher:  publisher,
		index:      index,
		tracker:    tracker,
		log:        log,
		now:        time.Now,
	}
}

// SubmitResult reports what happened to a submitted form. When validation
// blocks, RecordID is empty and Validation carries the field errors; the
// quality report is always present because scoring is advisory.
type SubmitResult struct {
	RecordID   string               `json:"recordId,omitempty"`
	Validation validator.Result     `json:"validation"`
	Quality    scorer.QualityReport `json:"quality"`
}

// Submit normalizes, validates and scores a form. A valid form becomes a
// persisted legacy record and is queued for enrichment; an invalid one is
// returned to the author with errors, which is not a pipeline failure.
func (p *Pipeline) Submit(ctx context.Context, form domain.JobForm) (SubmitResult, error) {
	normalized := p.normalizer.NormalizeJobForm(form)

	result := SubmitResult{
		Validation: validator.ValidateJobFormAt(normalized, p.now()),
		Quality:    scorer.CalculateQualityScore(normalized),
	}

	if !result.Validation.Valid {
		return result, nil
	}

	record := domain.BuildLegacyRecord(normalized, uuid.NewString(), p.now())
	if err := p.persistAndPublish(ctx, record); err != nil {
		return result, err
	}

	result.RecordID = record.ID
	p.log.Info("job record submitted",
		zap.String("id", record.ID),
		zap.String("status", record.Status),
		zap.Int("quality_score", result.Quality.TotalScore),
	)
	return result, nil
}

// Update re-runs the submit path for an existing record, preserving its
// creation timestamp. The enhanced record is regenerated by the worker once
// the updated legacy record reaches the queue.
func (p *Pipeline) Update(ctx context.Context, id string, form domain.JobForm) (SubmitResult, error) {
	existing, err := p.store.Get(ctx, id)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("load record: %w", err)
	}

	normalized := p.normalizer.NormalizeJobForm(form)

	result := SubmitResult{
		Validation: validator.ValidateJobFormAt(normalized, p.now()),
		Quality:    scorer.CalculateQualityScore(normalized),
	}

	if !result.Validation.Valid {
		return result, nil
	}

	record := domain.BuildLegacyRecord(normalized, id, p.now())
	record.Metadata.CreatedAt = existing.Metadata.CreatedAt

	if err := p.persistAndPublish(ctx, record); err != nil {
		return result, err
	}

	result.RecordID = id
	p.log.Info("job record updated", zap.String("id", id))
	return result, nil
}

// Delete removes a record from the store and the matching index, and drops
// its enrichment marker so a re-created record with the same id is enriched
// from scratch.
func (p *Pipeline) Delete(ctx context.Context, id string) error {
	if err := p.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if err := p.index.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete from index: %w", err)
	}
	if err := p.tracker.Forget(ctx, id); err != nil {
		return fmt.Errorf("forget enrichment marker: %w", err)
	}

	p.log.Info("job record deleted", zap.String("id", id))
	return nil
}

func (p *Pipeline) persistAndPublish(ctx context.Context, record domain.LegacyJobRecord) error {
	if err := p.store.Upsert(ctx, record); err != nil {
		return fmt.Errorf("persist record: %w", err)
	}
	if err := p.publisher.Publish(ctx, record); err != nil {
		return fmt.Errorf("publish record: %w", err)
	}
	return nil
}
