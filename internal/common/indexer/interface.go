package indexer

import (
	"context"

	"github.com/zafkielzz/match-made-ai-pipeline/internal/domain"
)

// Indexer is the matching-engine side: it receives AI-enhanced records.
type Indexer interface {
	// BulkIndex indexes multiple enhanced records at once.
	BulkIndex(ctx context.Context, jobs []domain.AIEnhancedJobRecord) error
	// Delete removes a record from the index.
	Delete(ctx context.Context, id string) error
}

// RecordStore is the persistence side: it holds legacy records.
type RecordStore interface {
	Upsert(ctx context.Context, record domain.LegacyJobRecord) error
	Get(ctx context.Context, id string) (domain.LegacyJobRecord, error)
	Delete(ctx context.Context, id string) error
}
