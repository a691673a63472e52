// Package taxonomy exposes the occupation, industry and location lookups the
// authoring flow resolves selections against. The pipeline only needs the
// resolved code/label pairs; retrieval mechanics (debouncing, remote APIs)
// belong to the calling layer.
package taxonomy

import (
	"context"
	"strings"

	"github.com/zafkielzz/match-made-ai-pipeline/internal/domain"
)

// Searcher is the synchronous capability interface for one taxonomy.
type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.TaxonomyRef, error)
}

// StaticSearcher serves a fixed dataset with case-insensitive substring
// matching on labels and codes. Used as the fallback when a remote taxonomy
// service is unavailable, and as the fixture in tests.
type StaticSearcher struct {
	entries []domain.TaxonomyRef
	limit   int
}

// NewStaticSearcher creates a searcher over a fixed dataset.
func NewStaticSearcher(entries []domain.TaxonomyRef, limit int) *StaticSearcher {
	if limit <= 0 {
		limit = 10
	}
	return &StaticSearcher{entries: entries, limit: limit}
}

// Search returns entries whose label or code contains the query.
func (s *StaticSearcher) Search(ctx context.Context, query string) ([]domain.TaxonomyRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	var out []domain.TaxonomyRef
	for _, entry := range s.entries {
		if strings.Contains(strings.ToLower(entry.Label), q) || strings.Contains(strings.ToLower(entry.Code), q) {
			out = append(out, entry)
			if len(out) >= s.limit {
				break
			}
		}
	}
	return out, nil
}

// NewOccupationSearcher returns the fallback occupation taxonomy.
func NewOccupationSearcher() *StaticSearcher {
	return NewStaticSearcher(occupations, 10)
}

// NewIndustrySearcher returns the fallback industry taxonomy.
func NewIndustrySearcher() *StaticSearcher {
	return NewStaticSearcher(industries, 10)
}

// NewLocationSearcher returns the fallback province list.
func NewLocationSearcher() *StaticSearcher {
	return NewStaticSearcher(provinces, 10)
}
