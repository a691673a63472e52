// Package dedup tracks which legacy records have already been enriched, so
// the worker only regenerates an AI-enhanced record when its legacy source
// actually changed.
package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Tracker stores the last-enriched updatedAt per record in Redis.
type Tracker struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewTracker creates a Redis-backed change tracker.
func NewTracker(client *redis.Client, prefix string, ttl time.Duration) *Tracker {
	if prefix == "" {
		prefix = "enrich"
	}
	if ttl == 0 {
		ttl = 90 * 24 * time.Hour
	}
	return &Tracker{client: client, prefix: prefix, ttl: ttl}
}

// CheckResult classifies a record relative to its last enrichment.
type CheckResult int

const (
	// ResultNew - record has never been enriched.
	ResultNew CheckResult = iota
	// ResultChanged - record was enriched before but updatedAt moved.
	ResultChanged
	// ResultUnchanged - record is identical to the last enrichment.
	ResultUnchanged
)

// Check compares a record's updatedAt against the stored enrichment marker.
func (t *Tracker) Check(ctx context.Context, recordID string, updatedAt time.Time) (CheckResult, error) {
	stored, err := t.client.Get(ctx, t.key(recordID)).Result()
	if err == redis.Nil {
		return ResultNew, nil
	}
	if err != nil {
		return ResultNew, fmt.Errorf("redis get: %w", err)
	}

	if stored != marker(updatedAt) {
		return ResultChanged, nil
	}
	return ResultUnchanged, nil
}

// MarkEnriched records that the current version of a record has been
// enriched and indexed.
func (t *Tracker) MarkEnriched(ctx context.Context, recordID string, updatedAt time.Time) error {
	if err := t.client.Set(ctx, t.key(recordID), marker(updatedAt), t.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Forget drops the marker, forcing re-enrichment on next sight. Used when a
// record is deleted or an index rebuild is requested.
func (t *Tracker) Forget(ctx context.Context, recordID string) error {
	if err := t.client.Del(ctx, t.key(recordID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (t *Tracker) key(recordID string) string {
	return fmt.Sprintf("%s:%s", t.prefix, recordID)
}

func marker(updatedAt time.Time) string {
	return updatedAt.UTC().Format(time.RFC3339Nano)
}
