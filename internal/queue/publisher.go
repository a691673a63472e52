package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/zafkielzz/match-made-ai-pipeline/internal/domain"
)

// Publisher pushes legacy records onto the enrichment queue.
type Publisher struct {
	client    *redis.Client
	queueName string
}

// NewPublisher creates a queue publisher.
func NewPublisher(client *redis.Client, queueName string) *Publisher {
	if queueName == "" {
		queueName = "jobs:legacy"
	}
	return &Publisher{client: client, queueName: queueName}
}

// Publish pushes a single record for (re-)enrichment.
func (p *Publisher) Publish(ctx context.Context, record domain.LegacyJobRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	if err := p.client.LPush(ctx, p.queueName, data).Err(); err != nil {
		return fmt.Errorf("lpush: %w", err)
	}
	return nil
}

// PublishBatch pushes multiple records in one pipeline round-trip. Used by
// backfills over historical data.
func (p *Publisher) PublishBatch(ctx context.Context, records []domain.LegacyJobRecord) error {
	if len(records) == 0 {
		return nil
	}

	pipe := p.client.Pipeline()
	for _, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal record %s: %w", record.ID, err)
		}
		pipe.LPush(ctx, p.queueName, data)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("pipeline exec: %w", err)
	}
	return nil
}

// QueueLength returns the current backlog size.
func (p *Publisher) QueueLength(ctx context.Context) (int64, error) {
	return p.client.LLen(ctx, p.queueName).Result()
}
