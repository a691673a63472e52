package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zafkielzz/match-made-ai-pipeline/internal/domain"
)

// Consumer pops legacy records off the enrichment queue.
type Consumer struct {
	client    *redis.Client
	queueName string
	timeout   time.Duration
}

// NewConsumer creates a queue consumer.
func NewConsumer(client *redis.Client, queueName string, timeout time.Duration) *Consumer {
	if queueName == "" {
		queueName = "jobs:legacy"
	}
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Consumer{client: client, queueName: queueName, timeout: timeout}
}

// ConsumeBatch consumes up to maxBatch records. The first pop blocks with
// BRPOP (no CPU spinning on an empty queue); the rest drain with RPOP.
// A timeout with nothing queued returns an empty batch and no error.
func (c *Consumer) ConsumeBatch(ctx context.Context, maxBatch int) ([]domain.LegacyJobRecord, error) {
	records := make([]domain.LegacyJobRecord, 0, maxBatch)

	result, err := c.client.BRPop(ctx, c.timeout, c.queueName).Result()
	if err != nil {
		if err == redis.Nil {
			return records, nil
		}
		return nil, fmt.Errorf("brpop: %w", err)
	}

	if len(result) >= 2 {
		var record domain.LegacyJobRecord
		if err := json.Unmarshal([]byte(result[1]), &record); err == nil {
			records = append(records, record)
		}
	}

	for len(records) < maxBatch {
		payload, err := c.client.RPop(ctx, c.queueName).Result()
		if err != nil {
			if err == redis.Nil {
				break
			}
			return records, fmt.Errorf("rpop: %w", err)
		}

		var record domain.LegacyJobRecord
		if err := json.Unmarshal([]byte(payload), &record); err != nil {
			continue // skip malformed payloads
		}
		records = append(records, record)
	}

	return records, nil
}
