// backfill replays every stored legacy record through the enrichment queue.
// With -force it also drops the change-detection markers first, so the worker
// re-enriches records whose legacy source never changed (index rebuilds).
package main

import (
	"context"
	"flag"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/zafkielzz/match-made-ai-pipeline/internal/common/dedup"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/common/indexer"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/config"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/logger"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/queue"
)

func main() {
	force := flag.Bool("force", false, "drop enrichment markers so unchanged records are re-enriched")
	flag.Parse()

	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	store, err := indexer.NewPostgresStore(cfg.Postgres.ConnectionString, cfg.Postgres.TableName)
	if err != nil {
		log.Fatal("postgres unavailable", zap.Error(err))
	}
	defer store.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("redis unavailable", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}
	defer redisClient.Close()

	records, err := store.All(ctx)
	if err != nil {
		log.Fatal("load records", zap.Error(err))
	}
	if len(records) == 0 {
		log.Info("no records to backfill")
		return
	}

	if *force {
		tracker := dedup.NewTracker(redisClient, cfg.Redis.DedupPrefix, cfg.Redis.DedupTTL)
		for _, record := range records {
			if err := tracker.Forget(ctx, record.ID); err != nil {
				log.Warn("forget marker failed", zap.String("id", record.ID), zap.Error(err))
			}
		}
	}

	publisher := queue.NewPublisher(redisClient, cfg.Redis.RecordQueue)

	batchSize := cfg.Worker.BatchSize
	for start := 0; start < len(records); start += batchSize {
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := publisher.PublishBatch(ctx, records[start:end]); err != nil {
			log.Fatal("publish batch", zap.Int("start", start), zap.Error(err))
		}
	}

	backlog, err := publisher.QueueLength(ctx)
	if err != nil {
		log.Warn("queue length check failed", zap.Error(err))
	}

	log.Info("backfill queued",
		zap.Int("records", len(records)),
		zap.Bool("forced", *force),
		zap.Int64("backlog", backlog),
	)
}
