package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/zafkielzz/match-made-ai-pipeline/internal/common/dedup"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/common/indexer"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/config"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/logger"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/module/worker"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/queue"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("redis unavailable", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}
	defer redisClient.Close()

	esIndexer, err := indexer.NewElasticsearchIndexer(cfg.Elasticsearch.Addresses, cfg.Elasticsearch.Index, log)
	if err != nil {
		log.Fatal("elasticsearch unavailable", zap.Error(err))
	}
	if err := esIndexer.EnsureIndex(ctx); err != nil {
		log.Fatal("ensure matching index", zap.String("index", cfg.Elasticsearch.Index), zap.Error(err))
	}

	consumer := queue.NewConsumer(redisClient, cfg.Redis.RecordQueue, 5*time.Second)
	tracker := dedup.NewTracker(redisClient, cfg.Redis.DedupPrefix, cfg.Redis.DedupTTL)

	w := worker.NewWorker(consumer, tracker, esIndexer, log, worker.Config{
		Concurrency: cfg.Worker.Concurrency,
		BatchSize:   cfg.Worker.BatchSize,
	})

	log.Info("enricher service starting",
		zap.String("queue", cfg.Redis.RecordQueue),
		zap.String("index", cfg.Elasticsearch.Index),
	)

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("worker pool failed", zap.Error(err))
	}

	log.Info("enricher service stopped")
}
