// jobcheck validates and scores a job form from a JSON file without touching
// any backing service. With -submit it runs the form through the full
// pipeline instead (postgres, redis and elasticsearch required).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/zafkielzz/match-made-ai-pipeline/internal/common/dedup"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/common/indexer"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/common/normalizer"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/common/scorer"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/common/validator"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/config"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/domain"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/logger"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/module/pipeline"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/queue"
)

func main() {
	var (
		filePath = flag.String("file", "", "path to a JSON job form")
		submit   = flag.Bool("submit", false, "submit through the full pipeline instead of a dry run")
		asJSON   = flag.Bool("json", false, "print the raw result as JSON")
	)
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: jobcheck -file form.json [-submit] [-json]")
		os.Exit(2)
	}

	form, err := loadForm(*filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jobcheck: %v\n", err)
		os.Exit(1)
	}

	if *submit {
		if err := runSubmit(form, *asJSON); err != nil {
			fmt.Fprintf(os.Stderr, "jobcheck: %v\n", err)
			os.Exit(1)
		}
		return
	}

	normalized := normalizer.New().NormalizeJobForm(form)
	result := validator.ValidateJobForm(normalized)
	report := scorer.CalculateQualityScore(normalized)

	if *asJSON {
		printJSON(pipeline.SubmitResult{Validation: result, Quality: report})
		return
	}
	printSummary(normalized)
	printReport(result, report)

	if !result.Valid {
		os.Exit(1)
	}
}

func loadForm(path string) (domain.JobForm, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.JobForm{}, fmt.Errorf("read form: %w", err)
	}

	var form domain.JobForm
	if err := json.Unmarshal(data, &form); err != nil {
		return domain.JobForm{}, fmt.Errorf("parse form: %w", err)
	}
	return form, nil
}

func runSubmit(form domain.JobForm, asJSON bool) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := indexer.NewPostgresStore(cfg.Postgres.ConnectionString, cfg.Postgres.TableName)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer store.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	esIndexer, err := indexer.NewElasticsearchIndexer(cfg.Elasticsearch.Addresses, cfg.Elasticsearch.Index, log)
	if err != nil {
		return fmt.Errorf("elasticsearch: %w", err)
	}

	tracker := dedup.NewTracker(redisClient, cfg.Redis.DedupPrefix, cfg.Redis.DedupTTL)
	p := pipeline.New(store, queue.NewPublisher(redisClient, cfg.Redis.RecordQueue), esIndexer, tracker, log)

	result, err := p.Submit(ctx, form)
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}

	if asJSON {
		printJSON(result)
		return nil
	}

	printReport(result.Validation, result.Quality)
	if result.RecordID != "" {
		fmt.Printf("\nsubmitted as %s\n", result.RecordID)
	} else {
		log.Warn("form rejected, nothing submitted", zap.Int("errors", len(result.Validation.Errors)))
	}
	return nil
}

func printSummary(form domain.JobForm) {
	fmt.Printf("%s at %s\n", form.Title, form.CompanyName)
	fmt.Printf("  %s / %s / %s\n",
		domain.FormatJobLevel(form.JobLevel),
		domain.FormatEmploymentType(form.EmploymentType),
		domain.FormatWorkMode(form.WorkMode),
	)
	fmt.Printf("  %s, status %s\n\n",
		domain.FormatApplyMethod(form.ApplyMethod),
		domain.FormatStatus(form.JobStatus),
	)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func printReport(result validator.Result, report scorer.QualityReport) {
	if result.Valid {
		fmt.Println("validation: PASS")
	} else {
		fmt.Println("validation: FAIL")
	}
	printFieldMessages("error", result.Errors)
	printFieldMessages("warning", result.Warnings)

	fmt.Printf("\nquality score: %d/100\n", report.TotalScore)
	for _, cat := range report.Breakdown {
		fmt.Printf("  %-18s %2d/%d\n", cat.Name, cat.Score, cat.MaxScore)
		for _, s := range cat.Suggestions {
			fmt.Printf("    - %s\n", s)
		}
	}
	for _, s := range report.OverallSuggestions {
		fmt.Printf("\n%s\n", s)
	}
}

func printFieldMessages(kind string, byField map[string][]string) {
	fields := make([]string, 0, len(byField))
	for field := range byField {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		for _, msg := range byField[field] {
			fmt.Printf("  %s %s: %s\n", kind, field, msg)
		}
	}
}
