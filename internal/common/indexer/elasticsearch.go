package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"

	"github.com/zafkielzz/match-made-ai-pipeline/internal/domain"
)

// ElasticsearchIndexer ships AI-enhanced records to the matching index.
type ElasticsearchIndexer struct {
	client    *elasticsearch.Client
	indexName string
	log       *zap.Logger
}

// NewElasticsearchIndexer creates an Elasticsearch indexer and verifies the
// connection.
func NewElasticsearchIndexer(addresses []string, indexName string, log *zap.Logger) (*ElasticsearchIndexer, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: addresses})
	if err != nil {
		return nil, fmt.Errorf("create es client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("es info: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("es error: %s", res.Status())
	}

	return &ElasticsearchIndexer{client: client, indexName: indexName, log: log}, nil
}

// EnsureIndex creates the matching index with an explicit mapping for the
// fields the matching engine queries.
func (i *ElasticsearchIndexer) EnsureIndex(ctx context.Context) error {
	exists, err := esapi.IndicesExistsRequest{Index: []string{i.indexName}}.Do(ctx, i.client)
	if err != nil {
		return fmt.Errorf("index exists check: %w", err)
	}
	defer exists.Body.Close()
	if exists.StatusCode == 200 {
		return nil
	}

	mapping := `{
		"mappings": {
			"properties": {
				"title":              {"type": "text"},
				"companyName":        {"type": "text"},
				"status":             {"type": "keyword"},
				"jobTextForMatching": {"type": "text"},
				"extractedSkills": {
					"properties": {
						"core":  {"type": "keyword"},
						"tools": {"type": "keyword"}
					}
				},
				"experience": {
					"properties": {
						"min": {"type": "integer"},
						"max": {"type": "integer"}
					}
				}
			}
		}
	}`

	res, err := esapi.IndicesCreateRequest{
		Index: i.indexName,
		Body:  bytes.NewReader([]byte(mapping)),
	}.Do(ctx, i.client)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("create index: %s", res.Status())
	}
	return nil
}

// BulkIndex indexes enhanced records with the bulk API.
func (i *ElasticsearchIndexer) BulkIndex(ctx context.Context, jobs []domain.AIEnhancedJobRecord) error {
	if len(jobs) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for _, job := range jobs {
		meta := map[string]any{
			"index": map[string]any{
				"_index": i.indexName,
				"_id":    job.ID,
			},
		}
		metaBytes, _ := json.Marshal(meta)
		buf.Write(metaBytes)
		buf.WriteByte('\n')

		docBytes, err := json.Marshal(job)
		if err != nil {
			i.log.Warn("marshal enhanced record", zap.String("id", job.ID), zap.Error(err))
			continue
		}
		buf.Write(docBytes)
		buf.WriteByte('\n')
	}

	res, err := esapi.BulkRequest{Body: bytes.NewReader(buf.Bytes())}.Do(ctx, i.client)
	if err != nil {
		return fmt.Errorf("bulk request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk error: %s", res.Status())
	}
	return nil
}

// Delete removes a record from the matching index.
func (i *ElasticsearchIndexer) Delete(ctx context.Context, id string) error {
	res, err := esapi.DeleteRequest{Index: i.indexName, DocumentID: id}.Do(ctx, i.client)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	defer res.Body.Close()

	// 404 means the record was never indexed; deletion is idempotent.
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete error: %s", res.Status())
	}
	return nil
}
