package indexer

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/zafkielzz/match-made-ai-pipeline/internal/domain"
)

// PostgresStore persists legacy job records. The record nests (requirements,
// tech stack, languages), so it is stored as a JSONB document next to the
// columns queries filter on.
type PostgresStore struct {
	db        *sql.DB
	tableName string
}

// NewPostgresStore opens the connection and ensures the records table.
func NewPostgresStore(connStr, tableName string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	store := &PostgresStore{db: db, tableName: tableName}
	if err := store.ensureTable(); err != nil {
		return nil, fmt.Errorf("ensure table: %w", err)
	}
	return store, nil
}

func (s *PostgresStore) ensureTable() error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			status TEXT NOT NULL,
			application_deadline DATE,
			record JSONB NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL
		)
	`, s.tableName)

	_, err := s.db.Exec(query)
	return err
}

// Upsert creates or replaces a legacy record.
func (s *PostgresStore) Upsert(ctx context.Context, record domain.LegacyJobRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, status, application_deadline, record, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, '')::date, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			application_deadline = EXCLUDED.application_deadline,
			record = EXCLUDED.record,
			updated_at = EXCLUDED.updated_at
	`, s.tableName)

	_, err = s.db.ExecContext(ctx, query,
		record.ID, record.Status, record.ApplicationDeadline, payload,
		record.Metadata.CreatedAt, record.Metadata.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert record %s: %w", record.ID, err)
	}
	return nil
}

// Get loads a legacy record by id.
func (s *PostgresStore) Get(ctx context.Context, id string) (domain.LegacyJobRecord, error) {
	var payload []byte
	query := fmt.Sprintf(`SELECT record FROM %s WHERE id = $1`, s.tableName)

	if err := s.db.QueryRowContext(ctx, query, id).Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return domain.LegacyJobRecord{}, fmt.Errorf("record %s not found", id)
		}
		return domain.LegacyJobRecord{}, fmt.Errorf("get record %s: %w", id, err)
	}

	var record domain.LegacyJobRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return domain.LegacyJobRecord{}, fmt.Errorf("unmarshal record %s: %w", id, err)
	}
	return record, nil
}

// All loads every stored legacy record in creation order. Used by the
// backfill tool to replay records through enrichment.
func (s *PostgresStore) All(ctx context.Context) ([]domain.LegacyJobRecord, error) {
	query := fmt.Sprintf(`SELECT record FROM %s ORDER BY created_at`, s.tableName)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []domain.LegacyJobRecord
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}

		var record domain.LegacyJobRecord
		if err := json.Unmarshal(payload, &record); err != nil {
			return nil, fmt.Errorf("unmarshal record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Delete removes a legacy record.
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, s.tableName)
	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	return nil
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
