package pipeline

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/zafkielzz/match-made-ai-pipeline/internal/domain"
)

type memStore struct {
	records map[string]domain.LegacyJobRecord
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]domain.LegacyJobRecord)}
}

func (s *memStore) Upsert(_ context.Context, record domain.LegacyJobRecord) error {
	s.records[record.ID] = record
	return nil
}

func (s *memStore) Get(_ context.Context, id string) (domain.LegacyJobRecord, error) {
	record, ok := s.records[id]
	if !ok {
		return domain.LegacyJobRecord{}, fmt.Errorf("record %s not found", id)
	}
	return record, nil
}

func (s *memStore) Delete(_ context.Context, id string) error {
	delete(s.records, id)
	return nil
}

type memPublisher struct {
	published []domain.LegacyJobRecord
}

func (p *memPublisher) Publish(_ context.Context, record domain.LegacyJobRecord) error {
	p.published = append(p.published, record)
	return nil
}

type memIndexer struct {
	deleted []string
}

func (i *memIndexer) BulkIndex(context.Context, []domain.AIEnhancedJobRecord) error { return nil }

func (i *memIndexer) Delete(_ context.Context, id string) error {
	i.deleted = append(i.deleted, id)
	return nil
}

type memTracker struct {
	forgotten []string
}

func (t *memTracker) Forget(_ context.Context, id string) error {
	t.forgotten = append(t.forgotten, id)
	return nil
}

type fixtures struct {
	store   *memStore
	pub     *memPublisher
	idx     *memIndexer
	tracker *memTracker
}

func testPipeline() (*Pipeline, *fixtures) {
	f := &fixtures{
		store:   newMemStore(),
		pub:     &memPublisher{},
		idx:     &memIndexer{},
		tracker: &memTracker{},
	}
	p := New(f.store, f.pub, f.idx, f.tracker, zap.NewNop())
	p.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }
	return p, f
}

func TestSubmitValidForm(t *testing.T) {
	p, f := testPipeline()
	store, pub := f.store, f.pub

	result, err := p.Submit(context.Background(), submittableForm())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.RecordID == "" {
		t.Fatal("expected a record id for a valid form")
	}
	if !result.Validation.Valid {
		t.Fatalf("expected valid form, errors: %v", result.Validation.Errors)
	}
	if result.Quality.TotalScore <= 0 {
		t.Error("expected a positive quality score")
	}

	stored, ok := store.records[result.RecordID]
	if !ok {
		t.Fatal("expected record to be persisted")
	}
	if stored.Title != "Senior Backend Developer" {
		t.Errorf("unexpected stored title %q", stored.Title)
	}
	if len(pub.published) != 1 || pub.published[0].ID != result.RecordID {
		t.Errorf("expected record to be published once, got %v", pub.published)
	}
}

func TestSubmitInvalidFormIsGated(t *testing.T) {
	p, f := testPipeline()
	store, pub := f.store, f.pub

	form := submittableForm()
	form.Title = "x"

	result, err := p.Submit(context.Background(), form)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.RecordID != "" {
		t.Error("expected no record id for an invalid form")
	}
	if len(result.Validation.Errors["title"]) == 0 {
		t.Error("expected a title error")
	}
	// Scoring is advisory and still runs on rejected forms.
	if len(result.Quality.Breakdown) == 0 {
		t.Error("expected a quality report for a rejected form")
	}
	if len(store.records) != 0 || len(pub.published) != 0 {
		t.Error("rejected form must not be persisted or published")
	}
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	p, f := testPipeline()
	store, pub := f.store, f.pub

	first, err := p.Submit(context.Background(), submittableForm())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	createdAt := store.records[first.RecordID].Metadata.CreatedAt

	p.now = func() time.Time { return time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC) }

	form := submittableForm()
	form.Title = "Staff Backend Developer"
	updated, err := p.Update(context.Background(), first.RecordID, form)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.RecordID != first.RecordID {
		t.Fatalf("expected id %s, got %s", first.RecordID, updated.RecordID)
	}

	record := store.records[first.RecordID]
	if !record.Metadata.CreatedAt.Equal(createdAt) {
		t.Error("expected createdAt to survive an update")
	}
	if !record.Metadata.UpdatedAt.After(createdAt) {
		t.Error("expected updatedAt to advance on update")
	}
	if record.Title != "Staff Backend Developer" {
		t.Errorf("unexpected updated title %q", record.Title)
	}
	if len(pub.published) != 2 {
		t.Errorf("expected re-publish on update, got %d publishes", len(pub.published))
	}
}

func TestUpdateMissingRecord(t *testing.T) {
	p, _ := testPipeline()

	if _, err := p.Update(context.Background(), "missing", submittableForm()); err == nil {
		t.Fatal("expected update of missing record to fail")
	}
}

func TestDeleteRemovesStoreIndexAndMarker(t *testing.T) {
	p, f := testPipeline()

	result, err := p.Submit(context.Background(), submittableForm())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := p.Delete(context.Background(), result.RecordID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := f.store.records[result.RecordID]; ok {
		t.Error("expected record to be removed from the store")
	}
	if len(f.idx.deleted) != 1 || f.idx.deleted[0] != result.RecordID {
		t.Errorf("expected index delete for %s, got %v", result.RecordID, f.idx.deleted)
	}
	if len(f.tracker.forgotten) != 1 || f.tracker.forgotten[0] != result.RecordID {
		t.Errorf("expected enrichment marker to be forgotten for %s, got %v", result.RecordID, f.tracker.forgotten)
	}
}

// submittableForm passes every validator as of the pipeline's fixed clock.
func submittableForm() domain.JobForm {
	return domain.JobForm{
		Title:          "Senior Backend Developer",
		CompanyName:    "Match Made AI",
		Occupation:     &domain.TaxonomyRef{Code: "2512", Label: "Software Developer"},
		JobLevel:       domain.LevelSenior,
		EmploymentType: domain.EmploymentFullTime,
		WorkMode:       domain.WorkModeHybrid,
		Location:       domain.LocationInfo{Province: "Hồ Chí Minh", Country: "Vietnam"},
		Salary:         domain.SalaryInput{Min: "25000000", Max: "45000000", Currency: "VND"},
		JobOverview:    "We are building the payments backbone for Vietnamese marketplaces and need an engineer who enjoys owning services end to end.",
		Responsibilities: []string{
			"Design and maintain backend APIs for payment flows",
			"Own the reliability of settlement batch processing",
			"Review designs and mentor junior engineers on the team",
		},
		RequiredQualifications: []string{
			"Three years building production Go services",
			"Solid understanding of relational databases",
		},
		TechnologyStack: domain.TechnologyStack{
			Languages: []domain.TechnologyItem{{Name: "Go"}},
			Databases: []domain.TechnologyItem{{Name: "PostgreSQL"}},
		},
		ApplicationDeadline: "2026-04-01",
		NumberOfHires:       1,
		ApplyMethod:         domain.ApplyPlatform,
		JobStatus:           domain.StatusPublished,
	}
}
