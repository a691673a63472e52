package taxonomy

import (
	"context"
	"testing"
)

func TestStaticSearcher(t *testing.T) {
	ctx := context.Background()
	s := NewOccupationSearcher()

	refs, err := s.Search(ctx, "developer")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(refs) == 0 {
		t.Fatal("expected matches for 'developer'")
	}
	for _, ref := range refs {
		if ref.Code == "" || ref.Label == "" {
			t.Errorf("expected populated ref, got %+v", ref)
		}
	}

	// Code matching, case-insensitive.
	refs, err = s.Search(ctx, "2512")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(refs) != 1 || refs[0].Label != "Software Developer" {
		t.Errorf("expected the single code match, got %v", refs)
	}

	refs, err = s.Search(ctx, "   ")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(refs) != 0 {
		t.Errorf("expected blank query to match nothing, got %v", refs)
	}
}

func TestStaticSearcherLimit(t *testing.T) {
	s := NewStaticSearcher(provinces, 3)

	refs, err := s.Search(context.Background(), "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(refs) != 0 {
		t.Fatalf("expected empty query to return nothing, got %d", len(refs))
	}

	refs, err = s.Search(context.Background(), "h")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(refs) > 3 {
		t.Errorf("expected at most 3 results, got %d", len(refs))
	}
}

func TestStaticSearcherCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewIndustrySearcher().Search(ctx, "education"); err == nil {
		t.Fatal("expected canceled context to surface an error")
	}
}
