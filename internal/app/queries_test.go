package app_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"review_analyzer/internal/app"
	"review_analyzer/internal/domain"
	"review_analyzer/internal/storage/memory"
)

// ---- fakes ----

// fakeScorer maps exact review text to a compound score (0 when unknown)
// and counts calls.
type fakeScorer struct {
	mu     sync.Mutex
	scores map[string]float64
	calls  int
}

func (f *fakeScorer) Score(text string) domain.Sentiment {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return domain.Sentiment{Compound: f.scores[text]}
}

func (f *fakeScorer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeCache struct {
	mu    sync.Mutex
	store map[string]domain.Sentiment
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	*dst.(*domain.Sentiment) = v
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = map[string]domain.Sentiment{}
	}
	c.store[key] = v.(domain.Sentiment)
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error { return nil }

func seedStore() *memory.Store {
	return memory.New([]domain.Review{
		{ReviewID: "r1", Location: "Denver, Colorado", ReviewBody: "meh", Timestamp: "2024-01-01 10:00:00"},
		{ReviewID: "r2", Location: "El Paso, Texas", ReviewBody: "great", Timestamp: "2024-02-15 12:00:00"},
		{ReviewID: "r3", Location: "Denver, Colorado", ReviewBody: "awful", Timestamp: "2024-03-01 08:00:00"},
	})
}

func newQuery(store domain.ReviewStore, scorer domain.Scorer, cache domain.ScoreCache) *app.QueryService {
	return app.NewQueryService(store, scorer, cache, 10*time.Minute, 4)
}

// ---- tests ----

func TestListReviews_SortedByCompoundDesc(t *testing.T) {
	scorer := &fakeScorer{scores: map[string]float64{"meh": 0.1, "great": 0.9, "awful": -0.8}}
	q := newQuery(seedStore(), scorer, nil)

	out, err := q.ListReviews(context.Background(), domain.ListQuery{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i-1].Sentiment.Compound < out[i].Sentiment.Compound {
			t.Fatalf("not sorted desc at %d: %f < %f", i, out[i-1].Sentiment.Compound, out[i].Sentiment.Compound)
		}
	}
	if out[0].ReviewID != "r2" || out[2].ReviewID != "r3" {
		t.Fatalf("unexpected order: %s, %s, %s", out[0].ReviewID, out[1].ReviewID, out[2].ReviewID)
	}
}

func TestListReviews_StableForEqualCompound(t *testing.T) {
	// all scores equal -> insertion order must survive the sort
	scorer := &fakeScorer{scores: map[string]float64{}}
	q := newQuery(seedStore(), scorer, nil)

	out, err := q.ListReviews(context.Background(), domain.ListQuery{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	for i, id := range []string{"r1", "r2", "r3"} {
		if out[i].ReviewID != id {
			t.Fatalf("out[%d] = %s, want %s", i, out[i].ReviewID, id)
		}
	}
}

func TestListReviews_LocationFilterExactMatch(t *testing.T) {
	scorer := &fakeScorer{scores: map[string]float64{"meh": 0.1, "great": 0.9, "awful": -0.8}}
	q := newQuery(seedStore(), scorer, nil)

	out, err := q.ListReviews(context.Background(), domain.ListQuery{Location: "Denver, Colorado"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	for _, r := range out {
		if r.Location != "Denver, Colorado" {
			t.Fatalf("unexpected location %q", r.Location)
		}
	}
}

func TestListReviews_UnknownLocationYieldsEmptyNotNil(t *testing.T) {
	q := newQuery(seedStore(), &fakeScorer{}, nil)

	out, err := q.ListReviews(context.Background(), domain.ListQuery{Location: "Mars"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if out == nil {
		t.Fatalf("result must be non-nil so it serializes as []")
	}
	if len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}
}

func TestListReviews_DateFiltersInclusive(t *testing.T) {
	q := newQuery(seedStore(), &fakeScorer{}, nil)

	// start bound equal to r2's timestamp keeps r2
	out, err := q.ListReviews(context.Background(), domain.ListQuery{StartDate: "2024-02-15 12:00:00"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("start_date len = %d, want 2", len(out))
	}

	// end bound equal to r1's timestamp keeps r1
	out, err = q.ListReviews(context.Background(), domain.ListQuery{EndDate: "2024-01-01 10:00:00"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 1 || out[0].ReviewID != "r1" {
		t.Fatalf("end_date unexpected result: %+v", out)
	}

	// inverted range -> empty, never an error
	out, err = q.ListReviews(context.Background(), domain.ListQuery{
		StartDate: "2024-03-01 08:00:00",
		EndDate:   "2024-01-01 10:00:00",
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("inverted range len = %d, want 0", len(out))
	}
}

func TestListReviews_RepeatedReadsIdentical(t *testing.T) {
	scorer := &fakeScorer{scores: map[string]float64{"meh": 0.1, "great": 0.9, "awful": -0.8}}
	q := newQuery(seedStore(), scorer, nil)

	a, _ := q.ListReviews(context.Background(), domain.ListQuery{})
	b, _ := q.ListReviews(context.Background(), domain.ListQuery{})
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ReviewID != b[i].ReviewID || a[i].Sentiment.Compound != b[i].Sentiment.Compound {
			t.Fatalf("read %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestListReviews_CacheSkipsRescoring(t *testing.T) {
	scorer := &fakeScorer{scores: map[string]float64{"meh": 0.1, "great": 0.9, "awful": -0.8}}
	q := newQuery(seedStore(), scorer, &fakeCache{})

	if _, err := q.ListReviews(context.Background(), domain.ListQuery{}); err != nil {
		t.Fatalf("err: %v", err)
	}
	first := scorer.callCount()
	if first != 3 {
		t.Fatalf("first read scored %d times, want 3", first)
	}

	out, err := q.ListReviews(context.Background(), domain.ListQuery{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if scorer.callCount() != first {
		t.Fatalf("second read rescored: %d calls", scorer.callCount())
	}
	if out[0].ReviewID != "r2" || out[0].Sentiment.Compound != 0.9 {
		t.Fatalf("cached read returned wrong head: %+v", out[0])
	}
}
