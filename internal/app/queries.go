package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"review_analyzer/internal/domain"
)

// QueryService serves the read path: annotate every stored review with a
// fresh sentiment score, sort by compound descending, then filter.
type QueryService struct {
	store    domain.ReviewStore
	scorer   domain.Scorer
	cache    domain.ScoreCache // nil disables memoization
	cacheTTL time.Duration
	workers  int64
}

func NewQueryService(store domain.ReviewStore, scorer domain.Scorer, cache domain.ScoreCache, ttl time.Duration, workers int) *QueryService {
	if workers <= 0 {
		workers = 1
	}
	return &QueryService{store: store, scorer: scorer, cache: cache, cacheTTL: ttl, workers: int64(workers)}
}

// ListReviews returns the filtered, sorted review set. The result is never
// nil; an empty match serializes as [].
func (s *QueryService) ListReviews(ctx context.Context, q domain.ListQuery) ([]domain.Review, error) {
	reviews := s.store.All()

	// Score every review on every read; results land by index so the
	// pre-sort order stays deterministic regardless of goroutine timing.
	sem := semaphore.NewWeighted(s.workers)
	var wg sync.WaitGroup
	for i := range reviews {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer sem.Release(1)
			reviews[i].Sentiment = s.score(ctx, reviews[i].ReviewBody)
		}(i)
	}
	wg.Wait()

	// Highest polarity first; stable so equal compounds keep insertion order.
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].Sentiment.Compound > reviews[j].Sentiment.Compound
	})

	out := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		if q.Location != "" && r.Location != q.Location {
			continue
		}
		if q.StartDate != "" && r.Timestamp < q.StartDate {
			continue
		}
		if q.EndDate != "" && r.Timestamp > q.EndDate {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// score memoizes by content hash when a cache is configured. Bodies are
// immutable after creation, so entries never need invalidation.
func (s *QueryService) score(ctx context.Context, body string) *domain.Sentiment {
	if s.cache == nil {
		sc := s.scorer.Score(body)
		return &sc
	}
	key := scoreKey(body)
	var sc domain.Sentiment
	if ok, _ := s.cache.Get(ctx, key, &sc); ok {
		return &sc
	}
	sc = s.scorer.Score(body)
	_ = s.cache.Set(ctx, key, sc, int(s.cacheTTL.Seconds()))
	return &sc
}

func scoreKey(body string) string {
	sum := sha1.Sum([]byte(body))
	return "score:" + hex.EncodeToString(sum[:])
}
