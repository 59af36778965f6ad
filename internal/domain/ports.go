package domain

import "context"

// Scorer turns review text into a polarity score. Implementations must be
// pure and safe for concurrent use.
type Scorer interface {
	Score(text string) Sentiment
}

// ReviewStore is the process-wide review collection. All returns a snapshot
// in insertion order (pre-loaded reviews first); Append adds to the end.
// There is no update or delete.
type ReviewStore interface {
	All() []Review
	Append(r Review)
}

// ScoreCache memoizes computed sentiment scores. Get reports whether the key
// was present; a nil cache everywhere means "recompute on every read".
type ScoreCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// ListQuery carries the GET filters. Empty string means "no filter";
// date bounds compare lexicographically and are inclusive.
type ListQuery struct {
	Location  string
	StartDate string
	EndDate   string
}
