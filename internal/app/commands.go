package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"review_analyzer/internal/domain"
)

// SubmitService serves the write path: validate, stamp, score, append.
type SubmitService struct {
	store     domain.ReviewStore
	scorer    domain.Scorer
	locations domain.LocationSet
	now       func() time.Time
}

func NewSubmitService(store domain.ReviewStore, scorer domain.Scorer, locations domain.LocationSet) *SubmitService {
	return &SubmitService{store: store, scorer: scorer, locations: locations, now: time.Now}
}

// SubmitReview validates and appends a new review. Validation order is
// fixed: an empty body wins over an invalid location.
func (s *SubmitService) SubmitReview(ctx context.Context, location, body string) (domain.Review, error) {
	if body == "" {
		return domain.Review{}, domain.ErrInvalidData
	}
	if !s.locations.Contains(location) {
		return domain.Review{}, domain.ErrInvalidLocation
	}

	sc := s.scorer.Score(body)
	r := domain.Review{
		ReviewID:   uuid.NewString(),
		Location:   location,
		ReviewBody: body,
		Timestamp:  s.now().Format(domain.TimestampLayout),
		Sentiment:  &sc,
	}

	// Stored copy carries no sentiment; scores are always recomputed at
	// read time, never trusted from state.
	stored := r
	stored.Sentiment = nil
	s.store.Append(stored)

	return r, nil
}
