package sentiment

import (
	"time"

	"github.com/jonreiter/govader"

	"review_analyzer/internal/adapters/observability"
	"review_analyzer/internal/domain"
)

// Analyzer scores text with the VADER lexicon. The underlying lexicon is
// read-only after construction, so one Analyzer serves all requests.
type Analyzer struct {
	sia *govader.SentimentIntensityAnalyzer
}

func New() *Analyzer {
	return &Analyzer{sia: govader.NewSentimentIntensityAnalyzer()}
}

func (a *Analyzer) Score(text string) domain.Sentiment {
	start := time.Now()
	s := a.sia.PolarityScores(text)
	observability.ObserveScore(time.Since(start))
	return domain.Sentiment{
		Neg:      s.Negative,
		Neu:      s.Neutral,
		Pos:      s.Positive,
		Compound: s.Compound,
	}
}
