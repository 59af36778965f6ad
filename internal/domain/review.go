package domain

// Review is one customer review. JSON names match the wire format served
// since the first deployment, including the lowercase "sentiment" key.
type Review struct {
	ReviewID   string     `json:"ReviewId,omitempty" csv:"ReviewId"`
	Location   string     `json:"Location" csv:"Location"`
	ReviewBody string     `json:"ReviewBody" csv:"ReviewBody"`
	Timestamp  string     `json:"Timestamp" csv:"Timestamp"` // YYYY-MM-DD HH:MM:SS, sorts lexicographically
	Sentiment  *Sentiment `json:"sentiment,omitempty" csv:"-"`
}

// Sentiment is a VADER polarity score. Compound is in [-1, 1]; neg/neu/pos
// are the per-class proportions of the scored text.
type Sentiment struct {
	Neg      float64 `json:"neg"`
	Neu      float64 `json:"neu"`
	Pos      float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// TimestampLayout is the storage and wire format for review timestamps.
const TimestampLayout = "2006-01-02 15:04:05"
