package models

import "fmt"

const (
	ColumnCommentText  = "comment_text"
	ColumnCommentClean = "comment_clean"
)

// LabelColumns is the order the label fields are appended to the output CSV.
var LabelColumns = []string{"sentiment", "stance", "toxicity", "topic", "explanation"}

// LabelRecord is the classification attached to one comment. Values are
// taken from the model as-is; enumeration membership is not checked.
type LabelRecord struct {
	Sentiment   string `json:"sentiment"`
	Stance      string `json:"stance"`
	Toxicity    string `json:"toxicity"`
	Topic       string `json:"topic"`
	Explanation string `json:"explanation"`
}

// Values returns the record in LabelColumns order.
func (l LabelRecord) Values() []string {
	return []string{l.Sentiment, l.Stance, l.Toxicity, l.Topic, l.Explanation}
}

// FallbackLabel is substituted whenever a comment could not be classified.
func FallbackLabel(err error) LabelRecord {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return LabelRecord{
		Sentiment:   "neutral",
		Stance:      "mixed",
		Toxicity:    "none",
		Topic:       "unknown",
		Explanation: fmt.Sprintf("Parsing error: %s", msg),
	}
}

// LabelResult tags a LabelRecord with the error that forced a fallback, if
// any. When Err is set, Label already holds FallbackLabel(Err).
type LabelResult struct {
	Label LabelRecord
	Err   error
}

func (r LabelResult) IsFallback() bool {
	return r.Err != nil
}

// Fallback builds the result for a comment that failed to classify.
func Fallback(err error) LabelResult {
	return LabelResult{Label: FallbackLabel(err), Err: err}
}
