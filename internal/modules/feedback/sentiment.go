// README: Cue-word sentiment classification and action-item derivation.
package feedback

import "strings"

type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

var negativeCues = []string{"angry", "frustrated", "bad", "issue", "poor", "terrible"}

var positiveCues = []string{"happy", "great", "thank you", "satisfied", "excellent", "amazing"}

// Action-item cue sets are evaluated independently of the sentiment cues, so a
// Neutral text can still produce action items.
var negativeActionCues = []string{"angry", "bad", "issue", "frustrated"}

var positiveActionCues = []string{"happy", "great", "thank you", "excellent"}

var defaultNegativeActions = []string{
	"Apologize for the inconvenience.",
	"Escalate the issue to a manager.",
}

// ClassifySentiment buckets feedback text; a negative cue always wins over a
// positive one.
func ClassifySentiment(text string) Sentiment {
	s := strings.ToLower(text)
	switch {
	case containsAny(s, negativeCues):
		return SentimentNegative
	case containsAny(s, positiveCues):
		return SentimentPositive
	default:
		return SentimentNeutral
	}
}

// ActionItems derives follow-ups from the feedback text. Both cue sets are
// checked; a text can trigger items from both.
func ActionItems(text string) []string {
	s := strings.ToLower(text)
	var items []string
	if containsAny(s, negativeActionCues) {
		items = append(items,
			"Apologize for the inconvenience.",
			"Escalate the issue to a manager.",
		)
	}
	if containsAny(s, positiveActionCues) {
		items = append(items,
			"Thank the customer for their feedback.",
			"Recommend additional services.",
		)
	}
	return items
}

func containsAny(text string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			return true
		}
	}
	return false
}
