// README: Feedback records plus the agent and offer lookup targets.
package feedback

import (
	"errors"
	"time"
)

var (
	ErrNoAgent  = errors.New("no agent available")
	ErrNotFound = errors.New("feedback record not found")
)

// Record is append-only; it never changes once inserted.
type Record struct {
	ID         int64
	CustomerID int64
	Text       string
	Sentiment  Sentiment
	CreatedAt  time.Time
}

type Agent struct {
	ID    int64
	Name  string
	Email string
	Phone string
}

type Offer struct {
	ID         int64
	Details    string
	ValidUntil time.Time
}
