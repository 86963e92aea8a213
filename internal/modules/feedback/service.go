// README: Feedback pipeline; classify, persist, then escalate or surface offers.
package feedback

import (
	"context"
	"fmt"
	"strings"

	"frostdesk/internal/logger"
)

// FeedbackStore is the persistence capability the pipeline needs.
type FeedbackStore interface {
	InsertFeedback(ctx context.Context, customerID int64, text string, sentiment Sentiment) (*Record, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]Record, error)
	FindOneAgent(ctx context.Context) (*Agent, error)
	ListOffers(ctx context.Context) ([]Offer, error)
	UpdateCustomerSentiment(ctx context.Context, customerID int64, sentiment Sentiment) error
}

type Service struct {
	store FeedbackStore
	log   *logger.Logger
}

func NewService(store FeedbackStore, log *logger.Logger) *Service {
	return &Service{store: store, log: log}
}

// Result is the presentation-layer outcome of one piece of feedback. Notice is
// the escalation or offer text; it is shown to the user, never stored.
type Result struct {
	Record      *Record
	Sentiment   Sentiment
	ActionItems []string
	Notice      string
}

// Process classifies the text, appends the immutable record, mirrors the
// sentiment onto the customer, and selects the side effect for the sentiment
// bucket. Negative feedback always carries a non-empty action-item list.
func (s *Service) Process(ctx context.Context, customerID int64, text string) (*Result, error) {
	sentiment := ClassifySentiment(text)
	items := ActionItems(text)

	rec, err := s.store.InsertFeedback(ctx, customerID, text, sentiment)
	if err != nil {
		return nil, fmt.Errorf("feedback: insert: %w", err)
	}
	if err := s.store.UpdateCustomerSentiment(ctx, customerID, sentiment); err != nil && s.log != nil {
		s.log.WithError(err).Warn("failed to mirror sentiment onto customer")
	}

	res := &Result{Record: rec, Sentiment: sentiment, ActionItems: items}

	switch sentiment {
	case SentimentNegative:
		if len(res.ActionItems) == 0 {
			res.ActionItems = append(res.ActionItems, defaultNegativeActions...)
		}
		res.Notice = s.escalationNotice(ctx)
	case SentimentPositive:
		res.Notice = s.offersNotice(ctx)
	default:
		res.Notice = "Thank you, your feedback has been recorded."
	}
	return res, nil
}

func (s *Service) escalationNotice(ctx context.Context) string {
	agent, err := s.store.FindOneAgent(ctx)
	if err != nil {
		return "We are sorry for the inconvenience! No human agent is available at the moment."
	}
	return fmt.Sprintf("We are sorry for the inconvenience! Connecting you to %s at %s.", agent.Name, agent.Phone)
}

func (s *Service) offersNotice(ctx context.Context) string {
	offers, err := s.store.ListOffers(ctx)
	if err != nil || len(offers) == 0 {
		return "Thank you for your valuable feedback! No special offers are available at the moment."
	}
	details := make([]string, len(offers))
	for i, o := range offers {
		details[i] = o.Details
	}
	return "Thank you for your valuable feedback! Special offers: " + strings.Join(details, ", ")
}

// History returns all feedback a customer has submitted, oldest first.
func (s *Service) History(ctx context.Context, customerID int64) ([]Record, error) {
	return s.store.ListByCustomer(ctx, customerID)
}

// Offers returns the currently running special offers.
func (s *Service) Offers(ctx context.Context) ([]Offer, error) {
	return s.store.ListOffers(ctx)
}
