// README: Stateful chat session; routes intents and carries the scheduling dialogue.
package chat

import (
	"context"
	"errors"
	"fmt"

	"frostdesk/internal/ai"
	"frostdesk/internal/modules/customer"
	"frostdesk/internal/modules/intent"
	"frostdesk/internal/modules/scheduling"
)

// ErrUnregistered terminates a session before any intent is processed.
var ErrUnregistered = errors.New("chat: email is not registered")

type Session struct {
	email     string
	customers *customer.Service
	scheduler *scheduling.Service
	answerer  ai.Answerer

	pending *scheduling.Flow
	done    bool
}

// NewSession validates the email once and binds the session to it.
func NewSession(ctx context.Context, email string, customers *customer.Service, scheduler *scheduling.Service, answerer ai.Answerer) (*Session, error) {
	if err := customers.ValidateEmail(ctx, email); err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			return nil, ErrUnregistered
		}
		return nil, err
	}
	return &Session{
		email:     email,
		customers: customers,
		scheduler: scheduler,
		answerer:  answerer,
	}, nil
}

// Done reports whether the user has ended the session.
func (s *Session) Done() bool { return s.done }

// Handle processes one line of input and returns the bot's reply. While a
// scheduling dialogue is pending, input feeds the flow instead of the
// classifier. Customer fields are re-resolved per intent so replies always see
// fresh data.
func (s *Session) Handle(ctx context.Context, input string) (string, error) {
	if s.pending != nil {
		reply, err := s.scheduler.Advance(ctx, s.pending, input)
		if err != nil {
			s.pending = nil
			return "", err
		}
		if s.pending.Done() {
			s.pending = nil
		}
		return reply, nil
	}

	switch intent.Classify(input) {
	case intent.IntentExit:
		s.done = true
		return GoodbyeReply, nil

	case intent.IntentMaintenance:
		view, err := s.customers.Resolve(ctx, s.email)
		if err != nil {
			return "", fmt.Errorf("chat: resolve customer: %w", err)
		}
		return MaintenanceReply(ctx, s.answerer, view), nil

	case intent.IntentServicing:
		flow, prompt, err := s.scheduler.Begin(ctx, s.email)
		if err != nil {
			return "", fmt.Errorf("chat: begin scheduling: %w", err)
		}
		s.pending = flow
		return prompt, nil

	case intent.IntentWarranty:
		view, err := s.customers.Resolve(ctx, s.email)
		if err != nil {
			return "", fmt.Errorf("chat: resolve customer: %w", err)
		}
		return WarrantyReply(view), nil

	case intent.IntentGeneral:
		return GeneralReply(ctx, s.answerer, input), nil

	default:
		return OutOfDomainReply, nil
	}
}
