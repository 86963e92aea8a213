// README: Service scheduler; date validation and the warranty-based pricing branch.
package scheduling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"frostdesk/internal/ai"
	"frostdesk/internal/modules/customer"
	"frostdesk/internal/types"
)

// CustomerStore is the persistence capability the scheduler needs.
type CustomerStore interface {
	FindViewByEmail(ctx context.Context, email string) (*customer.View, error)
	UpdateLastServiceDate(ctx context.Context, email string, date time.Time) error
}

type Service struct {
	store    CustomerStore
	answerer ai.Answerer
	now      func() time.Time
}

func NewService(store CustomerStore, answerer ai.Answerer) *Service {
	return &Service{
		store:    store,
		answerer: answerer,
		now:      time.Now,
	}
}

// Begin resolves the customer and opens the yes/no dialogue.
func (s *Service) Begin(ctx context.Context, email string) (*Flow, string, error) {
	view, err := s.store.FindViewByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	last := "You have no service on record."
	if view.LastServiceDate != nil {
		last = fmt.Sprintf("Your last service date was: %s.", types.FormatDate(*view.LastServiceDate))
	}
	prompt := last + " Would you like to schedule a new service? (yes/no)"
	return &Flow{State: StateAwaitingChoice, Email: email, View: view}, prompt, nil
}

// Advance feeds one line of user input into the flow and returns the reply.
// Rejected dates keep the flow in AwaitingDate so the caller re-prompts.
func (s *Service) Advance(ctx context.Context, f *Flow, input string) (string, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	switch f.State {
	case StateAwaitingChoice:
		if input != "yes" {
			if err := f.transition(StateDeclined); err != nil {
				return "", err
			}
			return "Okay, no service scheduled.", nil
		}
		if err := f.transition(StateAwaitingDate); err != nil {
			return "", err
		}
		return "Enter the new service date (YYYY-MM-DD):", nil

	case StateAwaitingDate:
		res, err := s.schedule(ctx, f.Email, f.View, input)
		switch err {
		case nil:
		case ErrBadDate:
			// self-loop, still goes through the table
			if err := f.transition(StateAwaitingDate); err != nil {
				return "", err
			}
			return "Invalid date format. Please use YYYY-MM-DD.", nil
		case ErrPastDate:
			if err := f.transition(StateAwaitingDate); err != nil {
				return "", err
			}
			return "The selected date is in the past. Please choose a future date.", nil
		default:
			return "", err
		}
		if err := f.transition(res.State); err != nil {
			return "", err
		}
		return res.Reply, nil

	default:
		return "", fmt.Errorf("scheduling: advance on terminal state %s", f.State)
	}
}

// Result is the outcome of a one-shot scheduling request.
type Result struct {
	State State
	Date  time.Time
	Reply string
}

// Schedule validates and persists a proposed service date in a single call.
// Used by the HTTP surface, where the dialogue is collapsed into one request.
func (s *Service) Schedule(ctx context.Context, email, dateStr string) (*Result, error) {
	view, err := s.store.FindViewByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.schedule(ctx, email, view, dateStr)
}

// schedule implements the date check and the free/paid branch. The warranty
// boundary is inclusive: scheduling on the expiry date itself is still free.
// On the paid path the pricing call's failure text is embedded in the reply;
// the new last-service-date is persisted either way.
func (s *Service) schedule(ctx context.Context, email string, view *customer.View, dateStr string) (*Result, error) {
	date, err := types.ParseDate(strings.TrimSpace(dateStr))
	if err != nil {
		return nil, ErrBadDate
	}

	today := s.now()
	if types.DayBefore(date, today) {
		return nil, ErrPastDate
	}

	if !types.DayBefore(view.WarrantyExpiry, today) {
		if err := s.store.UpdateLastServiceDate(ctx, email, date); err != nil {
			return nil, err
		}
		return &Result{
			State: StateScheduledFree,
			Date:  date,
			Reply: fmt.Sprintf("Your free service has been scheduled for %s!", types.FormatDate(date)),
		}, nil
	}

	cost, askErr := s.answerer.Ask(ctx, ai.ServiceCostPrompt(view.ProductModel))
	if askErr != nil {
		cost = askErr.Error()
	}
	if err := s.store.UpdateLastServiceDate(ctx, email, date); err != nil {
		return nil, err
	}
	return &Result{
		State: StateScheduledPaid,
		Date:  date,
		Reply: fmt.Sprintf("Your service has been scheduled for %s. Your warranty has expired. Estimated service cost: %s",
			types.FormatDate(date), cost),
	}, nil
}
