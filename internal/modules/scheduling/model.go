// README: Service-scheduling flow states and transition table.
package scheduling

import (
	"errors"
	"fmt"

	"frostdesk/internal/modules/customer"
)

var (
	ErrBadDate  = errors.New("invalid date format")
	ErrPastDate = errors.New("service date is in the past")
)

type State string

const (
	StateAwaitingChoice State = "awaiting_choice"
	StateAwaitingDate   State = "awaiting_date"
	StateDeclined       State = "declined"
	StateScheduledFree  State = "scheduled_free"
	StateScheduledPaid  State = "scheduled_paid"
)

// AllowedTransitions represents the scheduling dialogue as code. Date rejection
// (bad format, past date) is the AwaitingDate self-loop.
var AllowedTransitions = map[State][]State{
	StateAwaitingChoice: {StateDeclined, StateAwaitingDate},
	StateAwaitingDate:   {StateAwaitingDate, StateScheduledFree, StateScheduledPaid},
}

func CanTransition(from, to State) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

// Flow is one in-progress scheduling dialogue. The view is resolved once at
// Begin and carried across turns.
type Flow struct {
	State State
	Email string
	View  *customer.View
}

// transition guards every state change against AllowedTransitions.
func (f *Flow) transition(to State) error {
	if !CanTransition(f.State, to) {
		return fmt.Errorf("scheduling: illegal transition %s -> %s", f.State, to)
	}
	f.State = to
	return nil
}

// Done reports whether the flow reached a terminal state.
func (f *Flow) Done() bool {
	switch f.State {
	case StateDeclined, StateScheduledFree, StateScheduledPaid:
		return true
	}
	return false
}
