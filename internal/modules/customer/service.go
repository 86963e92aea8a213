// README: Record resolver; validates session emails and produces customer views.
package customer

import "context"

// Reader is the lookup capability the resolver needs from a store.
type Reader interface {
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	FindViewByEmail(ctx context.Context, email string) (*View, error)
}

type Service struct {
	store Reader
}

func NewService(store Reader) *Service {
	return &Service{store: store}
}

// ValidateEmail confirms the email is registered. Used once at session start.
func (s *Service) ValidateEmail(ctx context.Context, email string) error {
	_, err := s.store.FindByEmail(ctx, email)
	return err
}

// Resolve pulls fresh customer+product fields for a registered email.
func (s *Service) Resolve(ctx context.Context, email string) (*View, error) {
	return s.store.FindViewByEmail(ctx, email)
}
