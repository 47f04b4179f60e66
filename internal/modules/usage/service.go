// README: Planning-credit service; one credit per generated itinerary.
package usage

import "context"

// Service orchestrates planning-credit logic.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// UseCredit deducts one credit from the client's monthly allowance.
// If the client row does not exist yet it is initialised and the credit is
// immediately consumed. Returns ErrQuotaExhausted when the quota for the
// current month is spent.
func (s *Service) UseCredit(ctx context.Context, clientKey string) error {
	err := s.store.UseCredit(ctx, clientKey)
	if err != ErrQuotaExhausted {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureClient(ctx, clientKey); initErr != nil {
		return initErr
	}
	return s.store.UseCredit(ctx, clientKey)
}
