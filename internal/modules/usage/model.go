// README: Monthly planning-credit model.
package usage

import "errors"

// ErrQuotaExhausted signals the client has no planning credits left this month.
var ErrQuotaExhausted = errors.New("monthly planning quota exhausted")

// DefaultMonthlyCredits is used when no quota is configured.
const DefaultMonthlyCredits = 100

// Usage is one client's remaining credits for the current month.
type Usage struct {
	ClientKey        string
	CreditsRemaining int
	LastResetMonth   string
}
