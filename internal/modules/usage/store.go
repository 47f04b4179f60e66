// README: Postgres store for plan_usage persistence.
package usage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles plan_usage persistence.
type Store struct {
	db      *pgxpool.Pool
	credits int
}

// NewStore returns a Store backed by the given connection pool.
// credits is the monthly allowance; non-positive means the default.
func NewStore(db *pgxpool.Pool, credits int) *Store {
	if credits <= 0 {
		credits = DefaultMonthlyCredits
	}
	return &Store{db: db, credits: credits}
}

// UseCredit atomically checks the monthly quota and deducts one credit.
// It resets the counter to the configured allowance when last_reset_month is
// behind the current month. Returns ErrQuotaExhausted when 0 rows are updated
// (quota exhausted or client absent).
func (s *Store) UseCredit(ctx context.Context, clientKey string) error {
	now := time.Now().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE plan_usage SET
			credits_remaining = CASE WHEN last_reset_month != $1 THEN $2 - 1 ELSE credits_remaining - 1 END,
			last_reset_month = $1
		WHERE client_key = $3 AND (last_reset_month < $1 OR credits_remaining > 0)
	`, now, s.credits, clientKey)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotaExhausted
	}
	return nil
}

// EnsureClient inserts a new plan_usage row with the full allowance.
// If the row already exists the insert is silently skipped.
func (s *Store) EnsureClient(ctx context.Context, clientKey string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO plan_usage (client_key, credits_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (client_key) DO NOTHING
	`, clientKey, s.credits, time.Now().Format("2006-01"))
	return err
}
