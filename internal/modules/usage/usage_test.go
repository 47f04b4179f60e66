// README: Planning-credit module tests (lazy reset and quota boundary logic).
package usage

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TestUseCreditCrossMonthReset verifies that a client with 0 credits left from
// a previous month is automatically reset and the request succeeds.
func TestUseCreditCrossMonthReset(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	// Seed client with 0 credits from a past month.
	if _, err := db.Exec(ctx, "INSERT INTO plan_usage VALUES ('203.0.113.9', 0, '2000-01')"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.UseCredit(ctx, "203.0.113.9"); err != nil {
		t.Fatalf("UseCredit after cross-month reset: %v", err)
	}

	var remaining int
	if err := db.QueryRow(ctx, "SELECT credits_remaining FROM plan_usage WHERE client_key = '203.0.113.9'").Scan(&remaining); err != nil {
		t.Fatalf("query: %v", err)
	}
	if remaining != DefaultMonthlyCredits-1 {
		t.Fatalf("expected %d credits remaining, got %d", DefaultMonthlyCredits-1, remaining)
	}
}

// TestUseCreditExhausted verifies that a client with 0 credits in the current month is blocked.
func TestUseCreditExhausted(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	if _, err := db.Exec(ctx, "INSERT INTO plan_usage (client_key, credits_remaining, last_reset_month) VALUES ('203.0.113.10', 0, TO_CHAR(NOW(), 'YYYY-MM'))"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := svc.UseCredit(ctx, "203.0.113.10")
	if err != ErrQuotaExhausted {
		t.Fatalf("expected ErrQuotaExhausted, got %v", err)
	}
}

// TestUseCreditNewClient verifies that a client absent from the table is initialised on first call.
func TestUseCreditNewClient(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	if err := svc.UseCredit(ctx, "203.0.113.11"); err != nil {
		t.Fatalf("UseCredit for new client: %v", err)
	}

	var remaining int
	if err := db.QueryRow(ctx, "SELECT credits_remaining FROM plan_usage WHERE client_key = '203.0.113.11'").Scan(&remaining); err != nil {
		t.Fatalf("query: %v", err)
	}
	if remaining != DefaultMonthlyCredits-1 {
		t.Fatalf("expected %d credits remaining after first use, got %d", DefaultMonthlyCredits-1, remaining)
	}
}

// setupTestService creates a real postgres-backed Service for integration tests.
// It skips the test when WAYFARE_TEST_DSN is not set.
func setupTestService(t *testing.T) (*Service, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("WAYFARE_TEST_DSN")
	if dsn == "" {
		t.Skip("WAYFARE_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := applyMigrations(ctx, db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	if _, err := db.Exec(ctx, "TRUNCATE TABLE plan_usage"); err != nil {
		t.Fatalf("truncate plan_usage: %v", err)
	}

	return NewService(NewStore(db, DefaultMonthlyCredits)), db
}

func applyMigrations(ctx context.Context, db *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	migrations := []string{
		"0001_saved_trips.sql",
		"0002_plan_usage.sql",
	}
	for _, name := range migrations {
		path := filepath.Join(root, "migrations", name)
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		cleaned := stripSQLComments(string(content))
		for _, stmt := range splitSQL(cleaned) {
			if _, err := db.Exec(ctx, stmt); err != nil {
				return err
			}
		}
	}
	return nil
}

func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < 6; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func stripSQLComments(input string) string {
	var b strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		b.WriteString(scanner.Text())
		b.WriteString("\n")
	}
	return b.String()
}

func splitSQL(input string) []string {
	parts := strings.Split(input, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}
