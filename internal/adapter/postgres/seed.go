package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// seedAdvisoryLockID serializes concurrent seeders across instances.
const seedAdvisoryLockID = 0x6465616c

// Seed inserts a small set of demo rows, but only when the organizations
// table is empty. The emptiness check runs inside the same transaction as
// the inserts, under an advisory lock, so concurrent startups cannot
// double-seed. Safe to call on every startup.
func (s *Store) Seed(ctx context.Context) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	// Released automatically at commit or rollback.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, seedAdvisoryLockID); err != nil {
		return fmt.Errorf("seed lock: %w", err)
	}

	var count int
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM organizations`).Scan(&count); err != nil {
		return fmt.Errorf("count organizations: %w", err)
	}
	if count > 0 {
		return nil
	}

	orgID := uuid.NewString()
	if _, err := tx.Exec(ctx,
		`INSERT INTO organizations (id, name, industry) VALUES ($1, $2, $3)`,
		orgID, "Acme", "Tech",
	); err != nil {
		return fmt.Errorf("seed organization: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO contacts (id, organization_id, first_name, last_name, email)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.NewString(), orgID, "Ada", "Lovelace", "ada@acme.example",
	); err != nil {
		return fmt.Errorf("seed contact: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO deals (id, organization_id, title, amount) VALUES ($1, $2, $3, $4)`,
		uuid.NewString(), orgID, "Website", 5000,
	); err != nil {
		return fmt.Errorf("seed deal: %w", err)
	}

	return tx.Commit(ctx)
}
