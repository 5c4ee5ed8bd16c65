package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/admissions/internal/database/repository"
	"github.com/jask/admissions/internal/roster"
)

// SeedRoster loads cands into an empty database and returns how many rows were
// written. It is idempotent: a database that already holds candidates is left
// alone and 0 is returned.
func SeedRoster(ctx context.Context, db *sql.DB, cands []roster.Candidate) (int, error) {
	if err := roster.Validate(cands); err != nil {
		return 0, err
	}
	repo := repository.NewCandidateRepo(db)
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count candidates: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	err = WithTx(ctx, db, func(tx *sql.Tx) error {
		for _, c := range cands {
			if err := repo.Insert(ctx, tx, c); err != nil {
				return fmt.Errorf("insert candidate %d: %w", c.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(cands), nil
}
