package dataset

import (
	"context"
	"fmt"
	"os"

	"github.com/jask/admissions/internal/database"
	"github.com/jask/admissions/internal/database/repository"
	"github.com/jask/admissions/internal/roster"
)

// SQLite reads a roster database written by `admissions seed`. The database is
// opened read-only and closed once the roster is in memory.
type SQLite struct {
	Path string
}

func (s SQLite) Name() string { return "sqlite" }

func (s SQLite) Load(ctx context.Context) ([]roster.Candidate, error) {
	if _, err := os.Stat(s.Path); err != nil {
		return nil, err
	}
	db, err := database.OpenReadOnly(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer db.Close()
	return repository.NewCandidateRepo(db).List(ctx)
}
