package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jask/admissions/internal/roster"
)

// CandidateRepo reads and writes the roster tables.
type CandidateRepo struct {
	db *sql.DB
}

func NewCandidateRepo(db *sql.DB) *CandidateRepo { return &CandidateRepo{db: db} }

// Insert writes c and its stamps inside tx.
func (r *CandidateRepo) Insert(ctx context.Context, tx *sql.Tx, c roster.Candidate) error {
	_, err := tx.ExecContext(ctx, `
	INSERT INTO candidates(
	 id, name, program, gpa, status, applied_date, email, phone, address, birth_date, expected_graduation)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		c.ID, c.Name, c.Program, c.GPA, string(c.Status), formatDate(c.AppliedDate),
		c.Email, c.Phone, c.Address, formatDate(c.BirthDate), c.ExpectedGraduation)
	if err != nil {
		return err
	}
	for _, s := range c.Stamps {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO stamps(id, candidate_id, name, category, earned_date, description, evidence)
		VALUES(?, ?, ?, ?, ?, ?, ?);
		`, s.ID, c.ID, s.Name, string(s.Category), formatDate(s.EarnedDate), s.Description, s.Evidence)
		if err != nil {
			return fmt.Errorf("stamp %d: %w", s.ID, err)
		}
	}
	return nil
}

// Count returns the number of candidates.
func (r *CandidateRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&n)
	return n, err
}

// List returns every candidate ordered by id, each with its stamps.
func (r *CandidateRepo) List(ctx context.Context) ([]roster.Candidate, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, program, gpa, status, applied_date, email, phone, address, birth_date, expected_graduation
	FROM candidates ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []roster.Candidate{}
	index := map[int]int{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		index[c.ID] = len(out)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stamps, err := r.db.QueryContext(ctx, `
	SELECT candidate_id, id, name, category, earned_date, description, evidence
	FROM stamps ORDER BY candidate_id, earned_date, id`)
	if err != nil {
		return nil, err
	}
	defer stamps.Close()
	for stamps.Next() {
		var (
			candidateID int
			s           roster.Stamp
			category    string
			earned      string
		)
		if err := stamps.Scan(&candidateID, &s.ID, &s.Name, &category, &earned, &s.Description, &s.Evidence); err != nil {
			return nil, err
		}
		s.Category = roster.Category(category)
		if s.EarnedDate, err = parseDate(earned); err != nil {
			return nil, fmt.Errorf("stamp %d earned_date: %w", s.ID, err)
		}
		i, ok := index[candidateID]
		if !ok {
			return nil, fmt.Errorf("stamp %d references missing candidate %d", s.ID, candidateID)
		}
		out[i].Stamps = append(out[i].Stamps, s)
	}
	return out, stamps.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCandidate(row scanner) (roster.Candidate, error) {
	var c roster.Candidate
	var status, applied, birth string
	if err := row.Scan(&c.ID, &c.Name, &c.Program, &c.GPA, &status, &applied,
		&c.Email, &c.Phone, &c.Address, &birth, &c.ExpectedGraduation); err != nil {
		return roster.Candidate{}, err
	}
	c.Status = roster.Status(status)
	var err error
	if c.AppliedDate, err = parseDate(applied); err != nil {
		return roster.Candidate{}, fmt.Errorf("candidate %d applied_date: %w", c.ID, err)
	}
	if c.BirthDate, err = parseDate(birth); err != nil {
		return roster.Candidate{}, fmt.Errorf("candidate %d birth_date: %w", c.ID, err)
	}
	return c, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(roster.DateLayout)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return roster.ParseDate(s)
}
