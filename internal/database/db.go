package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// rosterDSN enables foreign keys so stamps cannot outlive their candidate.
func rosterDSN(path, mode string) string {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	if mode != "" {
		dsn += "&mode=" + mode
	}
	return dsn
}

// Open opens the roster database for writing. The seed command uses it after
// RunMigrations has created the schema. A single connection keeps the
// candidate and stamp inserts of one seed on the same sqlite handle.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", rosterDSN(path, ""))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	return db, nil
}

// OpenReadOnly opens an existing roster database without write access. The
// dashboard reads through it so a running session never alters the roster.
func OpenReadOnly(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", rosterDSN(path, "ro"))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// WithTx runs fn in one transaction and rolls back if fn fails, so a seed
// that hits a bad candidate leaves no partial roster behind.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin roster tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit roster tx: %w", err)
	}
	return nil
}
