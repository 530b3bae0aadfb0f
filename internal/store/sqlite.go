package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Prepare(query string) (*sql.Stmt, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Store keeps the history of reconciliation runs: one row per run in
// `runs` and the reconciled sales of each run in `run_items`.
type Store struct {
	db DBTX
}

// runHistoryDSN enables the run_items -> runs cascade and lets a second
// concil process wait for the write lock instead of failing at once.
const runHistoryDSN = "?_foreign_keys=on&_busy_timeout=5000"

// NewStore opens the run history at dbPath, creating the file and its
// directory on first use, and brings the schema up to date.
func NewStore(dbPath string, migrationsFS fs.FS) (*Store, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("can not create run history directory %s: %w", dbDir, err)
	}

	db, err := sql.Open("sqlite3", dbPath+runHistoryDSN)
	if err != nil {
		return nil, fmt.Errorf("can not open run history %s: %w", dbPath, err)
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("can not reach run history %s: %w", dbPath, err)
	}
	if err := runMigrations(db, migrationsFS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate run history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// ExecTx runs fn against a transaction so a run and its items are saved
// together or not at all.
func (s *Store) ExecTx(fn func(Repository) error) error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return fmt.Errorf("run history is already in a transaction")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin run history transaction: %w", err)
	}

	if err := fn(&Store{db: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("run not saved: %w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run history: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if db, ok := s.db.(*sql.DB); ok {
		return db.Close()
	}
	return nil
}

func runMigrations(db *sql.DB, migrationsFS fs.FS) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read run history migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply run history migrations: %w", err)
	}

	return nil
}
