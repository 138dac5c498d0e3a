// Package store keeps an index of outline symbols in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/t14raptor/jsparse/outline"
)

// Entry is an indexed symbol together with the file it was found in.
type Entry struct {
	File string `json:"file"`
	outline.Symbol
}

type Store struct {
	db *sql.DB
}

// Open opens or creates the index database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS symbols (
		file TEXT NOT NULL,
		type TEXT NOT NULL,
		name TEXT NOT NULL,
		line INTEGER NOT NULL,
		depth INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_symbols_name ON symbols(name);
	CREATE INDEX IF NOT EXISTS idx_symbols_file ON symbols(file);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Replace swaps the symbols stored for file in a single transaction.
// Unnamed symbols are not indexed.
func (s *Store) Replace(ctx context.Context, file string, symbols []outline.Symbol) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM symbols WHERE file = ?`, file); err != nil {
		return fmt.Errorf("failed to clear symbols of %s: %w", file, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO symbols (file, type, name, line, depth) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, sym := range symbols {
		if sym.Name == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, file, sym.Type, sym.Name, sym.Line, sym.Depth); err != nil {
			return fmt.Errorf("failed to insert symbol %s: %w", sym.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit symbols of %s: %w", file, err)
	}
	return nil
}

// Find returns every symbol called name, ordered by file and line.
func (s *Store) Find(ctx context.Context, name string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT file, type, name, line, depth FROM symbols WHERE name = ? ORDER BY file, line`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query symbols: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.File, &e.Type, &e.Name, &e.Line, &e.Depth); err != nil {
			return nil, fmt.Errorf("failed to scan symbol: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
