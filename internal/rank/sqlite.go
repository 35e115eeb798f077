package rank

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver
)

// Schema holds the DDL for the ranks table. cmd/shardgen applies it when
// building a SQLite dataset.
const Schema = `
CREATE TABLE IF NOT EXISTS ranks (
	domain TEXT PRIMARY KEY,
	rank   INTEGER NOT NULL
);
`

// SQLiteSource resolves ranks from a SQLite database instead of shard files.
// Useful when the dataset is managed as a single artifact.
type SQLiteSource struct {
	db *sql.DB
}

// OpenSQLiteSource opens the database at path and verifies it is reachable.
func OpenSQLiteSource(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("rank: opening sqlite dataset: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("rank: pinging sqlite dataset: %w", err)
	}
	return &SQLiteSource{db: db}, nil
}

// NewSQLiteSource wraps an existing database handle.
func NewSQLiteSource(db *sql.DB) *SQLiteSource {
	return &SQLiteSource{db: db}
}

// Resolve looks the domain up in the ranks table. A missing row resolves to
// Unranked.
func (s *SQLiteSource) Resolve(ctx context.Context, domainName string) (int, error) {
	domainName = Normalize(domainName)
	var rank int
	err := s.db.QueryRowContext(ctx, `SELECT rank FROM ranks WHERE domain = ?`, domainName).Scan(&rank)
	if errors.Is(err, sql.ErrNoRows) {
		return Unranked, nil
	}
	if err != nil {
		return Unranked, fmt.Errorf("rank: querying sqlite dataset for %q: %w", domainName, err)
	}
	return rank, nil
}

// Close closes the underlying database.
func (s *SQLiteSource) Close() error { return s.db.Close() }
