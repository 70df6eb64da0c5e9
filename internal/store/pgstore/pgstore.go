// Package pgstore keeps the snapshot in PostgreSQL via pgx.
package pgstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/internal/store"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS graph_snapshots (
    key        TEXT PRIMARY KEY,
    document   JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Store implements store.Store over a pgx connection pool.
type Store struct {
	db *pgxpool.Pool
}

var _ store.Store = (*Store)(nil)

// New wraps an existing pool. The pool is closed by Close.
func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Connect opens a pool for url and creates the schema.
func Connect(ctx context.Context, url string) (*Store, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("pgstore: connect: %w", err)
	}
	s := New(pool)
	if err := s.CreateSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// CreateSchema creates graph_snapshots if it does not exist.
func (s *Store) CreateSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("pgstore: create schema: %w", err)
	}

	return nil
}

// DropSchema drops graph_snapshots.
func (s *Store) DropSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DROP TABLE IF EXISTS graph_snapshots;`)
	return err
}

// Save upserts the snapshot row.
func (s *Store) Save(ctx context.Context, g *core.Graph) error {
	data, err := store.Encode(g)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("pgstore: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO graph_snapshots (key, document, updated_at) VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET document = EXCLUDED.document, updated_at = NOW()`,
		store.Key, data,
	); err != nil {
		return fmt.Errorf("pgstore: upsert: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("pgstore: commit: %w", err)
	}

	return nil
}

// Load reads the snapshot row or returns store.ErrNoSnapshot.
func (s *Store) Load(ctx context.Context) (*core.Graph, error) {
	var data []byte
	err := s.db.QueryRow(ctx,
		`SELECT document FROM graph_snapshots WHERE key = $1`, store.Key,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("pgstore: load: %w", err)
	}

	return store.Decode(data)
}

// Close closes the pool.
func (s *Store) Close() error {
	s.db.Close()
	return nil
}
