package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shiftwise/workforce-backend-go/internal/pkg/database"
)

type PostgresStore struct {
	db *database.DB
}

func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the documents table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			path       TEXT PRIMARY KEY,
			doc        JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure documents schema: %w", err)
	}
	return nil
}

// Get implements Store.
func (s *PostgresStore) Get(ctx context.Context, path string, out any) (bool, error) {
	var raw []byte
	err := s.db.QueryRow(ctx, `SELECT doc FROM documents WHERE path = $1`, path).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get document %q: %w", path, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("%w: %q: %v", ErrMalformedDocument, path, err)
	}
	return true, nil
}

// Set implements Store.
func (s *PostgresStore) Set(ctx context.Context, path string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal document %q: %w", path, err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO documents (path, doc, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (path) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()
	`, path, raw)
	if err != nil {
		return fmt.Errorf("failed to set document %q: %w", path, err)
	}
	return nil
}
