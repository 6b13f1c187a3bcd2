package repository

import (
	"context"
	"errors"
	"fmt"

	"labelguard-backend/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SnapshotRepository is a Postgres-backed snapshot store. The upsert in
// Put replaces the row atomically, so readers never see a half-written
// snapshot.
type SnapshotRepository struct {
	db *pgxpool.Pool
}

var _ storage.SnapshotStore = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates a new snapshot repository.
func NewSnapshotRepository(db *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Put upserts the serialized snapshot for the document key.
func (r *SnapshotRepository) Put(ctx context.Context, key string, data []byte) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO knowledge_snapshots (doc_key, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (doc_key)
		DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`,
		key, data)
	if err != nil {
		return fmt.Errorf("failed to upsert snapshot: %w", err)
	}
	return nil
}

// Get returns the serialized snapshot for the document key.
func (r *SnapshotRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := r.db.QueryRow(ctx,
		`SELECT data FROM knowledge_snapshots WHERE doc_key = $1`, key,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	return data, nil
}

// Delete removes the snapshot row; deleting a missing key is a no-op.
func (r *SnapshotRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM knowledge_snapshots WHERE doc_key = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

// List returns all stored document keys.
func (r *SnapshotRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT doc_key FROM knowledge_snapshots ORDER BY doc_key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot keys: %w", err)
	}
	return keys, nil
}
