// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/marklist/internal/models"
	"github.com/mmynk/marklist/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping checks that the database file is still usable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// ListItems returns all items in insertion order.
func (s *SQLiteStore) ListItems(ctx context.Context) ([]models.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, text, is_marked FROM items ORDER BY seq",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var (
			item   models.Item
			marked sql.NullBool
		)
		if err := rows.Scan(&item.ID, &item.Text, &marked); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		if marked.Valid {
			item.IsMarked = &marked.Bool
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, nil
}

// CreateItem persists a new item and assigns its ID.
func (s *SQLiteStore) CreateItem(ctx context.Context, item *models.Item) error {
	id := uuid.New().String()

	var marked sql.NullBool
	if item.IsMarked != nil {
		marked = sql.NullBool{Bool: *item.IsMarked, Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO items (id, text, is_marked) VALUES (?, ?, ?)",
		id, item.Text, marked,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	item.ID = id
	return nil
}

// DeleteItems removes the items with the given IDs in a single statement.
// The IDs travel as one JSON array parameter, so the set size is not bounded
// by SQLite's host parameter limit.
func (s *SQLiteStore) DeleteItems(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	idsJSON, err := json.Marshal(ids)
	if err != nil {
		return 0, fmt.Errorf("failed to encode item ids: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		"DELETE FROM items WHERE id IN (SELECT value FROM json_each(?))",
		string(idsJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete items: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted items: %w", err)
	}
	return n, nil
}
