// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/marklist/internal/models"
)

// Store defines the interface for item storage operations.
// This abstraction allows swapping storage backends (MongoDB, SQLite)
// without changing the service layer.
type Store interface {
	// ListItems returns every stored item in the backend's natural order.
	// An empty store yields an empty, non-nil slice.
	ListItems(ctx context.Context) ([]models.Item, error)

	// CreateItem persists a new item.
	// The item.ID field will be populated by the store.
	CreateItem(ctx context.Context, item *models.Item) error

	// DeleteItems removes every item whose ID is in ids and reports how many
	// were removed. IDs that match nothing, including malformed ones, are ignored.
	DeleteItems(ctx context.Context, ids []string) (int64, error)

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
