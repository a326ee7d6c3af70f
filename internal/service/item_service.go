package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/marklist/internal/models"
	"github.com/mmynk/marklist/internal/storage"
)

// ItemService implements the list, create and bulk-delete operations over a
// storage backend. Failures come back as *models.ValidationError or
// *storage.Error.
type ItemService struct {
	store storage.Store
}

// NewItemService creates a new ItemService with the given storage backend.
func NewItemService(store storage.Store) *ItemService {
	return &ItemService{store: store}
}

// List returns all stored items.
func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, storage.Wrap("list", err)
	}
	return items, nil
}

// Create validates the input and persists a new item with a fresh ID.
func (s *ItemService) Create(ctx context.Context, input models.NewItem) (*models.Item, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item := input.Item()
	slog.Debug("Creating item", "text", item.Text, "is_marked", item.Marked())

	if err := s.store.CreateItem(ctx, item); err != nil {
		return nil, storage.Wrap("create", err)
	}

	slog.Info("Item created", "item_id", item.ID)
	return item, nil
}

// DeleteMany removes the items whose IDs are in ids and returns the items
// that remain. Unknown IDs are not an error.
func (s *ItemService) DeleteMany(ctx context.Context, ids []string) ([]models.Item, error) {
	deleted, err := s.store.DeleteItems(ctx, ids)
	if err != nil {
		return nil, storage.Wrap("delete", err)
	}

	slog.Info("Items deleted", "requested", len(ids), "deleted", deleted)

	remaining, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, storage.Wrap("list", err)
	}
	return remaining, nil
}
