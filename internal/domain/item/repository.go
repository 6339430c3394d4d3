package item

import (
	"context"
)

// Repository defines the interface for item data operations
type Repository interface {
	// List returns up to limit items and the count reported by the store
	List(ctx context.Context, limit int32) ([]Item, int, error)

	// Get retrieves an item by id
	Get(ctx context.Context, id string) (Item, error)

	// Put writes an item with upsert semantics (full overwrite)
	Put(ctx context.Context, it Item) error

	// Delete removes an item by id; deleting a missing id is not an error
	Delete(ctx context.Context, id string) error
}
