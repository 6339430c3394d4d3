package item

import (
	"context"

	"github.com/google/uuid"

	commonErrors "github.com/prashobhdevopsarch/serverless-labs/internal/domain/errors"
)

// listLimit caps the number of items returned by a single list call.
// First page only; pagination tokens are not handled.
const listLimit = 50

// Service implements the item operations on top of a Repository
type Service struct {
	repo Repository
}

// NewService creates a new item service
func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// ListItems returns the first page of items, capped at listLimit
func (s *Service) ListItems(ctx context.Context) (*ListResult, error) {
	items, count, err := s.repo.List(ctx, listLimit)
	if err != nil {
		return nil, err
	}
	return &ListResult{
		Items: items,
		Count: count,
	}, nil
}

// CreateItem builds an item from the request body and writes it. The body's
// id is kept when present and non-empty, otherwise a random one is generated.
func (s *Service) CreateItem(ctx context.Context, body any) (Item, error) {
	data, ok := body.(map[string]any)
	if !ok {
		return nil, commonErrors.NewValidationError("Invalid JSON")
	}

	it := Item{IDField: uuid.New().String()}
	if id, ok := data[IDField].(string); ok && id != "" {
		it[IDField] = id
	}
	for k, v := range data {
		if k != IDField {
			it[k] = v
		}
	}

	if err := s.repo.Put(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// GetItem retrieves an item by id
func (s *Service) GetItem(ctx context.Context, id string) (Item, error) {
	if id == "" {
		return nil, commonErrors.NewValidationError("Missing id")
	}
	return s.repo.Get(ctx, id)
}

// UpdateItem replaces the item stored under id with the request body. The id
// from the path always wins; a conflicting id in the body is discarded.
// Updating a missing id silently creates it (upsert).
func (s *Service) UpdateItem(ctx context.Context, id string, body any) (Item, error) {
	if id == "" {
		return nil, commonErrors.NewValidationError("Missing id")
	}
	data, ok := body.(map[string]any)
	if !ok {
		return nil, commonErrors.NewValidationError("Invalid JSON")
	}

	it := Item{IDField: id}
	for k, v := range data {
		if k != IDField {
			it[k] = v
		}
	}

	if err := s.repo.Put(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// DeleteItem removes an item by id. Deleting a missing id succeeds.
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	if id == "" {
		return commonErrors.NewValidationError("Missing id")
	}
	return s.repo.Delete(ctx, id)
}
