package repository

import (
	"context"

	"handoff-backend/internal/catalog/domain"
)

// ProductRepository defines the interface for product document access.
// All list operations return products ordered by createdAt descending.
type ProductRepository interface {
	// ListActive returns all products with status "active"
	ListActive(ctx context.Context) ([]*domain.Product, error)

	// GetByID returns a product by document ID, nil if absent
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// ListByCategory returns active products with an exact category match
	ListByCategory(ctx context.Context, category string) ([]*domain.Product, error)

	// ListBySubcategory returns active products with an exact subcategory match
	ListBySubcategory(ctx context.Context, subcategory string) ([]*domain.Product, error)

	// ListByOwner returns all products owned by userID, regardless of status
	ListByOwner(ctx context.Context, userID string) ([]*domain.Product, error)

	// Create inserts a new document; the store-assigned ID is returned
	Create(ctx context.Context, product *domain.Product) (string, error)

	// Update merges the given fields into the document. No concurrency
	// check, last writer wins.
	Update(ctx context.Context, id string, fields map[string]interface{}) error

	// Delete removes the document; deleting an absent document is not an error
	Delete(ctx context.Context, id string) error
}
