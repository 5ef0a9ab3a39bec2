package usecase

import (
	"context"

	"handoff-backend/internal/catalog/domain"
	catalogdto "handoff-backend/internal/catalog/dto"
)

// CatalogUsecase defines the interface for product catalog business logic.
// Read operations never fail: store errors are logged and degrade to an
// empty list (or nil for single lookups). Mutations propagate their errors.
type CatalogUsecase interface {
	// ListActive returns all active products, newest first
	ListActive(ctx context.Context) []*domain.Product

	// GetByID returns a single product, nil when absent or on store failure
	GetByID(ctx context.Context, id string) *domain.Product

	// ListByCategory returns active products with an exact category match
	ListByCategory(ctx context.Context, category string) []*domain.Product

	// ListBySubcategory returns active products with an exact subcategory match
	ListBySubcategory(ctx context.Context, subcategory string) []*domain.Product

	// ListByOwner returns all of a user's products, any status
	ListByOwner(ctx context.Context, userID string) []*domain.Product

	// Search retains active products containing the query as a
	// case-insensitive substring of title, description, category or
	// subcategory. Source order is preserved, there is no ranking.
	Search(ctx context.Context, query string) []*domain.Product

	// CreateListing runs the full submission: images are uploaded strictly
	// one at a time, then the document is created. Any failure aborts the
	// submission and deletes the objects uploaded so far.
	CreateListing(ctx context.Context, sellerID, sellerName string, req *catalogdto.CreateProductRequest) (*domain.Product, error)

	// Update merges the given fields into an owned listing
	Update(ctx context.Context, userID, id string, req *catalogdto.UpdateProductRequest) (*domain.Product, error)

	// Remove deletes an owned listing; removing an absent one is not an error
	Remove(ctx context.Context, userID, id string) error
}

// ImageUploader is the slice of the upload pipeline the submission flow
// needs.
type ImageUploader interface {
	Upload(ctx context.Context, dataURI string) (string, error)
	Remove(ctx context.Context, url string) error
}
