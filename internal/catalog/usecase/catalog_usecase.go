package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"handoff-backend/internal/catalog/domain"
	catalogdto "handoff-backend/internal/catalog/dto"
	"handoff-backend/internal/catalog/repository"
)

// catalogUsecase implements CatalogUsecase interface
type catalogUsecase struct {
	productRepo repository.ProductRepository
	uploader    ImageUploader
	now         func() time.Time
}

// NewCatalogUsecase creates a new instance of catalogUsecase
func NewCatalogUsecase(productRepo repository.ProductRepository, uploader ImageUploader) CatalogUsecase {
	return &catalogUsecase{
		productRepo: productRepo,
		uploader:    uploader,
		now:         time.Now,
	}
}

func (u *catalogUsecase) ListActive(ctx context.Context) []*domain.Product {
	products, err := u.productRepo.ListActive(ctx)
	if err != nil {
		log.Printf("[Catalog] Error getting products: %v", err)
		return []*domain.Product{}
	}
	return products
}

func (u *catalogUsecase) GetByID(ctx context.Context, id string) *domain.Product {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[Catalog] Error getting product by ID: %v", err)
		return nil
	}
	return product
}

func (u *catalogUsecase) ListByCategory(ctx context.Context, category string) []*domain.Product {
	products, err := u.productRepo.ListByCategory(ctx, strings.ToLower(category))
	if err != nil {
		log.Printf("[Catalog] Error getting products by category: %v", err)
		return []*domain.Product{}
	}
	return products
}

func (u *catalogUsecase) ListBySubcategory(ctx context.Context, subcategory string) []*domain.Product {
	products, err := u.productRepo.ListBySubcategory(ctx, subcategory)
	if err != nil {
		log.Printf("[Catalog] Error getting products by subcategory: %v", err)
		return []*domain.Product{}
	}
	return products
}

func (u *catalogUsecase) ListByOwner(ctx context.Context, userID string) []*domain.Product {
	products, err := u.productRepo.ListByOwner(ctx, userID)
	if err != nil {
		log.Printf("[Catalog] Error getting products by user ID: %v", err)
		return []*domain.Product{}
	}
	return products
}

// Search fetches the full active list and filters it in memory. The store
// has no text-search index and the catalog is single-campus sized.
func (u *catalogUsecase) Search(ctx context.Context, query string) []*domain.Product {
	products := u.ListActive(ctx)
	needle := strings.ToLower(query)

	matches := []*domain.Product{}
	for _, product := range products {
		if strings.Contains(strings.ToLower(product.Title), needle) ||
			strings.Contains(strings.ToLower(product.Description), needle) ||
			strings.Contains(strings.ToLower(product.Category), needle) ||
			strings.Contains(strings.ToLower(product.Subcategory), needle) {
			matches = append(matches, product)
		}
	}
	return matches
}

func (u *catalogUsecase) CreateListing(ctx context.Context, sellerID, sellerName string, req *catalogdto.CreateProductRequest) (*domain.Product, error) {
	if !domain.ValidCategory(req.Category) {
		return nil, domain.ErrInvalidCategory
	}
	if !domain.ValidSubcategory(req.Category, req.Subcategory) {
		return nil, domain.ErrInvalidSubcategory
	}

	// One request per image, awaited before the next starts. The first
	// failure aborts the remaining uploads and undoes the finished ones.
	urls := make([]string, 0, len(req.Images))
	for i, dataURI := range req.Images {
		url, err := u.uploader.Upload(ctx, dataURI)
		if err != nil {
			u.compensateUploads(ctx, urls)
			return nil, fmt.Errorf("image %d upload failed: %w", i+1, err)
		}
		urls = append(urls, url)
	}

	if sellerName == "" {
		sellerName = "Unknown User"
	}

	product := &domain.Product{
		Title:           req.Title,
		Description:     req.Description,
		Price:           req.Price,
		Category:        strings.ToLower(req.Category),
		Subcategory:     req.Subcategory,
		Images:          urls,
		UserID:          sellerID,
		UserDisplayName: sellerName,
		CreatedAt:       u.now().UTC().Format(time.RFC3339),
		Status:          domain.StatusActive,
		Phone:           req.Phone,
	}

	id, err := u.productRepo.Create(ctx, product)
	if err != nil {
		u.compensateUploads(ctx, urls)
		return nil, err
	}

	product.ID = id
	return product, nil
}

// compensateUploads deletes objects left behind by an aborted submission.
// Failures here only get logged, the submission error is already on its way
// to the caller.
func (u *catalogUsecase) compensateUploads(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := u.uploader.Remove(ctx, url); err != nil {
			log.Printf("[Catalog] Failed to delete orphaned upload %s: %v", url, err)
		}
	}
}

func (u *catalogUsecase) Update(ctx context.Context, userID, id string, req *catalogdto.UpdateProductRequest) (*domain.Product, error) {
	existing, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if !existing.Owner(userID) {
		return nil, domain.ErrNotOwner
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Status != nil {
		if *req.Status != domain.StatusActive && *req.Status != domain.StatusSold {
			return nil, domain.ErrInvalidStatus
		}
		fields["status"] = *req.Status
	}

	if len(fields) == 0 {
		return existing, nil
	}

	if err := u.productRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	updated, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (u *catalogUsecase) Remove(ctx context.Context, userID, id string) error {
	existing, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		// Already gone; repeated deletes are not an error for the caller
		return nil
	}
	if !existing.Owner(userID) {
		return domain.ErrNotOwner
	}

	return u.productRepo.Delete(ctx, id)
}
