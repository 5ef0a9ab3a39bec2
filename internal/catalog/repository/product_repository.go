package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"handoff-backend/internal/catalog/domain"
)

const productsCollection = "products"

// productRepository implements ProductRepository on Firestore
type productRepository struct {
	client *firestore.Client
}

// NewProductRepository creates a new instance of productRepository
func NewProductRepository(client *firestore.Client) ProductRepository {
	return &productRepository{
		client: client,
	}
}

func (r *productRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(productsCollection)
}

func (r *productRepository) ListActive(ctx context.Context) ([]*domain.Product, error) {
	query := r.collection().
		Where("status", "==", domain.StatusActive).
		OrderBy("createdAt", firestore.Desc)
	return r.runQuery(ctx, query)
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	snapshot, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}

	var product domain.Product
	if err := snapshot.DataTo(&product); err != nil {
		return nil, fmt.Errorf("failed to decode product %s: %w", id, err)
	}
	product.ID = snapshot.Ref.ID
	return &product, nil
}

func (r *productRepository) ListByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	query := r.collection().
		Where("category", "==", category).
		Where("status", "==", domain.StatusActive).
		OrderBy("createdAt", firestore.Desc)
	return r.runQuery(ctx, query)
}

func (r *productRepository) ListBySubcategory(ctx context.Context, subcategory string) ([]*domain.Product, error) {
	query := r.collection().
		Where("subcategory", "==", subcategory).
		Where("status", "==", domain.StatusActive).
		OrderBy("createdAt", firestore.Desc)
	return r.runQuery(ctx, query)
}

func (r *productRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Product, error) {
	query := r.collection().
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)
	return r.runQuery(ctx, query)
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) (string, error) {
	docRef, _, err := r.collection().Add(ctx, product)
	if err != nil {
		return "", fmt.Errorf("failed to create product: %w", err)
	}
	return docRef.ID, nil
}

func (r *productRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if _, err := r.collection().Doc(id).Set(ctx, fields, firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to update product %s: %w", id, err)
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.collection().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

func (r *productRepository) runQuery(ctx context.Context, query firestore.Query) ([]*domain.Product, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	products := []*domain.Product{}
	for {
		snapshot, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var product domain.Product
		if err := snapshot.DataTo(&product); err != nil {
			return nil, fmt.Errorf("failed to decode product %s: %w", snapshot.Ref.ID, err)
		}
		product.ID = snapshot.Ref.ID
		products = append(products, &product)
	}

	return products, nil
}
