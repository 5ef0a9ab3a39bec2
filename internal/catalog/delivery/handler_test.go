package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	authdelivery "handoff-backend/internal/auth/delivery"
	authdomain "handoff-backend/internal/auth/domain"
	"handoff-backend/internal/catalog/domain"
	catalogdto "handoff-backend/internal/catalog/dto"
)

type stubCatalogUsecase struct {
	products    []*domain.Product
	single      *domain.Product
	lastQuery   string
	lastMethod  string
	mutationErr error
}

func (s *stubCatalogUsecase) ListActive(ctx context.Context) []*domain.Product {
	s.lastMethod = "ListActive"
	return s.products
}

func (s *stubCatalogUsecase) GetByID(ctx context.Context, id string) *domain.Product {
	s.lastMethod = "GetByID"
	return s.single
}

func (s *stubCatalogUsecase) ListByCategory(ctx context.Context, category string) []*domain.Product {
	s.lastMethod = "ListByCategory"
	s.lastQuery = category
	return s.products
}

func (s *stubCatalogUsecase) ListBySubcategory(ctx context.Context, subcategory string) []*domain.Product {
	s.lastMethod = "ListBySubcategory"
	s.lastQuery = subcategory
	return s.products
}

func (s *stubCatalogUsecase) ListByOwner(ctx context.Context, userID string) []*domain.Product {
	s.lastMethod = "ListByOwner"
	s.lastQuery = userID
	return s.products
}

func (s *stubCatalogUsecase) Search(ctx context.Context, query string) []*domain.Product {
	s.lastMethod = "Search"
	s.lastQuery = query
	return s.products
}

func (s *stubCatalogUsecase) CreateListing(ctx context.Context, sellerID, sellerName string, req *catalogdto.CreateProductRequest) (*domain.Product, error) {
	if s.mutationErr != nil {
		return nil, s.mutationErr
	}
	return s.single, nil
}

func (s *stubCatalogUsecase) Update(ctx context.Context, userID, id string, req *catalogdto.UpdateProductRequest) (*domain.Product, error) {
	if s.mutationErr != nil {
		return nil, s.mutationErr
	}
	return s.single, nil
}

func (s *stubCatalogUsecase) Remove(ctx context.Context, userID, id string) error {
	return s.mutationErr
}

// fakeSession injects a confirmed session the way AuthMiddleware would.
func fakeSession(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(authdelivery.SessionKey, &authdomain.ResolvedSession{
			Session: authdomain.Session{UID: uid, DisplayName: "Rahim"},
			State:   authdomain.StateConfirmed,
		})
		c.Next()
	}
}

func catalogRouter(uc *stubCatalogUsecase, uid string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProductHandler(uc)

	r := gin.New()
	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)
	if uid != "" {
		r.DELETE("/products/:id", fakeSession(uid), h.DeleteProduct)
		r.PATCH("/products/:id", fakeSession(uid), h.UpdateProduct)
	} else {
		r.DELETE("/products/:id", h.DeleteProduct)
	}
	return r
}

func TestListProducts_QueryParamRouting(t *testing.T) {
	uc := &stubCatalogUsecase{products: []*domain.Product{{ID: "p1", Title: "iPhone"}}}
	r := catalogRouter(uc, "")

	cases := []struct {
		url        string
		wantMethod string
		wantQuery  string
	}{
		{"/products", "ListActive", ""},
		{"/products?category=phone", "ListByCategory", "phone"},
		{"/products?subcategory=Laptop", "ListBySubcategory", "Laptop"},
		{"/products?q=casio", "Search", "casio"},
		// free-text search wins over narrowing params
		{"/products?q=casio&category=phone", "Search", "casio"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.url, nil))

		assert.Equal(t, http.StatusOK, w.Code, tc.url)
		assert.Equal(t, tc.wantMethod, uc.lastMethod, tc.url)
		assert.Equal(t, tc.wantQuery, uc.lastQuery, tc.url)
		assert.Contains(t, w.Body.String(), `"total":1`, tc.url)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	r := catalogRouter(&stubCatalogUsecase{}, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProduct_RequiresSession(t *testing.T) {
	r := catalogRouter(&stubCatalogUsecase{}, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/products/p1", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteProduct_MapsOwnershipError(t *testing.T) {
	uc := &stubCatalogUsecase{mutationErr: domain.ErrNotOwner}
	r := catalogRouter(uc, "u2")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/products/p1", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateProduct_MapsNotFound(t *testing.T) {
	uc := &stubCatalogUsecase{mutationErr: domain.ErrNotFound}
	r := catalogRouter(uc, "u1")

	body := strings.NewReader(`{"title":"new"}`)
	req := httptest.NewRequest(http.MethodPatch, "/products/missing", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
