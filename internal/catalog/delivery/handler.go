package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "handoff-backend/internal/auth/delivery"
	"handoff-backend/internal/catalog/domain"
	catalogdto "handoff-backend/internal/catalog/dto"
	"handoff-backend/internal/catalog/usecase"
	uploadusecase "handoff-backend/internal/upload/usecase"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

func NewProductHandler(catalogUsecase usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{
		catalogUsecase: catalogUsecase,
	}
}

// ListProducts serves the browse grid: the full active catalog, optionally
// narrowed by category, subcategory or a free-text query.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	var products []*domain.Product
	switch {
	case c.Query("q") != "":
		products = h.catalogUsecase.Search(ctx, c.Query("q"))
	case c.Query("subcategory") != "":
		products = h.catalogUsecase.ListBySubcategory(ctx, c.Query("subcategory"))
	case c.Query("category") != "":
		products = h.catalogUsecase.ListByCategory(ctx, c.Query("category"))
	default:
		products = h.catalogUsecase.ListActive(ctx)
	}

	c.JSON(http.StatusOK, catalogdto.ProductsResponse{
		Products: products,
		Total:    len(products),
	})
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product := h.catalogUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// MyProducts returns all of the caller's listings, sold ones included.
func (h *ProductHandler) MyProducts(c *gin.Context) {
	session, ok := authdelivery.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	products := h.catalogUsecase.ListByOwner(c.Request.Context(), session.UID)
	c.JSON(http.StatusOK, catalogdto.ProductsResponse{
		Products: products,
		Total:    len(products),
	})
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	session, ok := authdelivery.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req catalogdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.catalogUsecase.CreateListing(c.Request.Context(), session.UID, session.DisplayName, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCategory), errors.Is(err, domain.ErrInvalidSubcategory),
			errors.Is(err, uploadusecase.ErrBadDataURI):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, uploadusecase.ErrTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	session, ok := authdelivery.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req catalogdto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.catalogUsecase.Update(c.Request.Context(), session.UID, c.Param("id"), &req)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	session, ok := authdelivery.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	if err := h.catalogUsecase.Remove(c.Request.Context(), session.UID, c.Param("id")); err != nil {
		h.writeMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

func (h *ProductHandler) writeMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
