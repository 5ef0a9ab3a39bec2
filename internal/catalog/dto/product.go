package dto

import "handoff-backend/internal/catalog/domain"

type CreateProductRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       float64  `json:"price" binding:"min=0"`
	Category    string   `json:"category" binding:"required"`
	Subcategory string   `json:"subcategory" binding:"required"`
	Images      []string `json:"images" binding:"required,min=1,max=5"` // base64 data URIs
	Phone       string   `json:"phone" binding:"required"`
}

// UpdateProductRequest carries the fields a merge update may touch. Absent
// fields are left untouched in the document.
type UpdateProductRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

type ProductsResponse struct {
	Products []*domain.Product `json:"products"`
	Total    int               `json:"total"`
}
