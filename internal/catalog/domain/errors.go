package domain

import "errors"

var (
	ErrNotFound           = errors.New("product not found")
	ErrNotOwner           = errors.New("product belongs to another user")
	ErrInvalidCategory    = errors.New("unknown category")
	ErrInvalidSubcategory = errors.New("subcategory does not belong to category")
	ErrInvalidStatus      = errors.New("status must be active or sold")
)
