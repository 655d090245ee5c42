package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups a restaurant's products.
type Category struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         string    `json:"name"`
}

// Product is a catalog item. Catalog CRUD is owned by the catalog; the engine reads
// products at order placement and writes them when replaying change requests.
type Product struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	CategoryID   uuid.UUID `json:"category_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductPatch is a partial product update; nil fields are left untouched.
type ProductPatch struct {
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Active      *bool      `json:"active,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p ProductPatch) IsEmpty() bool {
	return p.CategoryID == nil && p.Name == nil && p.Description == nil && p.Price == nil && p.Active == nil
}

// ApplyTo mutates the product with every non-nil patch field.
func (p ProductPatch) ApplyTo(product *Product) {
	if p.CategoryID != nil {
		product.CategoryID = *p.CategoryID
	}
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Active != nil {
		product.Active = *p.Active
	}
}
