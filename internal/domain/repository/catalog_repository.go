package repository

import (
	"context"

	"dispatch/internal/domain/entity"
	"dispatch/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category does not exist for the restaurant.
	ErrCategoryNotFound = errors.New("category not found")
)

// CatalogRepository is the catalog the engine reads at order placement and writes when
// merchants with menu permission mutate it or approved change requests are replayed.
type CatalogRepository interface {
	// FindProduct retrieves a product by its unique ID.
	FindProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductsByIDs retrieves the products that exist among ids.
	FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// FindCategory retrieves a category only if it belongs to the restaurant.
	FindCategory(ctx context.Context, id, restaurantID uuid.UUID) (*entity.Category, error)

	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// UpdateProduct saves all fields of an existing product.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// SetProductActive sets the active flag of a product.
	SetProductActive(ctx context.Context, id uuid.UUID, active bool) error
}
