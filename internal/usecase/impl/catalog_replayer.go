package impl

import (
	"context"
	"strings"
	"time"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"

	"github.com/google/uuid"
)

// catalogReplayer applies a change payload to one restaurant's catalog. It serves both the
// direct path of merchants with canManageMenu and the replay of approved change requests.
type catalogReplayer struct {
	catalog      repository.CatalogRepository
	restaurantID uuid.UUID

	// product is the created or updated product, nil after a deletion.
	product *entity.Product
}

var _ entity.ChangePayloadVisitor = (*catalogReplayer)(nil)

func newCatalogReplayer(catalog repository.CatalogRepository, restaurantID uuid.UUID) *catalogReplayer {
	return &catalogReplayer{catalog: catalog, restaurantID: restaurantID}
}

func (r *catalogReplayer) VisitCreateProduct(ctx context.Context, p *entity.CreateProductPayload) error {
	if err := r.requireCategory(ctx, p.CategoryID); err != nil {
		return err
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New(),
		RestaurantID: r.restaurantID,
		CategoryID:   p.CategoryID,
		Name:         strings.TrimSpace(p.Name),
		Description:  p.Description,
		Price:        p.Price,
		Active:       p.Active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if product.Name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("product name is required")
	}

	if err := r.catalog.CreateProduct(ctx, product); err != nil {
		return mapRepositoryError(err, "failed to create product")
	}
	r.product = product

	return nil
}

func (r *catalogReplayer) VisitUpdateProduct(ctx context.Context, p *entity.UpdateProductPayload) error {
	product, err := r.ownedProduct(ctx, p.ProductID)
	if err != nil {
		return err
	}

	if p.Patch.CategoryID != nil {
		if err := r.requireCategory(ctx, *p.Patch.CategoryID); err != nil {
			return err
		}
	}

	p.Patch.ApplyTo(product)
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("product name is required")
	}
	product.UpdatedAt = time.Now()

	if err := r.catalog.UpdateProduct(ctx, product); err != nil {
		return mapRepositoryError(err, "failed to update product")
	}
	r.product = product

	return nil
}

func (r *catalogReplayer) VisitDeleteProduct(ctx context.Context, p *entity.DeleteProductPayload) error {
	if _, err := r.ownedProduct(ctx, p.ProductID); err != nil {
		return err
	}

	if err := r.catalog.DeleteProduct(ctx, p.ProductID); err != nil {
		return mapRepositoryError(err, "failed to delete product")
	}
	r.product = nil

	return nil
}

func (r *catalogReplayer) VisitToggleProductActive(ctx context.Context, p *entity.ToggleProductActivePayload) error {
	product, err := r.ownedProduct(ctx, p.ProductID)
	if err != nil {
		return err
	}

	product.Active = !product.Active
	if err := r.catalog.SetProductActive(ctx, product.ID, product.Active); err != nil {
		return mapRepositoryError(err, "failed to toggle product")
	}
	product.UpdatedAt = time.Now()
	r.product = product

	return nil
}

func (r *catalogReplayer) requireCategory(ctx context.Context, categoryID uuid.UUID) error {
	if _, err := r.catalog.FindCategory(ctx, categoryID, r.restaurantID); err != nil {
		return mapRepositoryError(err, "failed to find category")
	}

	return nil
}

// ownedProduct finds a product of this restaurant; other restaurants' products do not exist here.
func (r *catalogReplayer) ownedProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := r.catalog.FindProduct(ctx, productID)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find product")
	}
	if product.RestaurantID != r.restaurantID {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}

// validateChangePayload rejects payloads that could never replay successfully.
func validateChangePayload(payload entity.ChangePayload) error {
	switch p := payload.(type) {
	case nil:
		return domainerrors.ErrValidationFailed.WithDetails("payload is required")
	case *entity.CreateProductPayload:
		if strings.TrimSpace(p.Name) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("product name is required")
		}
		if p.CategoryID == uuid.Nil {
			return domainerrors.ErrValidationFailed.WithDetails("category_id is required")
		}
		if p.Price < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
		}
	case *entity.UpdateProductPayload:
		if p.ProductID == uuid.Nil {
			return domainerrors.ErrValidationFailed.WithDetails("product_id is required")
		}
		if p.Patch.IsEmpty() {
			return domainerrors.ErrValidationFailed.WithDetails("patch changes nothing")
		}
		if p.Patch.Price != nil && *p.Patch.Price < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
		}
	case *entity.DeleteProductPayload:
		if p.ProductID == uuid.Nil {
			return domainerrors.ErrValidationFailed.WithDetails("product_id is required")
		}
	case *entity.ToggleProductActivePayload:
		if p.ProductID == uuid.Nil {
			return domainerrors.ErrValidationFailed.WithDetails("product_id is required")
		}
	}

	return nil
}
