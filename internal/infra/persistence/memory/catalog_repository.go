package memory

import (
	"context"
	"time"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"

	"github.com/google/uuid"
)

type catalogRepository struct {
	db access
}

func copyProduct(p *entity.Product) *entity.Product {
	c := *p

	return &c
}

func (r *catalogRepository) FindProduct(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	var found *entity.Product
	err := r.db.read(func(s *state) error {
		product, ok := s.products[id]
		if !ok {
			return repository.ErrProductNotFound
		}
		found = copyProduct(product)

		return nil
	})

	return found, err
}

func (r *catalogRepository) FindProductsByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.db.read(func(s *state) error {
		seen := make(map[uuid.UUID]bool, len(ids))
		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true

			if product, ok := s.products[id]; ok {
				out = append(out, copyProduct(product))
			}
		}

		return nil
	})

	return out, err
}

func (r *catalogRepository) FindCategory(_ context.Context, id, restaurantID uuid.UUID) (*entity.Category, error) {
	var found *entity.Category
	err := r.db.read(func(s *state) error {
		category, ok := s.categories[id]
		if !ok || category.RestaurantID != restaurantID {
			return repository.ErrCategoryNotFound
		}
		c := *category
		found = &c

		return nil
	})

	return found, err
}

func (r *catalogRepository) CreateProduct(_ context.Context, product *entity.Product) error {
	return r.db.write(func(s *state) error {
		s.products[product.ID] = copyProduct(product)

		return nil
	})
}

func (r *catalogRepository) UpdateProduct(_ context.Context, product *entity.Product) error {
	return r.db.write(func(s *state) error {
		if _, ok := s.products[product.ID]; !ok {
			return repository.ErrProductNotFound
		}
		s.products[product.ID] = copyProduct(product)

		return nil
	})
}

func (r *catalogRepository) DeleteProduct(_ context.Context, id uuid.UUID) error {
	return r.db.write(func(s *state) error {
		if _, ok := s.products[id]; !ok {
			return repository.ErrProductNotFound
		}
		delete(s.products, id)

		return nil
	})
}

func (r *catalogRepository) SetProductActive(_ context.Context, id uuid.UUID, active bool) error {
	return r.db.write(func(s *state) error {
		current, ok := s.products[id]
		if !ok {
			return repository.ErrProductNotFound
		}

		next := copyProduct(current)
		next.Active = active
		next.UpdatedAt = time.Now()
		s.products[id] = next

		return nil
	})
}
