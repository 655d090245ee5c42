package usecase

import (
	"context"

	"dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

// MenuResult is the outcome of a merchant menu mutation. Exactly one of Product (applied
// directly, nil for deletions) or ChangeRequest (forwarded to admin review) is meaningful.
type MenuResult struct {
	Forwarded     bool                  `json:"forwarded"`
	Product       *entity.Product       `json:"product,omitempty"`
	ChangeRequest *entity.ChangeRequest `json:"change_request,omitempty"`
}

// MenuUsecase is the merchant's catalog mutation gateway. Merchants with canManageMenu
// mutate directly; everyone else is forwarded to the change request queue.
type MenuUsecase interface {
	CreateProduct(ctx context.Context, actor entity.Actor, payload *entity.CreateProductPayload, note string) (*MenuResult, error)
	UpdateProduct(ctx context.Context, actor entity.Actor, productID uuid.UUID, patch entity.ProductPatch, note string) (*MenuResult, error)
	DeleteProduct(ctx context.Context, actor entity.Actor, productID uuid.UUID, note string) (*MenuResult, error)
	ToggleProductActive(ctx context.Context, actor entity.Actor, productID uuid.UUID, note string) (*MenuResult, error)
}
