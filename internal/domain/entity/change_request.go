package entity

import (
	"context"
	"encoding/json"
	"time"

	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/errors"

	"github.com/google/uuid"
)

// ChangeRequestType is the kind of change a merchant asked for.
type ChangeRequestType string

// ChangeRequestTypeMenuChange is the only change request type today.
const ChangeRequestTypeMenuChange ChangeRequestType = "MENU_CHANGE"

// ChangeAction discriminates the payload of a change request.
type ChangeAction string

const (
	ChangeActionCreateProduct       ChangeAction = "CREATE_PRODUCT"
	ChangeActionUpdateProduct       ChangeAction = "UPDATE_PRODUCT"
	ChangeActionDeleteProduct       ChangeAction = "DELETE_PRODUCT"
	ChangeActionToggleProductActive ChangeAction = "TOGGLE_PRODUCT_ACTIVE"
)

// ChangeRequestStatus is the review state of a change request.
type ChangeRequestStatus string

const (
	ChangeRequestPending  ChangeRequestStatus = "PENDING"
	ChangeRequestApproved ChangeRequestStatus = "APPROVED"
	ChangeRequestRejected ChangeRequestStatus = "REJECTED"
)

// ReviewDecision is an admin's verdict on a change request.
type ReviewDecision string

const (
	ReviewApprove ReviewDecision = "APPROVE"
	ReviewReject  ReviewDecision = "REJECT"
)

// IsValid checks if the decision is known.
func (d ReviewDecision) IsValid() bool {
	return d == ReviewApprove || d == ReviewReject
}

// ChangePayloadVisitor handles every payload variant. Adding a variant to ChangePayload
// requires a new method here, so every replayer stops compiling until it handles it.
type ChangePayloadVisitor interface {
	VisitCreateProduct(ctx context.Context, p *CreateProductPayload) error
	VisitUpdateProduct(ctx context.Context, p *UpdateProductPayload) error
	VisitDeleteProduct(ctx context.Context, p *DeleteProductPayload) error
	VisitToggleProductActive(ctx context.Context, p *ToggleProductActivePayload) error
}

// ChangePayload is the sealed sum type of change request payloads, keyed by ChangeAction.
type ChangePayload interface {
	Action() ChangeAction
	Accept(ctx context.Context, v ChangePayloadVisitor) error
	sealed()
}

// CreateProductPayload creates a product in a category of the restaurant.
type CreateProductPayload struct {
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Active      bool      `json:"active"`
}

func (*CreateProductPayload) Action() ChangeAction { return ChangeActionCreateProduct }
func (p *CreateProductPayload) Accept(ctx context.Context, v ChangePayloadVisitor) error {
	return v.VisitCreateProduct(ctx, p)
}
func (*CreateProductPayload) sealed() {}

// UpdateProductPayload applies a partial update to an existing product.
type UpdateProductPayload struct {
	ProductID uuid.UUID    `json:"product_id"`
	Patch     ProductPatch `json:"patch"`
}

func (*UpdateProductPayload) Action() ChangeAction { return ChangeActionUpdateProduct }
func (p *UpdateProductPayload) Accept(ctx context.Context, v ChangePayloadVisitor) error {
	return v.VisitUpdateProduct(ctx, p)
}
func (*UpdateProductPayload) sealed() {}

// DeleteProductPayload removes a product.
type DeleteProductPayload struct {
	ProductID uuid.UUID `json:"product_id"`
}

func (*DeleteProductPayload) Action() ChangeAction { return ChangeActionDeleteProduct }
func (p *DeleteProductPayload) Accept(ctx context.Context, v ChangePayloadVisitor) error {
	return v.VisitDeleteProduct(ctx, p)
}
func (*DeleteProductPayload) sealed() {}

// ToggleProductActivePayload flips a product's active flag.
type ToggleProductActivePayload struct {
	ProductID uuid.UUID `json:"product_id"`
}

func (*ToggleProductActivePayload) Action() ChangeAction { return ChangeActionToggleProductActive }
func (p *ToggleProductActivePayload) Accept(ctx context.Context, v ChangePayloadVisitor) error {
	return v.VisitToggleProductActive(ctx, p)
}
func (*ToggleProductActivePayload) sealed() {}

// DecodeChangePayload rebuilds a typed payload from its stored action and JSON body.
func DecodeChangePayload(action ChangeAction, raw []byte) (ChangePayload, error) {
	var payload ChangePayload
	switch action {
	case ChangeActionCreateProduct:
		payload = &CreateProductPayload{}
	case ChangeActionUpdateProduct:
		payload = &UpdateProductPayload{}
	case ChangeActionDeleteProduct:
		payload = &DeleteProductPayload{}
	case ChangeActionToggleProductActive:
		payload = &ToggleProductActivePayload{}
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown change action " + string(action))
	}

	if err := json.Unmarshal(raw, payload); err != nil {
		return nil, errors.Wrapf(err, "decode %s payload", action)
	}

	return payload, nil
}

// ChangeRequest is a deferred merchant mutation waiting for admin review.
// It is reviewed exactly once and never replayed again afterwards.
type ChangeRequest struct {
	ID           uuid.UUID           `json:"id"`
	RestaurantID uuid.UUID           `json:"restaurant_id"`
	RequesterID  uuid.UUID           `json:"requester_id"`
	Type         ChangeRequestType   `json:"type"`
	Payload      ChangePayload       `json:"payload"`
	Status       ChangeRequestStatus `json:"status"`
	ReviewedBy   *uuid.UUID          `json:"reviewed_by"`
	ReviewedAt   *time.Time          `json:"reviewed_at"`
	Note         string              `json:"note"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// Action returns the payload discriminator.
func (r *ChangeRequest) Action() ChangeAction {
	if r.Payload == nil {
		return ""
	}

	return r.Payload.Action()
}

// MarshalJSON renders the action next to the payload so clients can decode it.
func (r *ChangeRequest) MarshalJSON() ([]byte, error) {
	type alias ChangeRequest

	return json.Marshal(struct {
		*alias
		Action ChangeAction `json:"action"`
	}{
		alias:  (*alias)(r),
		Action: r.Action(),
	})
}

// ChangeRequestFilter narrows change request listings. Zero values mean "any".
type ChangeRequestFilter struct {
	RestaurantID *uuid.UUID
	Status       ChangeRequestStatus
	Limit        int
	Offset       int
}
