package usecase

import (
	"context"

	"dispatch/internal/domain/entity"

	"github.com/google/uuid"
)

// ChangeRequestUsecase defines the deferred merchant mutation queue
type ChangeRequestUsecase interface {
	// Submit records a mutation for admin review. It always persists at PENDING; deciding
	// whether submission is needed is the caller's job.
	Submit(ctx context.Context, restaurantID, requesterID uuid.UUID, payload entity.ChangePayload, note string) (*entity.ChangeRequest, error)

	// Review approves or rejects a pending request. Approval replays the payload against the
	// catalog; a failing replay surfaces here and leaves the request PENDING.
	Review(ctx context.Context, actor entity.Actor, requestID uuid.UUID, decision entity.ReviewDecision) (*entity.ChangeRequest, error)

	// List returns change requests for the admin queue
	List(ctx context.Context, filter entity.ChangeRequestFilter) ([]*entity.ChangeRequest, error)
}
