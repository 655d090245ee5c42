package repository

import (
	"context"
	"time"

	"dispatch/internal/domain/entity"
	"dispatch/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrChangeRequestNotFound is returned when a change request is not found.
	ErrChangeRequestNotFound = errors.New("change request not found")
	// ErrChangeRequestNotPending is returned when a review targets an already reviewed request.
	ErrChangeRequestNotPending = errors.New("change request is not pending")
)

// ChangeRequestRepository defines the persistence operations for change requests.
type ChangeRequestRepository interface {
	// CreateChangeRequest persists a new pending change request.
	CreateChangeRequest(ctx context.Context, request *entity.ChangeRequest) error

	// FindChangeRequestByID retrieves a change request by its unique ID.
	FindChangeRequestByID(ctx context.Context, id uuid.UUID) (*entity.ChangeRequest, error)

	// FindChangeRequests lists change requests matching the filter, newest first.
	FindChangeRequests(ctx context.Context, filter entity.ChangeRequestFilter) ([]*entity.ChangeRequest, error)

	// MarkReviewed moves a PENDING request to status, stamping reviewer and time.
	// Returns ErrChangeRequestNotPending if the request was reviewed concurrently.
	MarkReviewed(ctx context.Context, id uuid.UUID, status entity.ChangeRequestStatus, reviewerID uuid.UUID, reviewedAt time.Time) (*entity.ChangeRequest, error)
}
