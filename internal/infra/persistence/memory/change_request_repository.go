package memory

import (
	"context"
	"sort"
	"time"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"

	"github.com/google/uuid"
)

type changeRequestRepository struct {
	db access
}

// copyChangeRequest shares the payload; payloads are never mutated after submission.
func copyChangeRequest(cr *entity.ChangeRequest) *entity.ChangeRequest {
	c := *cr
	c.ReviewedBy = copyUUID(cr.ReviewedBy)
	if cr.ReviewedAt != nil {
		at := *cr.ReviewedAt
		c.ReviewedAt = &at
	}

	return &c
}

func (r *changeRequestRepository) CreateChangeRequest(_ context.Context, request *entity.ChangeRequest) error {
	return r.db.write(func(s *state) error {
		s.changeRequests[request.ID] = copyChangeRequest(request)

		return nil
	})
}

func (r *changeRequestRepository) FindChangeRequestByID(_ context.Context, id uuid.UUID) (*entity.ChangeRequest, error) {
	var found *entity.ChangeRequest
	err := r.db.read(func(s *state) error {
		request, ok := s.changeRequests[id]
		if !ok {
			return repository.ErrChangeRequestNotFound
		}
		found = copyChangeRequest(request)

		return nil
	})

	return found, err
}

func (r *changeRequestRepository) FindChangeRequests(_ context.Context, filter entity.ChangeRequestFilter) ([]*entity.ChangeRequest, error) {
	var out []*entity.ChangeRequest
	err := r.db.read(func(s *state) error {
		for _, request := range s.changeRequests {
			if filter.RestaurantID != nil && request.RestaurantID != *filter.RestaurantID {
				continue
			}
			if filter.Status != "" && request.Status != filter.Status {
				continue
			}
			out = append(out, copyChangeRequest(request))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if filter.Offset >= len(out) {
		return []*entity.ChangeRequest{}, nil
	}
	out = out[filter.Offset:]
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}

	return out, nil
}

func (r *changeRequestRepository) MarkReviewed(
	_ context.Context,
	id uuid.UUID,
	status entity.ChangeRequestStatus,
	reviewerID uuid.UUID,
	reviewedAt time.Time,
) (*entity.ChangeRequest, error) {
	var updated *entity.ChangeRequest
	err := r.db.write(func(s *state) error {
		current, ok := s.changeRequests[id]
		if !ok {
			return repository.ErrChangeRequestNotFound
		}
		if current.Status != entity.ChangeRequestPending {
			return repository.ErrChangeRequestNotPending
		}

		next := copyChangeRequest(current)
		next.Status = status
		next.ReviewedBy = &reviewerID
		next.ReviewedAt = &reviewedAt
		next.UpdatedAt = reviewedAt
		s.changeRequests[id] = next
		updated = copyChangeRequest(next)

		return nil
	})

	return updated, err
}
