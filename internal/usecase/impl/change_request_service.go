package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"
	"dispatch/internal/errors"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultChangeRequestPageSize = 50
	maxChangeRequestPageSize     = 200
)

type changeRequestService struct {
	txManager         repository.TransactionManager
	changeRequestRepo repository.ChangeRequestRepository
	effects           *sideEffects
	logger            *slog.Logger
}

// ChangeRequestServiceParams holds dependencies for ChangeRequestService, injected by Fx.
type ChangeRequestServiceParams struct {
	fx.In
	fx.Lifecycle

	TxManager         repository.TransactionManager
	ChangeRequestRepo repository.ChangeRequestRepository
	Notifier          service.Notifier
	Logger            *slog.Logger
}

// NewChangeRequestService creates a new change request service instance
func NewChangeRequestService(params ChangeRequestServiceParams) usecase.ChangeRequestUsecase {
	return &changeRequestService{
		txManager:         params.TxManager,
		changeRequestRepo: params.ChangeRequestRepo,
		effects:           newSideEffects(params.Lifecycle, params.Notifier, nil, params.Logger),
		logger:            params.Logger,
	}
}

func (s *changeRequestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *changeRequestService) Submit(ctx context.Context, restaurantID, requesterID uuid.UUID, payload entity.ChangePayload, note string) (*entity.ChangeRequest, error) {
	if err := validateChangePayload(payload); err != nil {
		return nil, err
	}

	now := time.Now()
	request := &entity.ChangeRequest{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		RequesterID:  requesterID,
		Type:         entity.ChangeRequestTypeMenuChange,
		Payload:      payload,
		Status:       entity.ChangeRequestPending,
		Note:         note,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.changeRequestRepo.CreateChangeRequest(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create change request")
	}

	s.log(ctx).Info("Change request submitted",
		slog.Any("changeRequestID", request.ID),
		slog.Any("restaurantID", restaurantID),
		slog.String("action", string(request.Action())))

	s.effects.changeRequestSubmitted(ctx, request)

	return request, nil
}

// Review stamps the decision with a compare-and-swap on PENDING. Approval replays the payload in
// the same transaction, so a failing replay rolls back and the request stays PENDING.
func (s *changeRequestService) Review(ctx context.Context, actor entity.Actor, requestID uuid.UUID, decision entity.ReviewDecision) (*entity.ChangeRequest, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden.WithDetails("only admins review change requests")
	}
	if !decision.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("decision must be APPROVE or REJECT")
	}

	status := entity.ChangeRequestRejected
	if decision == entity.ReviewApprove {
		status = entity.ChangeRequestApproved
	}

	var reviewed *entity.ChangeRequest
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		requests := repos.NewChangeRequestRepository()

		request, err := requests.FindChangeRequestByID(ctx, requestID)
		if err != nil {
			return mapRepositoryError(err, "failed to find change request")
		}
		if request.Status != entity.ChangeRequestPending {
			return domainerrors.ErrChangeRequestReviewed
		}

		if decision == entity.ReviewApprove {
			replayer := newCatalogReplayer(repos.NewCatalogRepository(), request.RestaurantID)
			if err := request.Payload.Accept(ctx, replayer); err != nil {
				return err
			}
		}

		reviewed, err = requests.MarkReviewed(ctx, request.ID, status, actor.UserID, time.Now())
		if err != nil {
			return mapRepositoryError(err, "failed to mark change request reviewed")
		}

		return nil
	})
	if err != nil {
		s.log(ctx).Warn("Change request review failed",
			slog.Any("changeRequestID", requestID),
			slog.String("decision", string(decision)),
			slog.Any("error", err))

		return nil, err
	}

	s.log(ctx).Info("Change request reviewed",
		slog.Any("changeRequestID", reviewed.ID),
		slog.String("status", string(reviewed.Status)))

	s.effects.changeRequestReviewed(ctx, reviewed)

	return reviewed, nil
}

func (s *changeRequestService) List(ctx context.Context, filter entity.ChangeRequestFilter) ([]*entity.ChangeRequest, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultChangeRequestPageSize
	}
	if filter.Limit > maxChangeRequestPageSize {
		filter.Limit = maxChangeRequestPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	requests, err := s.changeRequestRepo.FindChangeRequests(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list change requests")
	}

	return requests, nil
}
