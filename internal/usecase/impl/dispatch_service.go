package impl

import (
	"context"
	"log/slog"

	"dispatch/config"
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
	defaultMaxDistanceMeters = 5000
	defaultCandidateLimit    = 10
	defaultRetryBatchSize    = 50

	// maxCandidateWindow caps how far a dispatch search widens past busy agents.
	maxCandidateWindow = 640
)

type dispatchService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	agentRepo repository.AgentRepository
	locator   service.AgentLocator
	ledger    *ledger
	effects   *sideEffects
	cfg       config.DispatchConfig
	logger    *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In
	fx.Lifecycle

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	AgentRepo   repository.AgentRepository
	Locator     service.AgentLocator
	Commissions service.CommissionProvider
	Notifier    service.Notifier
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewDispatchService creates a new dispatch service instance
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	srv := &dispatchService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		agentRepo: params.AgentRepo,
		locator:   params.Locator,
		ledger:    newLedger(params.Commissions, params.Config.Rewards, params.Logger),
		effects:   newSideEffects(params.Lifecycle, params.Notifier, params.Publisher, params.Logger),
		logger:    params.Logger,
	}
	if params.Config.Dispatch != nil {
		srv.cfg = *params.Config.Dispatch
	}
	if srv.cfg.MaxDistanceMeters <= 0 {
		srv.cfg.MaxDistanceMeters = defaultMaxDistanceMeters
	}
	if srv.cfg.CandidateLimit <= 0 {
		srv.cfg.CandidateLimit = defaultCandidateLimit
	}
	if srv.cfg.RetryBatchSize <= 0 {
		srv.cfg.RetryBatchSize = defaultRetryBatchSize
	}

	return srv
}

func (srv *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AssignNearest walks the locator's candidates nearest first. Each candidate's distance is
// re-verified before its capacity is reserved with a conditional update; the order moves by
// compare-and-swap in the same transaction, so neither the agent nor the order can be
// double-booked by a concurrent assignment. Locators that cannot filter out busy agents may
// fill a window with unavailable candidates, so the window doubles until the locator runs dry.
func (srv *dispatchService) AssignNearest(ctx context.Context, orderID uuid.UUID, deliveryPoint entity.Point, maxDistanceMeters float64) (*entity.Agent, error) {
	if maxDistanceMeters <= 0 {
		maxDistanceMeters = srv.cfg.MaxDistanceMeters
	}
	if !deliveryPoint.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("delivery point is out of range")
	}

	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find order")
	}
	if _, err := entity.NextStatus(order.Status, entity.RoleSystem, entity.ActionDispatchAssign); err != nil {
		return nil, err
	}

	tried := make(map[uuid.UUID]struct{})
	for window := srv.cfg.CandidateLimit; ; window *= 2 {
		candidates, err := srv.locator.FindNearest(ctx, deliveryPoint, maxDistanceMeters, window)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find nearby agents")
		}

		for _, candidate := range candidates {
			if _, seen := tried[candidate.AgentID]; seen {
				continue
			}
			tried[candidate.AgentID] = struct{}{}

			distance := deliveryPoint.DistanceMeters(candidate.Location)
			if distance > maxDistanceMeters {
				continue
			}

			agent, err := srv.tryAssign(ctx, orderID, candidate.AgentID)
			if errors.IsAny(err, domainerrors.ErrAgentAtCapacity, domainerrors.ErrAgentNotFound) {
				srv.log(ctx).Debug("Dispatch candidate unavailable", slog.Any("agentID", candidate.AgentID))

				continue
			}
			if err != nil {
				return nil, err
			}

			srv.log(ctx).Info("Order dispatched",
				slog.Any("orderID", orderID),
				slog.Any("agentID", agent.ID),
				slog.Float64("distanceMeters", distance))

			return agent, nil
		}

		if len(candidates) < window || window >= maxCandidateWindow {
			break
		}
	}

	srv.log(ctx).Info("No agent available within range",
		slog.Any("orderID", orderID),
		slog.Float64("maxDistanceMeters", maxDistanceMeters),
		slog.Int("candidates", len(tried)))

	return nil, nil
}

func (srv *dispatchService) tryAssign(ctx context.Context, orderID, agentID uuid.UUID) (*entity.Agent, error) {
	var (
		outcome *orderTransition
		agent   *entity.Agent
	)

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		outcome, err = applyTransition(ctx, repos, srv.ledger, &transitionRequest{
			actor:       entity.SystemActor(),
			orderID:     orderID,
			action:      entity.ActionDispatchAssign,
			assignAgent: &agentID,
		})
		if err != nil {
			return err
		}

		agent, err = repos.NewAgentRepository().FindAgentByID(ctx, agentID)
		if err != nil {
			return mapRepositoryError(err, "failed to find assigned agent")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.effects.orderTransitioned(ctx, outcome)

	return agent, nil
}

// UpdateAgentLocation stores the agent's position on its row and in the locator index.
func (srv *dispatchService) UpdateAgentLocation(ctx context.Context, actor entity.Actor, point entity.Point) (*entity.Agent, error) {
	if actor.Role != entity.RoleAgent || actor.AgentID == nil {
		return nil, domainerrors.ErrForbidden.WithDetails("caller is not an agent")
	}
	if !point.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("location is out of range")
	}

	if err := srv.agentRepo.UpdateLocation(ctx, *actor.AgentID, point); err != nil {
		return nil, mapRepositoryError(err, "failed to update agent location")
	}

	if err := srv.locator.UpdatePosition(ctx, *actor.AgentID, point); err != nil {
		return nil, errors.Wrap(err, "failed to update agent position index")
	}

	agent, err := srv.agentRepo.FindAgentByID(ctx, *actor.AgentID)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find agent")
	}

	return agent, nil
}

// RetryUnassigned retries dispatch for orders left at accepted_by_restaurant without an agent.
// A failure on one order is logged and does not stop the batch.
func (srv *dispatchService) RetryUnassigned(ctx context.Context, limit int) (*usecase.RetryResult, error) {
	if limit <= 0 {
		limit = srv.cfg.RetryBatchSize
	}

	orders, err := srv.orderRepo.FindUnassignedAcceptedOrders(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find unassigned orders")
	}

	result := &usecase.RetryResult{}
	for _, order := range orders {
		if err := ctx.Err(); err != nil {
			return result, errors.Wrap(err, "dispatch retry interrupted")
		}

		result.Attempted++
		agent, err := srv.AssignNearest(ctx, order.ID, order.DeliveryPoint, 0)
		if err != nil {
			srv.log(ctx).Warn("Dispatch retry failed", slog.Any("orderID", order.ID), slog.Any("error", err))

			continue
		}
		if agent != nil {
			result.Assigned++
		}
	}

	return result, nil
}
