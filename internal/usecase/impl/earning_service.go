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

type earningService struct {
	txManager      repository.TransactionManager
	earningRepo    repository.EarningRepository
	agentRepo      repository.AgentRepository
	permissionRepo repository.PermissionRepository
	ledger         *ledger
	logger         *slog.Logger
}

// EarningServiceParams holds dependencies for EarningService, injected by Fx.
type EarningServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	EarningRepo    repository.EarningRepository
	AgentRepo      repository.AgentRepository
	PermissionRepo repository.PermissionRepository
	Commissions    service.CommissionProvider
	Config         *config.Config
	Logger         *slog.Logger
}

// NewEarningService creates a new earning service instance
func NewEarningService(params EarningServiceParams) usecase.EarningUsecase {
	return &earningService{
		txManager:      params.TxManager,
		earningRepo:    params.EarningRepo,
		agentRepo:      params.AgentRepo,
		permissionRepo: params.PermissionRepo,
		ledger:         newLedger(params.Commissions, params.Config.Rewards, params.Logger),
		logger:         params.Logger,
	}
}

func (s *earningService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// PostAgentEarning records a manual agent posting. An order's delivery fee belongs to its
// delivered transition and cannot be posted by hand.
func (s *earningService) PostAgentEarning(
	ctx context.Context,
	agentID uuid.UUID,
	orderID *uuid.UUID,
	amount float64,
	earningType entity.EarningType,
	remarks string,
) (*entity.AgentEarning, error) {
	if orderID != nil && earningType == entity.EarningTypeDeliveryFee {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order delivery fees are posted on delivery")
	}

	var earning *entity.AgentEarning
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.NewAgentRepository().FindAgentByID(ctx, agentID); err != nil {
			return mapRepositoryError(err, "failed to find agent")
		}
		if orderID != nil {
			if _, err := repos.NewOrderRepository().FindOrderByID(ctx, *orderID); err != nil {
				return mapRepositoryError(err, "failed to find order")
			}
		}

		var err error
		earning, err = s.ledger.postAgentEarning(ctx, repos, agentID, orderID, amount, earningType, remarks)

		return err
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Agent earning posted",
		slog.Any("agentID", agentID),
		slog.String("type", string(earningType)),
		slog.Float64("amount", earning.Amount))

	return earning, nil
}

// PostRestaurantEarning backfills the revenue row of a delivered or completed order.
func (s *earningService) PostRestaurantEarning(ctx context.Context, orderID uuid.UUID) (*entity.RestaurantEarning, error) {
	var earning *entity.RestaurantEarning
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		order, err := repos.NewOrderRepository().FindOrderByID(ctx, orderID)
		if err != nil {
			return mapRepositoryError(err, "failed to find order")
		}
		if order.Status != entity.OrderStatusDelivered && order.Status != entity.OrderStatusCompleted {
			return domainerrors.NewTransitionError(string(order.Status), string(entity.ActionPostRestaurantEarning))
		}

		earning, err = s.ledger.postRestaurantEarning(ctx, repos, order)

		return err
	})
	if err != nil {
		return nil, err
	}

	return earning, nil
}

func (s *earningService) GetAgentEarningsSummary(ctx context.Context, agentID uuid.UUID) (*entity.EarningsSummary, error) {
	if _, err := s.agentRepo.FindAgentByID(ctx, agentID); err != nil {
		return nil, mapRepositoryError(err, "failed to find agent")
	}

	sums, err := s.earningRepo.SumAgentEarningsByType(ctx, agentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum agent earnings")
	}

	summary := entity.NewEarningsSummary(agentID)
	for earningType, amount := range sums {
		if !earningType.IsValid() {
			continue
		}
		summary.ByType[earningType] = roundMoney(amount)
		summary.Total += amount
	}
	summary.Total = roundMoney(summary.Total)

	return summary, nil
}

func (s *earningService) ListRestaurantEarnings(ctx context.Context, actor entity.Actor, restaurantID uuid.UUID) ([]*entity.RestaurantEarning, error) {
	switch actor.Role {
	case entity.RoleAdmin:
	case entity.RoleMerchant:
		if !actor.OwnsRestaurant(restaurantID) {
			return nil, domainerrors.ErrForbidden.WithDetails("restaurant belongs to another merchant")
		}

		perm, err := findPermission(ctx, s.permissionRepo, restaurantID)
		if err != nil {
			return nil, err
		}
		if !perm.CanViewReports {
			return nil, domainerrors.ErrPermissionDenied.WithDetails("missing " + entity.PermissionCanViewReports)
		}
	default:
		return nil, domainerrors.ErrForbidden
	}

	earnings, err := s.earningRepo.FindRestaurantEarnings(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find restaurant earnings")
	}

	return earnings, nil
}
