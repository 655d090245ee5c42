package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"dispatch/config"
	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"
	"dispatch/internal/errors"

	"github.com/google/uuid"
)

// ledger posts earnings and reward points through a transaction-bound repository factory,
// so postings commit or roll back together with the transition that caused them.
type ledger struct {
	commissions service.CommissionProvider
	rewards     config.RewardsConfig
	logger      *slog.Logger
}

func newLedger(commissions service.CommissionProvider, rewards *config.RewardsConfig, logger *slog.Logger) *ledger {
	l := &ledger{commissions: commissions, logger: logger}
	if rewards != nil {
		l.rewards = *rewards
	}

	return l
}

func (l *ledger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

func roundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

func (l *ledger) postAgentEarning(
	ctx context.Context,
	repos repository.RepositoryFactory,
	agentID uuid.UUID,
	orderID *uuid.UUID,
	amount float64,
	earningType entity.EarningType,
	remarks string,
) (*entity.AgentEarning, error) {
	if !earningType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown earning type " + string(earningType))
	}

	earning := &entity.AgentEarning{
		ID:        uuid.New(),
		AgentID:   agentID,
		OrderID:   orderID,
		Amount:    roundMoney(amount),
		Type:      earningType,
		Remarks:   remarks,
		CreatedAt: time.Now(),
	}

	if err := repos.NewEarningRepository().CreateAgentEarning(ctx, earning); err != nil {
		return nil, mapRepositoryError(err, "failed to create agent earning")
	}

	l.log(ctx).Debug("Posted agent earning",
		slog.Any("agentID", agentID),
		slog.String("type", string(earningType)),
		slog.Float64("amount", earning.Amount))

	return earning, nil
}

func (l *ledger) postRestaurantEarning(ctx context.Context, repos repository.RepositoryFactory, order *entity.Order) (*entity.RestaurantEarning, error) {
	terms, err := l.commissions.CommissionFor(ctx, order.RestaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve commission terms")
	}

	gross := roundMoney(order.Amounts.FoodRevenue())
	commission, net := terms.Split(gross)

	earning := &entity.RestaurantEarning{
		ID:           uuid.New(),
		RestaurantID: order.RestaurantID,
		OrderID:      order.ID,
		GrossAmount:  gross,
		Commission:   roundMoney(commission),
		Amount:       roundMoney(net),
		Category:     entity.RestaurantEarningCategoryOrderRevenue,
		PayoutStatus: entity.PayoutStatusPending,
		CreatedAt:    time.Now(),
	}

	if err := repos.NewEarningRepository().CreateRestaurantEarning(ctx, earning); err != nil {
		return nil, mapRepositoryError(err, "failed to create restaurant earning")
	}

	return earning, nil
}

// onDelivered credits the agent's delivery fee and the restaurant's net revenue.
func (l *ledger) onDelivered(ctx context.Context, repos repository.RepositoryFactory, order *entity.Order) error {
	if order.AssignedAgentID == nil {
		return errors.New("delivered order has no agent")
	}

	orderID := order.ID
	remarks := fmt.Sprintf("delivery fee for order %s", order.ID)
	if _, err := l.postAgentEarning(ctx, repos, *order.AssignedAgentID, &orderID, order.Amounts.DeliveryCharge, entity.EarningTypeDeliveryFee, remarks); err != nil {
		return err
	}

	if _, err := l.postRestaurantEarning(ctx, repos, order); err != nil {
		return err
	}

	return nil
}

// onCompleted awards the delivering agent's points and the restaurant's milestone points.
func (l *ledger) onCompleted(ctx context.Context, repos repository.RepositoryFactory, order *entity.Order, agentID *uuid.UUID) error {
	orderID := order.ID

	if agentID != nil && l.rewards.AgentDeliveryPoints > 0 {
		if err := repos.NewAgentRepository().AddRewardPoints(ctx, *agentID, l.rewards.AgentDeliveryPoints); err != nil {
			return mapRepositoryError(err, "failed to add agent reward points")
		}
		if err := l.appendPoints(ctx, repos, entity.RewardOwnerAgent, *agentID, &orderID, l.rewards.AgentDeliveryPoints, "order delivered"); err != nil {
			return err
		}
	}

	completed, err := repos.NewRestaurantRepository().IncrementCompletedOrders(ctx, order.RestaurantID)
	if err != nil {
		return mapRepositoryError(err, "failed to increment completed orders")
	}

	if l.rewards.MilestoneEvery <= 0 || l.rewards.MilestonePoints <= 0 || completed%l.rewards.MilestoneEvery != 0 {
		return nil
	}

	if err := repos.NewRestaurantRepository().AddRewardPoints(ctx, order.RestaurantID, l.rewards.MilestonePoints); err != nil {
		return mapRepositoryError(err, "failed to add restaurant reward points")
	}

	reason := fmt.Sprintf("milestone: %d completed orders", completed)

	return l.appendPoints(ctx, repos, entity.RewardOwnerRestaurant, order.RestaurantID, &orderID, l.rewards.MilestonePoints, reason)
}

func (l *ledger) appendPoints(
	ctx context.Context,
	repos repository.RepositoryFactory,
	ownerType entity.RewardOwnerType,
	ownerID uuid.UUID,
	orderID *uuid.UUID,
	points int64,
	reason string,
) error {
	entry := &entity.RewardPointEntry{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		OwnerType: ownerType,
		OrderID:   orderID,
		Points:    points,
		Reason:    reason,
		CreatedAt: time.Now(),
	}

	if err := repos.NewEarningRepository().CreateRewardPointEntry(ctx, entry); err != nil {
		return mapRepositoryError(err, "failed to create reward point entry")
	}

	return nil
}
