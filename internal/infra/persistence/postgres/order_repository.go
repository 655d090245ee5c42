package postgres

import (
	"context"
	"encoding/json"
	"time"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/errors"
	"dispatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order at version 1.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}
	if orderM.Version == 0 {
		orderM.Version = 1
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.Version = orderM.Version
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves an order by its unique ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM)
}

// TryTransition applies change only if the row still holds the expected status and version.
func (repo *orderRepository) TryTransition(
	ctx context.Context,
	id uuid.UUID,
	expected repository.OrderExpectation,
	change repository.OrderChange,
) (*entity.Order, error) {
	updates := map[string]any{
		"status":            string(change.Status),
		"assigned_agent_id": change.AssignedAgentID,
		"version":           gorm.Expr("version + 1"),
		"updated_at":        time.Now(),
	}
	if change.Reason != nil {
		updates["reason"] = *change.Reason
	}
	if change.AutoAccepted != nil {
		updates["auto_accepted"] = *change.AutoAccepted
	}
	if change.DebtCancellation != nil {
		updates["debt_cancellation"] = *change.DebtCancellation
	}

	var orderM model.OrderModel
	result := repo.db.WithContext(ctx).
		Model(&orderM).
		Clauses(clause.Returning{}).
		Where("id = ? AND status = ? AND version = ?", id, string(expected.Status), expected.Version).
		Updates(updates)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to transition order")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindOrderByID(ctx, id); err != nil {
			return nil, err
		}

		return nil, repository.ErrOrderStale
	}

	return toOrderDomain(&orderM)
}

// AppendStatusChange writes one history row.
func (repo *orderRepository) AppendStatusChange(ctx context.Context, change *entity.OrderStatusChange) error {
	changeM := &model.OrderStatusChangeModel{
		ID:         change.ID,
		OrderID:    change.OrderID,
		FromStatus: string(change.FromStatus),
		ToStatus:   string(change.ToStatus),
		ActorID:    change.ActorID,
		ActorRole:  string(change.ActorRole),
		Reason:     change.Reason,
		CreatedAt:  change.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(changeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append order status change")
	}

	return nil
}

// FindStatusHistory returns the order's history oldest first.
func (repo *orderRepository) FindStatusHistory(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderStatusChange, error) {
	var changeModels []*model.OrderStatusChangeModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&changeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find order status history")
	}

	changes := make([]*entity.OrderStatusChange, 0, len(changeModels))
	for _, changeM := range changeModels {
		changes = append(changes, &entity.OrderStatusChange{
			ID:         changeM.ID,
			OrderID:    changeM.OrderID,
			FromStatus: entity.OrderStatus(changeM.FromStatus),
			ToStatus:   entity.OrderStatus(changeM.ToStatus),
			ActorID:    changeM.ActorID,
			ActorRole:  entity.Role(changeM.ActorRole),
			Reason:     changeM.Reason,
			CreatedAt:  changeM.CreatedAt,
		})
	}

	return changes, nil
}

// SetAgentRating records the customer's rating once.
func (repo *orderRepository) SetAgentRating(ctx context.Context, id uuid.UUID, rating int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND agent_rating IS NULL", id).
		Updates(map[string]any{
			"agent_rating": rating,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set agent rating")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindOrderByID(ctx, id); err != nil {
			return err
		}

		return repository.ErrOrderAlreadyRated
	}

	return nil
}

// FindUnassignedAcceptedOrders returns the oldest accepted orders that have no agent yet.
func (repo *orderRepository) FindUnassignedAcceptedOrders(ctx context.Context, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	query := repo.db.WithContext(ctx).
		Where("status = ? AND assigned_agent_id IS NULL", string(entity.OrderStatusAcceptedByRestaurant)).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find unassigned orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	var items []entity.OrderItem
	if len(data.Items) > 0 {
		if err := json.Unmarshal(data.Items, &items); err != nil {
			return nil, errors.Wrapf(err, "failed to decode items of order %s", data.ID)
		}
	}

	return &entity.Order{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		RestaurantID:    data.RestaurantID,
		Items:           items,
		Status:          entity.OrderStatus(data.Status),
		AssignedAgentID: data.AssignedAgentID,
		Amounts: entity.OrderAmounts{
			Subtotal:       data.Subtotal,
			Tax:            data.Tax,
			Discount:       data.Discount,
			DeliveryCharge: data.DeliveryCharge,
			Surge:          data.Surge,
			Tip:            data.Tip,
			Total:          data.Total,
		},
		DeliveryPoint:    entity.Point{Longitude: data.DeliveryLon, Latitude: data.DeliveryLat},
		ScheduledAt:      data.ScheduledAt,
		Reason:           data.Reason,
		AutoAccepted:     data.AutoAccepted,
		DebtCancellation: data.DebtCancellation,
		AgentRating:      data.AgentRating,
		Version:          data.Version,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}, nil
}

func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	items, err := json.Marshal(data.Items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order items")
	}

	return &model.OrderModel{
		ID:               data.ID,
		CustomerID:       data.CustomerID,
		RestaurantID:     data.RestaurantID,
		Items:            items,
		Status:           string(data.Status),
		AssignedAgentID:  data.AssignedAgentID,
		Subtotal:         data.Amounts.Subtotal,
		Tax:              data.Amounts.Tax,
		Discount:         data.Amounts.Discount,
		DeliveryCharge:   data.Amounts.DeliveryCharge,
		Surge:            data.Amounts.Surge,
		Tip:              data.Amounts.Tip,
		Total:            data.Amounts.Total,
		DeliveryLon:      data.DeliveryPoint.Longitude,
		DeliveryLat:      data.DeliveryPoint.Latitude,
		ScheduledAt:      data.ScheduledAt,
		Reason:           data.Reason,
		AutoAccepted:     data.AutoAccepted,
		DebtCancellation: data.DebtCancellation,
		AgentRating:      data.AgentRating,
		Version:          data.Version,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}, nil
}
