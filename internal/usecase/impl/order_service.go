// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	dispatcher usecase.DispatchUsecase
	ledger     *ledger
	effects    *sideEffects
	pricing    config.PricingConfig
	logger     *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In
	fx.Lifecycle

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	Dispatcher  usecase.DispatchUsecase
	Commissions service.CommissionProvider
	Notifier    service.Notifier
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	srv := &orderService{
		txManager:  params.TxManager,
		orderRepo:  params.OrderRepo,
		dispatcher: params.Dispatcher,
		ledger:     newLedger(params.Commissions, params.Config.Rewards, params.Logger),
		effects:    newSideEffects(params.Lifecycle, params.Notifier, params.Publisher, params.Logger),
		logger:     params.Logger,
	}
	if params.Config.Pricing != nil {
		srv.pricing = *params.Config.Pricing
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder prices the items from the catalog and persists the order at pending. Restaurants
// without canAcceptOrder, or configured for automatic dispatch, skip the manual accept step.
func (srv *orderService) PlaceOrder(ctx context.Context, actor entity.Actor, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if actor.Role != entity.RoleCustomer && actor.Role != entity.RoleGuest {
		return nil, domainerrors.ErrForbidden.WithDetails("only customers and guests place orders")
	}
	if err := validatePlaceOrderInput(input); err != nil {
		return nil, err
	}

	var (
		order      *entity.Order
		restaurant *entity.Restaurant
	)
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		restaurant, err = repos.NewRestaurantRepository().FindRestaurantByID(ctx, input.RestaurantID)
		if err != nil {
			return mapRepositoryError(err, "failed to find restaurant")
		}

		items, err := srv.priceItems(ctx, repos.NewCatalogRepository(), restaurant.ID, input.Items)
		if err != nil {
			return err
		}

		now := time.Now()
		order = &entity.Order{
			ID:            uuid.New(),
			RestaurantID:  restaurant.ID,
			Items:         items,
			Status:        entity.OrderStatusPending,
			Amounts:       srv.computeAmounts(items, input.Discount, input.Tip),
			DeliveryPoint: input.DeliveryPoint,
			ScheduledAt:   input.ScheduledAt,
			Version:       1,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if actor.Role == entity.RoleCustomer {
			customerID := actor.UserID
			order.CustomerID = &customerID
		}

		orders := repos.NewOrderRepository()
		if err := orders.CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}
		if err := appendHistory(ctx, orders, order.ID, "", entity.OrderStatusPending, actor, ""); err != nil {
			return err
		}

		perm, err := findPermission(ctx, repos.NewPermissionRepository(), restaurant.ID)
		if err != nil {
			return err
		}
		if perm.CanAcceptOrder && !restaurant.AutoDispatch {
			return nil
		}

		autoAccepted := true
		accepted, err := orders.TryTransition(ctx, order.ID, repository.ExpectOrder(order), repository.OrderChange{
			Status:       entity.OrderStatusAcceptedByRestaurant,
			AutoAccepted: &autoAccepted,
		})
		if err != nil {
			return mapRepositoryError(err, "failed to auto-accept order")
		}
		if err := appendHistory(ctx, orders, order.ID, entity.OrderStatusPending, accepted.Status, entity.SystemActor(), "auto-accepted"); err != nil {
			return err
		}
		order = accepted

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to place order", slog.Any("restaurantID", input.RestaurantID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.String("status", string(order.Status)),
		slog.Bool("autoAccepted", order.AutoAccepted))

	srv.effects.orderTransitioned(ctx, &orderTransition{
		action:         entity.ActionPlaceOrder,
		order:          order,
		telegramChatID: restaurant.TelegramChatID,
	})

	if restaurant.AutoDispatch {
		return srv.autoDispatch(ctx, order), nil
	}

	return order, nil
}

// autoDispatch pre-assigns an agent after placement. The placement already committed, so
// dispatch failures only leave the order waiting for the retry worker.
func (srv *orderService) autoDispatch(ctx context.Context, order *entity.Order) *entity.Order {
	agent, err := srv.dispatcher.AssignNearest(ctx, order.ID, order.DeliveryPoint, 0)
	if err != nil {
		srv.log(ctx).Warn("Automatic dispatch failed", slog.Any("orderID", order.ID), slog.Any("error", err))

		return order
	}
	if agent == nil {
		srv.log(ctx).Info("No agent available for automatic dispatch", slog.Any("orderID", order.ID))

		return order
	}

	updated, err := srv.orderRepo.FindOrderByID(ctx, order.ID)
	if err != nil {
		srv.log(ctx).Warn("Failed to reload dispatched order", slog.Any("orderID", order.ID), slog.Any("error", err))

		return order
	}

	return updated
}

func validatePlaceOrderInput(input *usecase.PlaceOrderInput) error {
	if input == nil || len(input.Items) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return domainerrors.ErrValidationFailed.WithDetails("item quantity must be positive: " + item.ProductID.String())
		}
	}
	if !input.DeliveryPoint.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("delivery point is out of range")
	}
	if input.Discount < 0 || input.Tip < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("discount and tip must not be negative")
	}

	return nil
}

// priceItems snapshots name and price of every line; unknown, inactive or foreign products
// fail with the offending ids.
func (srv *orderService) priceItems(
	ctx context.Context,
	catalog repository.CatalogRepository,
	restaurantID uuid.UUID,
	requested []usecase.PlaceOrderItem,
) ([]entity.OrderItem, error) {
	ids := make([]uuid.UUID, 0, len(requested))
	for _, item := range requested {
		ids = append(ids, item.ProductID)
	}

	products, err := catalog.FindProductsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]entity.OrderItem, 0, len(requested))
	missing := make(map[string]struct{})
	for _, req := range requested {
		product, ok := byID[req.ProductID]
		if !ok || !product.Active || product.RestaurantID != restaurantID {
			missing[req.ProductID.String()] = struct{}{}

			continue
		}

		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  req.Quantity,
			UnitPrice: product.Price,
			LineTotal: roundMoney(product.Price * float64(req.Quantity)),
		})
	}

	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for id := range missing {
			names = append(names, id)
		}
		sort.Strings(names)

		return nil, domainerrors.ErrUnknownProducts.WithDetails(strings.Join(names, ", "))
	}

	return items, nil
}

func (srv *orderService) computeAmounts(items []entity.OrderItem, discount, tip float64) entity.OrderAmounts {
	var subtotal float64
	for _, item := range items {
		subtotal += item.LineTotal
	}

	amounts := entity.OrderAmounts{
		Subtotal:       roundMoney(subtotal),
		Tax:            roundMoney(subtotal * srv.pricing.TaxPercent / 100),
		DeliveryCharge: roundMoney(srv.pricing.DeliveryCharge),
		Surge:          roundMoney(srv.pricing.Surge),
		Tip:            roundMoney(tip),
	}
	amounts.Discount = roundMoney(min(discount, amounts.Subtotal+amounts.Tax))
	amounts.Total = roundMoney(amounts.Subtotal + amounts.Tax - amounts.Discount + amounts.DeliveryCharge + amounts.Surge + amounts.Tip)

	return amounts
}

// GetOrder returns the order to its customer, its restaurant's merchant, its agent and admins.
func (srv *orderService) GetOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find order")
	}

	if !canViewOrder(actor, order) {
		return nil, domainerrors.ErrForbidden.WithDetails("order is not visible to this actor")
	}

	return order, nil
}

func canViewOrder(actor entity.Actor, order *entity.Order) bool {
	switch actor.Role {
	case entity.RoleAdmin, entity.RoleSystem:
		return true
	case entity.RoleCustomer:
		return order.CustomerID != nil && *order.CustomerID == actor.UserID
	case entity.RoleGuest:
		return order.CustomerID == nil
	case entity.RoleMerchant:
		return actor.OwnsRestaurant(order.RestaurantID)
	case entity.RoleAgent:
		return order.AssignedAgentID != nil && actor.IsAgent(*order.AssignedAgentID)
	default:
		return false
	}
}

func (srv *orderService) MerchantAcceptOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error) {
	return srv.transition(ctx, &transitionRequest{
		actor:     actor,
		orderID:   orderID,
		action:    entity.ActionMerchantAccept,
		authorize: requireMerchantPermission(actor, entity.PermissionCanAcceptOrder),
	})
}

func (srv *orderService) MerchantRejectOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID, reason string) (*entity.Order, error) {
	return srv.transition(ctx, &transitionRequest{
		actor:     actor,
		orderID:   orderID,
		action:    entity.ActionMerchantReject,
		reason:    &reason,
		authorize: requireMerchantPermission(actor, entity.PermissionCanRejectOrder),
	})
}

// MerchantUpdateStatus is the isolated administrative override. It does not consult the
// guarded merchant transitions and may be tightened independently of them.
func (srv *orderService) MerchantUpdateStatus(ctx context.Context, actor entity.Actor, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	action, ok := entity.OverrideActionFor(status)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be one of preparing, ready, completed")
	}

	return srv.transition(ctx, &transitionRequest{
		actor:   actor,
		orderID: orderID,
		action:  action,
		authorize: func(_ context.Context, _ repository.RepositoryFactory, order *entity.Order) error {
			if actor.Role == entity.RoleMerchant && !actor.OwnsRestaurant(order.RestaurantID) {
				return domainerrors.ErrForbidden.WithDetails("order belongs to another restaurant")
			}

			return nil
		},
	})
}

func (srv *orderService) AgentAcceptOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error) {
	return srv.transition(ctx, &transitionRequest{
		actor:       actor,
		orderID:     orderID,
		action:      entity.ActionAgentAccept,
		assignAgent: actor.AgentID,
		authorize: func(ctx context.Context, repos repository.RepositoryFactory, _ *entity.Order) error {
			if actor.Role != entity.RoleAgent || actor.AgentID == nil {
				return domainerrors.ErrForbidden.WithDetails("caller is not an agent")
			}

			agent, err := repos.NewAgentRepository().FindAgentByID(ctx, *actor.AgentID)
			if err != nil {
				return mapRepositoryError(err, "failed to find agent")
			}
			if !agent.Active {
				return domainerrors.ErrAgentInactive
			}

			return nil
		},
	})
}

func (srv *orderService) AgentRejectOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID, reason string) (*entity.Order, error) {
	return srv.transition(ctx, &transitionRequest{
		actor:   actor,
		orderID: orderID,
		action:  entity.ActionAgentReject,
		reason:  &reason,
		authorize: func(_ context.Context, _ repository.RepositoryFactory, _ *entity.Order) error {
			if actor.Role != entity.RoleAgent || actor.AgentID == nil {
				return domainerrors.ErrForbidden.WithDetails("caller is not an agent")
			}

			return nil
		},
	})
}

func (srv *orderService) AgentUpdateStatus(ctx context.Context, actor entity.Actor, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	action, ok := entity.AgentActionFor(status)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be one of picked_up, on_the_way, arrived, delivered")
	}

	return srv.transition(ctx, &transitionRequest{
		actor:   actor,
		orderID: orderID,
		action:  action,
		authorize: func(_ context.Context, _ repository.RepositoryFactory, order *entity.Order) error {
			if order.AssignedAgentID == nil || !actor.IsAgent(*order.AssignedAgentID) {
				return domainerrors.ErrForbidden.WithDetails("order is assigned to another agent")
			}

			return nil
		},
	})
}

func (srv *orderService) CustomerCancelOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID, reason string, debtCancellation bool) (*entity.Order, error) {
	return srv.transition(ctx, &transitionRequest{
		actor:   actor,
		orderID: orderID,
		action:  entity.ActionCustomerCancel,
		reason:  &reason,
		debt:    &debtCancellation,
		authorize: func(_ context.Context, _ repository.RepositoryFactory, order *entity.Order) error {
			if actor.Role != entity.RoleCustomer && actor.Role != entity.RoleGuest {
				return domainerrors.ErrForbidden.WithDetails("only the customer may cancel")
			}
			if !canViewOrder(actor, order) {
				return domainerrors.ErrForbidden.WithDetails("order belongs to another customer")
			}

			return nil
		},
	})
}

// SubmitAgentReview lets the customer rate the agent who delivered the order, once.
func (srv *orderService) SubmitAgentReview(ctx context.Context, actor entity.Actor, orderID uuid.UUID, rating int) (*entity.Agent, error) {
	if rating < entity.MinAgentRating || rating > entity.MaxAgentRating {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}

	var agent *entity.Agent
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		orders := repos.NewOrderRepository()
		order, err := orders.FindOrderByID(ctx, orderID)
		if err != nil {
			return mapRepositoryError(err, "failed to find order")
		}

		if actor.Role != entity.RoleCustomer || order.CustomerID == nil || *order.CustomerID != actor.UserID {
			return domainerrors.ErrForbidden.WithDetails("only the ordering customer may review the delivery")
		}
		if order.Status != entity.OrderStatusDelivered || order.AssignedAgentID == nil {
			return domainerrors.NewTransitionError(string(order.Status), "submit_review")
		}

		if err := orders.SetAgentRating(ctx, order.ID, rating); err != nil {
			return mapRepositoryError(err, "failed to store rating")
		}

		agent, err = repos.NewAgentRepository().RecordReview(ctx, *order.AssignedAgentID, rating)
		if err != nil {
			return mapRepositoryError(err, "failed to record agent review")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Agent reviewed",
		slog.Any("orderID", orderID),
		slog.Any("agentID", agent.ID),
		slog.Int("rating", rating),
		slog.Float64("averageRating", agent.AverageRating))

	return agent, nil
}

// requireMerchantPermission checks restaurant ownership and the given permission flag.
func requireMerchantPermission(actor entity.Actor, flag string) func(context.Context, repository.RepositoryFactory, *entity.Order) error {
	return func(ctx context.Context, repos repository.RepositoryFactory, order *entity.Order) error {
		if actor.Role != entity.RoleMerchant || !actor.OwnsRestaurant(order.RestaurantID) {
			return domainerrors.ErrForbidden.WithDetails("order belongs to another restaurant")
		}

		perm, err := findPermission(ctx, repos.NewPermissionRepository(), order.RestaurantID)
		if err != nil {
			return err
		}

		allowed := map[string]bool{
			entity.PermissionCanAcceptOrder: perm.CanAcceptOrder,
			entity.PermissionCanRejectOrder: perm.CanRejectOrder,
		}[flag]
		if !allowed {
			return domainerrors.ErrPermissionDenied.WithDetails("missing " + flag)
		}

		return nil
	}
}
