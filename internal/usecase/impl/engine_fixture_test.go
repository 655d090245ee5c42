package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"dispatch/config"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"
	"dispatch/internal/infra/persistence/memory"
	mockService "dispatch/internal/mocks/service"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// restaurantPoint is where every test restaurant and delivery sits unless a test says otherwise.
var restaurantPoint = entity.Point{Longitude: 121.5654, Latitude: 25.0340}

// north returns a point roughly km kilometres north of restaurantPoint.
func north(km float64) entity.Point {
	return entity.Point{Longitude: restaurantPoint.Longitude, Latitude: restaurantPoint.Latitude + km/111.2}
}

// engineFixtures wires every service over one in-memory store.
type engineFixtures struct {
	store          *memory.Store
	repos          repository.RepositoryFactory
	orders         usecase.OrderUsecase
	dispatch       usecase.DispatchUsecase
	earnings       usecase.EarningUsecase
	changeRequests usecase.ChangeRequestUsecase
	menu           usecase.MenuUsecase
	permissions    usecase.PermissionUsecase
	notifier       *mockService.MockNotifier
	sent           *notificationLog

	restaurant *entity.Restaurant
	category   *entity.Category
	product    *entity.Product
	merchant   entity.Actor
	customer   entity.Actor
	admin      entity.Actor
}

// notificationLog records every notification the services hand to the notifier.
type notificationLog struct {
	mu   sync.Mutex
	sent []*service.Notification
}

func (l *notificationLog) record(_ context.Context, n *service.Notification) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.sent = append(l.sent, n)
}

func (l *notificationLog) on(channel service.NotificationChannel) []*service.Notification {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []*service.Notification
	for _, n := range l.sent {
		if n.Channel == channel {
			out = append(out, n)
		}
	}

	return out
}

func newEngineFixtures(t *testing.T) *engineFixtures {
	t.Helper()

	lc := fxtest.NewLifecycle(t)
	lc.RequireStart()

	store := memory.NewStore()
	repos := store.Repositories()
	txManager := store.NewTransactionManager()
	logger := discardLogger()

	sent := &notificationLog{}
	notifier := mockService.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Run(sent.record).Return(nil).Maybe()

	commissions := mockService.NewMockCommissionProvider(t)
	commissions.EXPECT().CommissionFor(mock.Anything, mock.Anything).Return(entity.Commission{Percent: 10}, nil).Maybe()

	cfg := &config.Config{
		Dispatch: &config.DispatchConfig{MaxDistanceMeters: 5000, CandidateLimit: 5, RetryBatchSize: 10},
		Pricing:  &config.PricingConfig{TaxPercent: 10, DeliveryCharge: 3},
		Rewards:  &config.RewardsConfig{AgentDeliveryPoints: 10, MilestoneEvery: 2, MilestonePoints: 50},
	}

	dispatch := NewDispatchService(DispatchServiceParams{
		Lifecycle:   lc,
		TxManager:   txManager,
		OrderRepo:   repos.NewOrderRepository(),
		AgentRepo:   repos.NewAgentRepository(),
		Locator:     memory.NewAgentLocator(store),
		Commissions: commissions,
		Notifier:    notifier,
		Config:      cfg,
		Logger:      logger,
	})

	changeRequests := NewChangeRequestService(ChangeRequestServiceParams{
		Lifecycle:         lc,
		TxManager:         txManager,
		ChangeRequestRepo: repos.NewChangeRequestRepository(),
		Notifier:          notifier,
		Logger:            logger,
	})

	f := &engineFixtures{
		store:    store,
		repos:    repos,
		dispatch: dispatch,
		orders: NewOrderService(OrderServiceParams{
			Lifecycle:   lc,
			TxManager:   txManager,
			OrderRepo:   repos.NewOrderRepository(),
			Dispatcher:  dispatch,
			Commissions: commissions,
			Notifier:    notifier,
			Config:      cfg,
			Logger:      logger,
		}),
		earnings: NewEarningService(EarningServiceParams{
			TxManager:      txManager,
			EarningRepo:    repos.NewEarningRepository(),
			AgentRepo:      repos.NewAgentRepository(),
			PermissionRepo: repos.NewPermissionRepository(),
			Commissions:    commissions,
			Config:         cfg,
			Logger:         logger,
		}),
		changeRequests: changeRequests,
		menu: NewMenuService(MenuServiceParams{
			TxManager:      txManager,
			PermissionRepo: repos.NewPermissionRepository(),
			ChangeRequests: changeRequests,
			Logger:         logger,
		}),
		permissions: NewPermissionService(PermissionServiceParams{
			PermissionRepo: repos.NewPermissionRepository(),
			Logger:         logger,
		}),
		notifier: notifier,
		sent:     sent,
	}

	t.Cleanup(func() { lc.RequireStop() })

	f.restaurant = f.seedRestaurant(t)
	f.category = &entity.Category{ID: uuid.New(), RestaurantID: f.restaurant.ID, Name: "Noodles"}
	store.SeedCategory(f.category)
	f.product = f.seedProduct(f.restaurant.ID, f.category.ID, 10)

	store.SeedPermission(&entity.RestaurantPermission{
		RestaurantID:   f.restaurant.ID,
		CanAcceptOrder: true,
		CanRejectOrder: true,
	})

	restaurantID := f.restaurant.ID
	f.merchant = entity.Actor{UserID: f.restaurant.OwnerID, Role: entity.RoleMerchant, RestaurantID: &restaurantID}
	f.customer = entity.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}
	f.admin = entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}

	return f
}

func (f *engineFixtures) seedRestaurant(t *testing.T) *entity.Restaurant {
	t.Helper()

	now := time.Now()
	restaurant := &entity.Restaurant{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Name:      "Din Tai Fung",
		Location:  restaurantPoint,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.store.SeedRestaurant(restaurant)

	return restaurant
}

func (f *engineFixtures) seedProduct(restaurantID, categoryID uuid.UUID, price float64) *entity.Product {
	product := &entity.Product{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		CategoryID:   categoryID,
		Name:         "Beef noodle soup",
		Price:        price,
		Active:       true,
	}
	f.store.SeedProduct(product)

	return product
}

// seedAgent creates an agent at location and returns the actor that agent calls with.
func (f *engineFixtures) seedAgent(location entity.Point, active bool, capacity int) entity.Actor {
	agent := &entity.Agent{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Active:   active,
		Location: location,
		Capacity: capacity,
	}
	f.store.SeedAgent(agent)

	agentID := agent.ID

	return entity.Actor{UserID: agent.UserID, Role: entity.RoleAgent, AgentID: &agentID}
}

func (f *engineFixtures) setPermission(restaurantID uuid.UUID, flags map[string]bool) {
	perm := entity.DefaultPermission(restaurantID)
	perm.Apply(flags)
	f.store.SeedPermission(perm)
}

// placeOrder places a two-item order for the fixture customer.
func (f *engineFixtures) placeOrder(t *testing.T) *entity.Order {
	t.Helper()

	order, err := f.orders.PlaceOrder(context.Background(), f.customer, &usecase.PlaceOrderInput{
		RestaurantID:  f.restaurant.ID,
		Items:         []usecase.PlaceOrderItem{{ProductID: f.product.ID, Quantity: 2}},
		DeliveryPoint: restaurantPoint,
	})
	require.NoError(t, err)

	return order
}

// acceptedOrder places an order and has the merchant accept it.
func (f *engineFixtures) acceptedOrder(t *testing.T) *entity.Order {
	t.Helper()

	order := f.placeOrder(t)
	accepted, err := f.orders.MerchantAcceptOrder(context.Background(), f.merchant, order.ID)
	require.NoError(t, err)

	return accepted
}

// assignedOrder takes an accepted order and has agentActor accept it.
func (f *engineFixtures) assignedOrder(t *testing.T, agentActor entity.Actor) *entity.Order {
	t.Helper()

	order := f.acceptedOrder(t)
	assigned, err := f.orders.AgentAcceptOrder(context.Background(), agentActor, order.ID)
	require.NoError(t, err)

	return assigned
}

// deliver walks an assigned order through the agent statuses up to delivered.
func (f *engineFixtures) deliver(t *testing.T, agentActor entity.Actor, orderID uuid.UUID) *entity.Order {
	t.Helper()

	var (
		order *entity.Order
		err   error
	)
	for _, status := range []entity.OrderStatus{
		entity.OrderStatusPickedUp,
		entity.OrderStatusOnTheWay,
		entity.OrderStatusArrived,
		entity.OrderStatusDelivered,
	} {
		order, err = f.orders.AgentUpdateStatus(context.Background(), agentActor, orderID, status)
		require.NoError(t, err)
	}

	return order
}

// settle waits for the after-commit side effects of the order and dispatch services.
func (f *engineFixtures) settle(t *testing.T) {
	t.Helper()

	require.NoError(t, f.orders.(*orderService).effects.drain(context.Background()))
	require.NoError(t, f.dispatch.(*dispatchService).effects.drain(context.Background()))
}

func (f *engineFixtures) agent(t *testing.T, actor entity.Actor) *entity.Agent {
	t.Helper()

	agent, err := f.repos.NewAgentRepository().FindAgentByID(context.Background(), *actor.AgentID)
	require.NoError(t, err)

	return agent
}

func (f *engineFixtures) order(t *testing.T, id uuid.UUID) *entity.Order {
	t.Helper()

	order, err := f.repos.NewOrderRepository().FindOrderByID(context.Background(), id)
	require.NoError(t, err)

	return order
}
