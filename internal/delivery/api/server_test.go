package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dispatch/config"
	apimiddleware "dispatch/internal/delivery/api/middleware"
	"dispatch/internal/delivery/api/router"
	"dispatch/internal/delivery/api/router/handler"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"
	"dispatch/internal/infra/auth"
	"dispatch/internal/infra/persistence/memory"
	"dispatch/internal/infra/pricing"
	"dispatch/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	echo       *echo.Echo
	store      *memory.Store
	tokens     service.TokenService
	restaurant *entity.Restaurant
	product    *entity.Product
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{
		Dispatch:   &config.DispatchConfig{MaxDistanceMeters: 5000, CandidateLimit: 5, RetryBatchSize: 10},
		Pricing:    &config.PricingConfig{TaxPercent: 10, DeliveryCharge: 3},
		Rewards:    &config.RewardsConfig{AgentDeliveryPoints: 10, MilestoneEvery: 5, MilestonePoints: 50},
		Commission: &config.CommissionConfig{DefaultPercent: 10},
		TestRoutes: &config.TestRoutesConfig{Enabled: true},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Access = "api-test-secret"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	commissions, err := pricing.NewCommissionProvider(cfg)
	require.NoError(t, err)

	store := memory.NewStore()
	repos := store.Repositories()
	txManager := store.NewTransactionManager()

	dispatchUC := impl.NewDispatchService(impl.DispatchServiceParams{
		TxManager:   txManager,
		OrderRepo:   repos.NewOrderRepository(),
		AgentRepo:   repos.NewAgentRepository(),
		Locator:     memory.NewAgentLocator(store),
		Commissions: commissions,
		Config:      cfg,
		Logger:      logger,
	})
	orderUC := impl.NewOrderService(impl.OrderServiceParams{
		TxManager:   txManager,
		OrderRepo:   repos.NewOrderRepository(),
		Dispatcher:  dispatchUC,
		Commissions: commissions,
		Config:      cfg,
		Logger:      logger,
	})
	changeRequestUC := impl.NewChangeRequestService(impl.ChangeRequestServiceParams{
		TxManager:         txManager,
		ChangeRequestRepo: repos.NewChangeRequestRepository(),
		Logger:            logger,
	})

	routerParams := router.RouterParams{
		OrderHandler:    handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: orderUC}),
		DispatchHandler: handler.NewDispatchHandler(handler.DispatchHandlerParams{DispatchUC: dispatchUC, OrderUC: orderUC}),
		PermissionHandler: handler.NewPermissionHandler(handler.PermissionHandlerParams{
			PermissionUC: impl.NewPermissionService(impl.PermissionServiceParams{
				PermissionRepo: repos.NewPermissionRepository(),
				Logger:         logger,
			}),
		}),
		MenuHandler: handler.NewMenuHandler(handler.MenuHandlerParams{
			MenuUC: impl.NewMenuService(impl.MenuServiceParams{
				TxManager:      txManager,
				PermissionRepo: repos.NewPermissionRepository(),
				ChangeRequests: changeRequestUC,
				Logger:         logger,
			}),
		}),
		ChangeRequestHandler: handler.NewChangeRequestHandler(handler.ChangeRequestHandlerParams{ChangeRequestUC: changeRequestUC}),
		EarningHandler: handler.NewEarningHandler(handler.EarningHandlerParams{
			EarningUC: impl.NewEarningService(impl.EarningServiceParams{
				TxManager:      txManager,
				EarningRepo:    repos.NewEarningRepository(),
				AgentRepo:      repos.NewAgentRepository(),
				PermissionRepo: repos.NewPermissionRepository(),
				Commissions:    commissions,
				Config:         cfg,
				Logger:         logger,
			}),
		}),
		TestHandler:    handler.NewTestHandler(handler.TestHandlerParams{TokenSvc: tokens}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokens, logger),
		Config:         cfg,
	}

	f := &apiFixture{
		echo:   newEcho(cfg, logger, routerParams),
		store:  store,
		tokens: tokens,
	}

	f.restaurant = &entity.Restaurant{
		ID:       uuid.New(),
		OwnerID:  uuid.New(),
		Name:     "Din Tai Fung",
		Location: entity.Point{Longitude: 121.5654, Latitude: 25.0340},
	}
	store.SeedRestaurant(f.restaurant)

	category := &entity.Category{ID: uuid.New(), RestaurantID: f.restaurant.ID, Name: "Dumplings"}
	store.SeedCategory(category)

	f.product = &entity.Product{
		ID:           uuid.New(),
		RestaurantID: f.restaurant.ID,
		CategoryID:   category.ID,
		Name:         "Xiaolongbao",
		Price:        10,
		Active:       true,
	}
	store.SeedProduct(f.product)

	perm := entity.DefaultPermission(f.restaurant.ID)
	perm.Apply(map[string]bool{entity.PermissionCanAcceptOrder: true, entity.PermissionCanRejectOrder: true})
	store.SeedPermission(perm)

	return f
}

func (f *apiFixture) token(t *testing.T, claims *service.Claims) string {
	t.Helper()

	token, err := f.tokens.GenerateAccessToken(claims)
	require.NoError(t, err)

	return token
}

func (f *apiFixture) customerToken(t *testing.T) string {
	return f.token(t, &service.Claims{UserID: uuid.New(), Roles: []string{"customer"}})
}

func (f *apiFixture) merchantToken(t *testing.T) string {
	restaurantID := f.restaurant.ID

	return f.token(t, &service.Claims{UserID: f.restaurant.OwnerID, Roles: []string{"merchant"}, RestaurantID: &restaurantID})
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, *envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, &env
}

func (f *apiFixture) placeOrderBody() map[string]any {
	return map[string]any{
		"restaurant_id":  f.restaurant.ID,
		"items":          []map[string]any{{"product_id": f.product.ID, "quantity": 2}},
		"delivery_point": map[string]float64{"longitude": 121.5654, "latitude": 25.0440},
	}
}

func decodeOrder(t *testing.T, env *envelope) *entity.Order {
	t.Helper()

	var order entity.Order
	require.NoError(t, json.Unmarshal(env.Data, &order))

	return &order
}

func TestAPI_RejectsMissingAndInvalidTokens(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodPost, "/api/v1/customer/orders", "", f.placeOrderBody())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", env.Error.Code)
	assert.NotEmpty(t, env.Meta.RequestID)

	rec, env = f.do(t, http.MethodPost, "/api/v1/customer/orders", "not-a-jwt", f.placeOrderBody())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
}

func TestAPI_RoleGroupsRequireTheirRole(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/api/v1/admin/change-requests", f.customerToken(t), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ROLE_REQUIRED", env.Error.Code)

	// a merchant token without a restaurant cannot act as a merchant
	bare := f.token(t, &service.Claims{UserID: uuid.New(), Roles: []string{"merchant"}})
	rec, _ = f.do(t, http.MethodPost, "/api/v1/merchant/orders/"+uuid.NewString()+"/accept", bare, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAPI_OrderLifecycleOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	customer := f.customerToken(t)
	merchant := f.merchantToken(t)

	rec, env := f.do(t, http.MethodPost, "/api/v1/customer/orders", customer, f.placeOrderBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	order := decodeOrder(t, env)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.InDelta(t, 25, order.Amounts.Total, 0.001)

	rec, env = f.do(t, http.MethodPost, "/api/v1/merchant/orders/"+order.ID.String()+"/accept", merchant, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, entity.OrderStatusAcceptedByRestaurant, decodeOrder(t, env).Status)

	// accepting twice is refused with the order's current status
	rec, env = f.do(t, http.MethodPost, "/api/v1/merchant/orders/"+order.ID.String()+"/accept", merchant, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_TRANSITION", env.Error.Code)
	var details struct {
		CurrentStatus string `json:"current_status"`
	}
	require.NoError(t, json.Unmarshal(env.Error.Details, &details))
	assert.Equal(t, string(entity.OrderStatusAcceptedByRestaurant), details.CurrentStatus)

	// another customer cannot see the order
	rec, _ = f.do(t, http.MethodGet, "/api/v1/customer/orders/"+order.ID.String(), f.customerToken(t), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env = f.do(t, http.MethodGet, "/api/v1/customer/orders/"+order.ID.String(), customer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, order.ID, decodeOrder(t, env).ID)
}

func TestAPI_ValidationErrorsCarryDetails(t *testing.T) {
	f := newAPIFixture(t)

	body := f.placeOrderBody()
	body["items"] = []map[string]any{}

	rec, env := f.do(t, http.MethodPost, "/api/v1/customer/orders", f.customerToken(t), body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, string(env.Error.Details), "items")

	rec, env = f.do(t, http.MethodGet, "/api/v1/guest/orders/not-a-uuid", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestAPI_GuestOrderAndCancel(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodPost, "/api/v1/guest/orders", "", f.placeOrderBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	order := decodeOrder(t, env)
	assert.Nil(t, order.CustomerID)

	rec, env = f.do(t, http.MethodPost, "/api/v1/guest/orders/"+order.ID.String()+"/cancel", "", map[string]any{
		"reason": "changed my mind",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cancelled := decodeOrder(t, env)
	assert.Equal(t, entity.OrderStatusCancelledByCustomer, cancelled.Status)
	assert.Equal(t, "changed my mind", cancelled.Reason)
}

func TestAPI_AdminPermissionsAndTestTokens(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodPost, "/test/tokens", "", map[string]any{
		"user_id":     uuid.New(),
		"roles":       []string{"admin"},
		"ttl_seconds": int((10 * time.Minute).Seconds()),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var issued struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &issued))
	admin := issued.AccessToken

	path := "/api/v1/admin/restaurants/" + f.restaurant.ID.String() + "/permissions"
	rec, env = f.do(t, http.MethodPut, path, admin, map[string]any{
		entity.PermissionCanManageMenu: true,
		"not_a_flag":                   true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var perm entity.RestaurantPermission
	require.NoError(t, json.Unmarshal(env.Data, &perm))
	assert.True(t, perm.CanManageMenu)
	assert.True(t, perm.CanAcceptOrder)

	rec, _ = f.do(t, http.MethodGet, "/test/whoami", admin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_MenuChangeIsForwardedWithoutPermission(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodPost, "/api/v1/merchant/products/"+f.product.ID.String()+"/toggle", f.merchantToken(t), map[string]any{
		"note": "sold out",
	})
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	var result struct {
		Forwarded     bool `json:"forwarded"`
		ChangeRequest struct {
			Status string `json:"status"`
			Action string `json:"action"`
		} `json:"change_request"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.True(t, result.Forwarded)
	assert.Equal(t, string(entity.ChangeRequestPending), result.ChangeRequest.Status)
	assert.Equal(t, string(entity.ChangeActionToggleProductActive), result.ChangeRequest.Action)
}

func TestAPI_MerchantReadsOwnPermissionsAndAdminOverrides(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/api/v1/merchant/permissions", f.merchantToken(t), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var perm entity.RestaurantPermission
	require.NoError(t, json.Unmarshal(env.Data, &perm))
	assert.True(t, perm.CanAcceptOrder)
	assert.False(t, perm.CanManageMenu)

	rec, env = f.do(t, http.MethodPost, "/api/v1/customer/orders", f.customerToken(t), f.placeOrderBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	order := decodeOrder(t, env)

	admin := f.token(t, &service.Claims{UserID: uuid.New(), Roles: []string{"admin"}})
	rec, env = f.do(t, http.MethodPost, "/api/v1/admin/orders/"+order.ID.String()+"/status", admin, map[string]any{
		"status": entity.OrderStatusPreparing,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, entity.OrderStatusPreparing, decodeOrder(t, env).Status)

	rec, env = f.do(t, http.MethodPost, "/api/v1/admin/orders/"+order.ID.String()+"/status", admin, map[string]any{
		"status": entity.OrderStatusDelivered,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}
