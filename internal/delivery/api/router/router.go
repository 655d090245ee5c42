// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dispatch/config"
	"dispatch/internal/delivery/api/middleware"
	"dispatch/internal/delivery/api/router/handler"
	"dispatch/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler         *handler.OrderHandler
	DispatchHandler      *handler.DispatchHandler
	PermissionHandler    *handler.PermissionHandler
	MenuHandler          *handler.MenuHandler
	ChangeRequestHandler *handler.ChangeRequestHandler
	EarningHandler       *handler.EarningHandler
	TestHandler          *handler.TestHandler
	AuthMiddleware       *middleware.AuthMiddleware
	Config               *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler         *handler.OrderHandler
	dispatchHandler      *handler.DispatchHandler
	permissionHandler    *handler.PermissionHandler
	menuHandler          *handler.MenuHandler
	changeRequestHandler *handler.ChangeRequestHandler
	earningHandler       *handler.EarningHandler
	testHandler          *handler.TestHandler
	authMiddleware       *middleware.AuthMiddleware
	config               *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:         params.OrderHandler,
		dispatchHandler:      params.DispatchHandler,
		permissionHandler:    params.PermissionHandler,
		menuHandler:          params.MenuHandler,
		changeRequestHandler: params.ChangeRequestHandler,
		earningHandler:       params.EarningHandler,
		testHandler:          params.TestHandler,
		authMiddleware:       params.AuthMiddleware,
		config:               params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Each role has its own group; the group decides the role an authenticated caller acts under.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Guests order without an account and track the order by its id
	guestGroup := apiV1.Group("/guest")
	guestGroup.Use(r.authMiddleware.Guest)
	{
		guestGroup.POST("/orders", r.orderHandler.PlaceOrder)
		guestGroup.GET("/orders/:id", r.orderHandler.GetOrder)
		guestGroup.POST("/orders/:id/cancel", r.orderHandler.CancelOrder)
	}

	customerGroup := apiV1.Group("/customer")
	customerGroup.Use(r.authMiddleware.Authenticate)
	customerGroup.Use(r.authMiddleware.RequireRole(entity.RoleCustomer))
	{
		customerGroup.POST("/orders", r.orderHandler.PlaceOrder)
		customerGroup.GET("/orders/:id", r.orderHandler.GetOrder)
		customerGroup.POST("/orders/:id/cancel", r.orderHandler.CancelOrder)
		customerGroup.POST("/orders/:id/review", r.orderHandler.SubmitReview)
	}

	merchantGroup := apiV1.Group("/merchant")
	merchantGroup.Use(r.authMiddleware.Authenticate)
	merchantGroup.Use(r.authMiddleware.RequireRole(entity.RoleMerchant))
	{
		merchantGroup.GET("/orders/:id", r.orderHandler.GetOrder)
		merchantGroup.POST("/orders/:id/accept", r.orderHandler.MerchantAccept)
		merchantGroup.POST("/orders/:id/reject", r.orderHandler.MerchantReject)
		merchantGroup.POST("/orders/:id/status", r.orderHandler.MerchantUpdateStatus)

		merchantGroup.POST("/products", r.menuHandler.CreateProduct)
		merchantGroup.PATCH("/products/:id", r.menuHandler.UpdateProduct)
		merchantGroup.DELETE("/products/:id", r.menuHandler.DeleteProduct)
		merchantGroup.POST("/products/:id/toggle", r.menuHandler.ToggleProductActive)

		merchantGroup.GET("/permissions", r.permissionHandler.GetOwnPermission)
		merchantGroup.GET("/earnings", r.earningHandler.ListRestaurantEarnings)
	}

	agentGroup := apiV1.Group("/agent")
	agentGroup.Use(r.authMiddleware.Authenticate)
	agentGroup.Use(r.authMiddleware.RequireRole(entity.RoleAgent))
	{
		agentGroup.PUT("/location", r.dispatchHandler.UpdateLocation)

		agentGroup.GET("/orders/:id", r.orderHandler.GetOrder)
		agentGroup.POST("/orders/:id/accept", r.orderHandler.AgentAccept)
		agentGroup.POST("/orders/:id/reject", r.orderHandler.AgentReject)
		agentGroup.POST("/orders/:id/status", r.orderHandler.AgentUpdateStatus)

		agentGroup.GET("/earnings/summary", r.earningHandler.GetMySummary)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/orders/:id", r.orderHandler.GetOrder)
		adminGroup.POST("/orders/:id/status", r.orderHandler.MerchantUpdateStatus)
		adminGroup.POST("/orders/:id/dispatch", r.dispatchHandler.AssignNearest)
		adminGroup.POST("/orders/:id/restaurant-earning", r.earningHandler.PostRestaurantEarning)
		adminGroup.POST("/dispatch/retry", r.dispatchHandler.RetryUnassigned)

		adminGroup.GET("/restaurants/:id/permissions", r.permissionHandler.GetPermission)
		adminGroup.PUT("/restaurants/:id/permissions", r.permissionHandler.UpdatePermission)
		adminGroup.GET("/restaurants/:id/earnings", r.earningHandler.ListRestaurantEarnings)

		adminGroup.GET("/change-requests", r.changeRequestHandler.ListChangeRequests)
		adminGroup.POST("/change-requests/:id/review", r.changeRequestHandler.ReviewChangeRequest)

		adminGroup.GET("/agents/:id/earnings/summary", r.earningHandler.GetAgentSummary)
		adminGroup.POST("/agents/:id/earnings", r.earningHandler.PostAgentEarning)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.POST("/tokens", r.testHandler.IssueToken)
	testGroup.GET("/whoami", r.testHandler.WhoAmI, r.authMiddleware.Authenticate)
}
