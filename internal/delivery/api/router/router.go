// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"boxtrack/config"
	"boxtrack/internal/delivery/api/middleware"
	"boxtrack/internal/delivery/api/router/handler"
	"boxtrack/internal/domain/entity"
	"boxtrack/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	AccountHandler   *handler.AccountHandler
	ReferenceHandler *handler.ReferenceHandler
	ShipmentHandler  *handler.ShipmentHandler
	DashboardHandler *handler.DashboardHandler
	DeviceHandler    *handler.DeviceHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Config           *config.Config
	Metrics          *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	accountHandler   *handler.AccountHandler
	referenceHandler *handler.ReferenceHandler
	shipmentHandler  *handler.ShipmentHandler
	dashboardHandler *handler.DashboardHandler
	deviceHandler    *handler.DeviceHandler
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
	metrics          *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		accountHandler:   params.AccountHandler,
		referenceHandler: params.ReferenceHandler,
		shipmentHandler:  params.ShipmentHandler,
		dashboardHandler: params.DashboardHandler,
		deviceHandler:    params.DeviceHandler,
		authMiddleware:   params.AuthMiddleware,
		config:           params.Config,
		metrics:          params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	authenticated := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireAdmin

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	meGroup := apiV1.Group("/me")
	meGroup.Use(authenticated)
	{
		meGroup.GET("", r.authHandler.Profile)
		meGroup.PUT("", r.accountHandler.UpdateProfile)
		meGroup.PUT("/password", r.accountHandler.ChangePassword)
	}

	accountsGroup := apiV1.Group("/accounts")
	accountsGroup.Use(authenticated, adminOnly)
	{
		accountsGroup.POST("", r.accountHandler.CreateAccount)
		accountsGroup.DELETE("/:id", r.accountHandler.DeleteAccount)
	}

	// Reference data: reads are public, writes need an administrator.
	countriesGroup := apiV1.Group("/countries")
	{
		countriesGroup.GET("", r.referenceHandler.ListCountries(false))
		countriesGroup.GET("/active", r.referenceHandler.ListCountries(true))
		countriesGroup.GET("/:id", r.referenceHandler.GetCountry)
		countriesGroup.POST("", r.referenceHandler.CreateCountry, authenticated, adminOnly)
		countriesGroup.PUT("/:id", r.referenceHandler.UpdateCountry, authenticated, adminOnly)
		countriesGroup.PATCH("/:id/active", r.referenceHandler.ToggleCountry, authenticated, adminOnly)
		countriesGroup.DELETE("/:id", r.referenceHandler.DeleteCountry, authenticated, adminOnly)
	}

	boxesGroup := apiV1.Group("/boxes")
	{
		boxesGroup.GET("", r.referenceHandler.ListBoxTypes(false))
		boxesGroup.GET("/active", r.referenceHandler.ListBoxTypes(true))
		boxesGroup.GET("/:id", r.referenceHandler.GetBoxType)
		boxesGroup.POST("/calculate-cost", r.referenceHandler.Quote)
		boxesGroup.POST("", r.referenceHandler.CreateBoxType, authenticated, adminOnly)
		boxesGroup.PUT("/:id", r.referenceHandler.UpdateBoxType, authenticated, adminOnly)
		boxesGroup.PATCH("/:id/active", r.referenceHandler.ToggleBoxType, authenticated, adminOnly)
		boxesGroup.DELETE("/:id", r.referenceHandler.DeleteBoxType, authenticated, adminOnly)
	}

	shipmentsGroup := apiV1.Group("/shipments")
	shipmentsGroup.Use(authenticated)
	{
		shipmentsGroup.POST("", r.shipmentHandler.Create)
		shipmentsGroup.GET("", r.shipmentHandler.List)
		shipmentsGroup.GET("/completed", r.shipmentHandler.ListByStatus(entity.StatusCompleted))
		shipmentsGroup.GET("/cancelled", r.shipmentHandler.ListByStatus(entity.StatusCancelled))
		shipmentsGroup.GET("/customer/:customerId", r.shipmentHandler.ListByCustomer, adminOnly)
		shipmentsGroup.GET("/tracking/:trackingNumber", r.shipmentHandler.GetByTrackingNumber)
		shipmentsGroup.GET("/:id", r.shipmentHandler.Get)
		shipmentsGroup.GET("/:id/history", r.shipmentHandler.History)
		shipmentsGroup.GET("/:id/label", r.shipmentHandler.Label)
		shipmentsGroup.PUT("/:id/status", r.shipmentHandler.Transition)
		shipmentsGroup.POST("/:id/payment", r.shipmentHandler.MarkPaid)
		shipmentsGroup.DELETE("/:id", r.shipmentHandler.Delete, adminOnly)
	}

	dashboardGroup := apiV1.Group("/dashboard")
	dashboardGroup.Use(authenticated)
	{
		dashboardGroup.GET("/user", r.dashboardHandler.User)
		dashboardGroup.GET("/admin", r.dashboardHandler.Admin, adminOnly)
		dashboardGroup.GET("/analytics", r.dashboardHandler.Analytics, adminOnly)
	}

	devicesGroup := apiV1.Group("/devices")
	devicesGroup.Use(authenticated)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}

// RegisterMetricsRoute exposes the prometheus registry when metrics are enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.metrics == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}
