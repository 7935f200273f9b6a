// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"carmarket/internal/delivery/http/middleware"
	"carmarket/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	CarHandler          *handler.CarHandler
	OrderHandler        *handler.OrderHandler
	TransactionHandler  *handler.TransactionHandler
	NotificationHandler *handler.NotificationHandler
	SystemHandler       *handler.SystemHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	carHandler          *handler.CarHandler
	orderHandler        *handler.OrderHandler
	transactionHandler  *handler.TransactionHandler
	notificationHandler *handler.NotificationHandler
	systemHandler       *handler.SystemHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		carHandler:          params.CarHandler,
		orderHandler:        params.OrderHandler,
		transactionHandler:  params.TransactionHandler,
		notificationHandler: params.NotificationHandler,
		systemHandler:       params.SystemHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Service-level endpoints
	e.GET("/", r.systemHandler.Root)
	e.GET("/health", r.systemHandler.HealthCheck)
	e.GET("/schema", r.systemHandler.Schema)
	e.GET("/test", r.systemHandler.Diagnostics)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/onboard/customer", r.authHandler.OnboardCustomer)
		authGroup.POST("/onboard/owner", r.authHandler.OnboardOwner)
	}

	// Listing routes
	carGroup := e.Group("/cars")
	{
		carGroup.POST("", r.carHandler.CreateCar)
		carGroup.GET("", r.carHandler.SearchCars)
		carGroup.GET("/:id", r.carHandler.GetCar)
	}

	// Order routes
	orderGroup := e.Group("/orders")
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.POST("/:id/status", r.orderHandler.UpdateStatus)
	}

	// Payment routes
	transactionGroup := e.Group("/transactions")
	{
		transactionGroup.POST("", r.transactionHandler.CreateTransaction)
		transactionGroup.GET("", r.transactionHandler.ListTransactions)
	}

	// Notification feed
	e.GET("/notifications", r.notificationHandler.ListNotifications)
}
