// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lifeline/internal/delivery/http/middleware"
	"lifeline/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RequestHandler      *handler.RequestHandler
	MatchHandler        *handler.MatchHandler
	ProfileHandler      *handler.ProfileHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	requestHandler      *handler.RequestHandler
	matchHandler        *handler.MatchHandler
	profileHandler      *handler.ProfileHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		requestHandler:      params.RequestHandler,
		matchHandler:        params.MatchHandler,
		profileHandler:      params.ProfileHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Everything else requires an authenticated user
	api := e.Group("")
	api.Use(r.authMiddleware.Authenticate)

	requestGroup := api.Group("/requests")
	{
		requestGroup.POST("", r.requestHandler.CreateRequest)
		requestGroup.GET("/mine", r.requestHandler.ListMyRequests)
		requestGroup.GET("/open", r.requestHandler.ListOpenRequests)
		requestGroup.GET("/:id", r.requestHandler.GetRequest)
		requestGroup.DELETE("/:id", r.requestHandler.DeleteRequest)
		requestGroup.GET("/:id/candidates", r.requestHandler.FindCandidates)
		requestGroup.POST("/:id/complete", r.matchHandler.CompleteMatch)
		requestGroup.POST("/:id/fulfill", r.requestHandler.FulfillRequest)
	}

	matchGroup := api.Group("/matches")
	{
		matchGroup.POST("", r.matchHandler.ProposeMatch)
		matchGroup.GET("/mine", r.matchHandler.ListMyMatches)
		matchGroup.POST("/:id/accept", r.matchHandler.AcceptMatch)
		matchGroup.POST("/:id/reject", r.matchHandler.RejectMatch)
	}

	profileGroup := api.Group("/profile")
	{
		profileGroup.PUT("", r.profileHandler.UpsertProfile)
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("/availability", r.profileHandler.SetAvailability)
		profileGroup.PUT("/location", r.profileHandler.UpdateLocation)
		profileGroup.PUT("/device", r.profileHandler.RegisterDevice)
	}

	notificationGroup := api.Group("/notifications")
	{
		notificationGroup.GET("", r.notificationHandler.ListNotifications)
		notificationGroup.PUT("/:id/read", r.notificationHandler.MarkRead)
		notificationGroup.DELETE("/:id", r.notificationHandler.DeleteNotification)
	}
}
