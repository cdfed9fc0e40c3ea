// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pernoite/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	PreferenceHandler   *handler.PreferenceHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	notificationHandler *handler.NotificationHandler
	deviceHandler       *handler.DeviceHandler
	preferenceHandler   *handler.PreferenceHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		notificationHandler: params.NotificationHandler,
		deviceHandler:       params.DeviceHandler,
		preferenceHandler:   params.PreferenceHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Authentication lives at the upstream gateway; handlers trust the
// X-User-Id header it injects.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Scheduled notification administration
	notificationGroup := e.Group("/notifications")
	{
		notificationGroup.POST("", r.notificationHandler.CreateNotification)
		notificationGroup.GET("", r.notificationHandler.ListNotifications)
		notificationGroup.GET("/:id", r.notificationHandler.GetNotification)
		notificationGroup.POST("/:id/process", r.notificationHandler.ProcessNotification)
	}

	// Device token management
	deviceGroup := e.Group("/devices")
	{
		deviceGroup.POST("/tokens", r.deviceHandler.RegisterToken)
		deviceGroup.DELETE("/tokens", r.deviceHandler.DeactivateToken)
		deviceGroup.GET("/tokens", r.deviceHandler.GetUserTokens)
	}

	// Notification preferences for the calling user
	preferenceGroup := e.Group("/preferences")
	{
		preferenceGroup.GET("/me", r.preferenceHandler.GetPreferences)
		preferenceGroup.PATCH("/me", r.preferenceHandler.UpdatePreferences)
	}
}
