// Package handler contains the echo handlers of the admin HTTP API.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"pernoite/internal/delivery/http/response"
	"pernoite/internal/domain/repository"
	"pernoite/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for scheduled-notification handlers
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateNotificationRequest represents the request body for creating a scheduled notification
type CreateNotificationRequest struct {
	Title        string         `json:"title" validate:"required,max=255"`
	Body         string         `json:"body" validate:"required"`
	Data         map[string]any `json:"data"`
	Category     string         `json:"category"`
	ScheduledFor *time.Time     `json:"scheduled_for"`
	UserIDs      []uuid.UUID    `json:"user_ids"`
	Role         string         `json:"role"`
	MotelID      *uuid.UUID     `json:"motel_id"`
	SendNow      bool           `json:"send_now"`
}

// CreateNotification handles creating a scheduled notification. With send_now
// the notification is processed inline and the response already carries the
// delivery counters.
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var req CreateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	notification, err := h.uc.CreateNotification(c.Request().Context(), &usecase.CreateNotificationInput{
		Title:        req.Title,
		Body:         req.Body,
		Data:         req.Data,
		Category:     req.Category,
		ScheduledFor: req.ScheduledFor,
		UserIDs:      req.UserIDs,
		Role:         req.Role,
		MotelID:      req.MotelID,
		SendNow:      req.SendNow,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, notification)
}

// GetNotification handles retrieving one notification with its stored counters
func (h *NotificationHandler) GetNotification(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid notification ID")
	}

	notification, err := h.uc.GetNotification(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return response.NotFound(c, "NOTIFICATION_NOT_FOUND", "Notification not found")
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification)
}

// ListNotifications handles retrieving notifications newest first
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	limit, offset := parsePagination(c)

	notifications, err := h.uc.ListNotifications(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// ProcessNotification handles driving one notification to its terminal state.
// Safe to call repeatedly; an already-sent notification returns its stored
// counters without another delivery attempt.
func (h *NotificationHandler) ProcessNotification(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid notification ID")
	}

	result, err := h.uc.ProcessNotification(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return response.NotFound(c, "NOTIFICATION_NOT_FOUND", "Notification not found")
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// parsePagination reads limit/offset query parameters with defaults
func parsePagination(c echo.Context) (limit, offset int) {
	limit = 20
	offset = 0

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		if parsedOffset, err := strconv.Atoi(offsetStr); err == nil && parsedOffset >= 0 {
			offset = parsedOffset
		}
	}

	return limit, offset
}

// HealthCheck handles the liveness endpoint
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
