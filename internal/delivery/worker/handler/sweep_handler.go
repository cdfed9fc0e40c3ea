// Package handler contains the worker endpoints driven by the external cron.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "pernoite/internal/delivery/context"
	"pernoite/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SweepHandler handles cron-triggered sweeps over due notifications
type SweepHandler struct {
	logger *slog.Logger
	uc     usecase.NotificationUsecase
}

// SweepHandlerParams holds dependencies for the SweepHandler
type SweepHandlerParams struct {
	fx.In

	Logger *slog.Logger
	Uc     usecase.NotificationUsecase
}

// NewSweepHandler creates a new sweep handler
func NewSweepHandler(params SweepHandlerParams) *SweepHandler {
	return &SweepHandler{
		logger: params.Logger,
		uc:     params.Uc,
	}
}

// HandleSweep processes one bounded batch of due notifications. The endpoint
// is safe to trigger concurrently or repeatedly: the conditional claim inside
// the usecase guarantees each notification is delivered at most once.
func (h *SweepHandler) HandleSweep(c echo.Context) error {
	ctx := c.Request().Context()
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	result, err := h.uc.SweepDueNotifications(ctx)
	if err != nil {
		reqLogger.Error("[Worker] Sweep failed", slog.Any("error", err))

		// Let the cron retry; nothing was claimed if listing failed.
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, result)
}
