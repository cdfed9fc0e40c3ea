package handler

import (
	"log/slog"
	"net/http"

	"pernoite/internal/delivery/http/response"
	"pernoite/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PreferenceHandler holds dependencies for notification-preference handlers
type PreferenceHandler struct {
	uc     usecase.PreferenceUsecase
	logger *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler
func NewPreferenceHandler(uc usecase.PreferenceUsecase, logger *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetPreferences handles retrieving the calling user's preferences. A user who
// never saved preferences gets the all-enabled defaults.
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	prefs, err := h.uc.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs)
}

// UpdatePreferences handles a partial preference update; omitted switches keep
// their current value.
func (h *PreferenceHandler) UpdatePreferences(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var update usecase.PreferenceUpdate
	if err := c.Bind(&update); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}

	prefs, err := h.uc.UpdatePreferences(c.Request().Context(), userID, &update)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs)
}
