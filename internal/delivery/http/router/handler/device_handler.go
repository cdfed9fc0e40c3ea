package handler

import (
	"log/slog"
	"net/http"

	"pernoite/internal/delivery/http/response"
	"pernoite/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderXUserID carries the authenticated user ID injected by the upstream
// gateway. Requests without it act on behalf of a guest session where that
// is meaningful, and are rejected otherwise.
const HeaderXUserID = "X-User-Id"

// DeviceHandler holds dependencies for push-token handlers
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterTokenRequest represents the request body for registering a push token
type RegisterTokenRequest struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

// RegisterToken handles registering a device token. Without an X-User-Id
// header the token is registered as a guest device.
func (h *DeviceHandler) RegisterToken(c echo.Context) error {
	var req RegisterTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	userID, ok, err := optionalUserID(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid X-User-Id header")
	}

	info := &usecase.TokenInfo{
		Token:    req.Token,
		Platform: req.Platform,
	}
	if ok {
		info.UserID = &userID
	}

	token, err := h.uc.RegisterToken(c.Request().Context(), info)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, token)
}

// DeactivateTokenRequest represents the request body for deactivating a push token
type DeactivateTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// DeactivateToken handles marking a token inactive
func (h *DeviceHandler) DeactivateToken(c echo.Context) error {
	var req DeactivateTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.uc.DeactivateToken(c.Request().Context(), req.Token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Token deactivated successfully"})
}

// GetUserTokens handles retrieving the calling user's active tokens
func (h *DeviceHandler) GetUserTokens(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	tokens, err := h.uc.GetUserTokens(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tokens)
}

// optionalUserID reads the X-User-Id header when present
func optionalUserID(c echo.Context) (uuid.UUID, bool, error) {
	headerVal := c.Request().Header.Get(HeaderXUserID)
	if headerVal == "" {
		return uuid.Nil, false, nil
	}

	userID, err := uuid.Parse(headerVal)
	if err != nil {
		return uuid.Nil, false, errors.WithStack(err)
	}

	return userID, true, nil
}

// requireUserID reads the X-User-Id header, rejecting requests without one
func requireUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok, err := optionalUserID(c)
	if err != nil {
		return uuid.Nil, response.BadRequest(c, "VALIDATION_ERROR", "Invalid X-User-Id header")
	}
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "UNAUTHORIZED", "Missing X-User-Id header")
	}

	return userID, nil
}
