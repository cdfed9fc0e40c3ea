package usecase

import (
	"context"

	"pernoite/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenInfo represents a push token registration request. A nil UserID
// registers a guest device.
type TokenInfo struct {
	Token    string     `json:"token"`
	Platform string     `json:"platform"`
	UserID   *uuid.UUID `json:"user_id"`
}

// DeviceUsecase defines push-token management use cases.
type DeviceUsecase interface {
	// RegisterToken registers a device token for a user or guest session.
	RegisterToken(ctx context.Context, info *TokenInfo) (*entity.PushToken, error)

	// DeactivateToken marks a token inactive so it is never targeted again.
	DeactivateToken(ctx context.Context, token string) error

	// GetUserTokens retrieves all active tokens owned by a user.
	GetUserTokens(ctx context.Context, userID uuid.UUID) ([]*entity.PushToken, error)
}
