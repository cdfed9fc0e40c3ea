// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pernoite/internal/domain/entity"
	"pernoite/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for push-token persistence.
var (
	// ErrTokenNotFound is returned when a push token is not found.
	ErrTokenNotFound = errors.New("push token not found")
	// ErrDuplicateToken is returned when registering a token that already exists.
	ErrDuplicateToken = errors.New("push token already registered")
)

// TokenRepository defines the interface for push-token database operations.
type TokenRepository interface {
	// RegisterToken persists a new push token for a user or guest device.
	RegisterToken(ctx context.Context, token *entity.PushToken) error

	// FindActiveTokensByUser retrieves all active tokens owned by a user.
	FindActiveTokensByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushToken, error)

	// FindActiveGuestTokens retrieves all active tokens with no owning user.
	FindActiveGuestTokens(ctx context.Context) ([]*entity.PushToken, error)

	// DeactivateToken marks the token with the given gateway address inactive.
	// Deactivation is idempotent; the flag only ever transitions true to false.
	DeactivateToken(ctx context.Context, token string) error
}
