// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pernoite/internal/domain/entity"

	"github.com/google/uuid"
)

// RecipientRepository resolves targeting descriptors into delivery candidates.
// Every method returns active users only, each with their active tokens and
// their preference row (nil when none exists) loaded in a bounded number of
// bulk queries so a sweep never degrades into N+1 lookups.
type RecipientRepository interface {
	// FindRecipientsByIDs retrieves recipients for an explicit user-id list.
	// Unknown or inactive IDs are silently dropped.
	FindRecipientsByIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.Recipient, error)

	// FindRecipientsByRole retrieves all active users holding the given role.
	FindRecipientsByRole(ctx context.Context, role entity.Role) ([]*entity.Recipient, error)

	// FindRecipientsByMotelFavorites retrieves all users holding an active
	// favorite on the given motel.
	FindRecipientsByMotelFavorites(ctx context.Context, motelID uuid.UUID) ([]*entity.Recipient, error)

	// FindAllRecipients retrieves every active user for broadcast targeting.
	FindAllRecipients(ctx context.Context) ([]*entity.Recipient, error)
}
