// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite links a user to a motel they marked as interesting. The engine
// consumes this relation read-only to resolve motel-favorite targeting.
type Favorite struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the favorite.
	UserID    uuid.UUID `json:"user_id"`    // The user who favorited the motel.
	MotelID   uuid.UUID `json:"motel_id"`   // The favorited motel.
	IsActive  bool      `json:"is_active"`  // Inactive favorites are ignored by targeting.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the favorite was created.
}
