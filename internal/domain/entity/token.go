// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushToken represents one device's delivery address at the push gateway.
type PushToken struct {
	ID        uuid.UUID  `json:"id"`         // The Global Unique Identifier (GUID) for the token record.
	UserID    *uuid.UUID `json:"user_id"`    // Owning user. Nil means the device belongs to a guest session.
	Token     string     `json:"token"`      // Gateway address, e.g. "ExponentPushToken[xxx]".
	Platform  string     `json:"platform"`   // Device platform (ios, android).
	IsActive  bool       `json:"is_active"`  // False once the gateway reports the device unregistered.
	CreatedAt time.Time  `json:"created_at"` // Timestamp of when this token was registered.
	UpdatedAt time.Time  `json:"updated_at"` // Timestamp of the last modification.
}

// IsGuest reports whether the token has no owning user. Guest devices bypass
// preference filtering since no preference row can exist for them.
func (t *PushToken) IsGuest() bool {
	return t.UserID == nil
}
