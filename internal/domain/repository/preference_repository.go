// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pernoite/internal/domain/entity"
	"pernoite/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for preference persistence.
var (
	// ErrPreferencesNotFound is returned when a user has no preference row.
	ErrPreferencesNotFound = errors.New("notification preferences not found")
)

// PreferenceRepository defines the interface for notification-preference database operations.
type PreferenceRepository interface {
	// FindPreferencesByUser retrieves a user's preference row.
	// Returns ErrPreferencesNotFound when the user has never saved one.
	FindPreferencesByUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreferences, error)

	// EnsurePreferences retrieves the preference row, creating it with
	// all-enabled defaults when absent. Absence of a row must never read as
	// "everything disabled".
	EnsurePreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreferences, error)

	// UpdatePreferences persists changed switches for an existing row.
	UpdatePreferences(ctx context.Context, prefs *entity.NotificationPreferences) error
}
