package usecase

import (
	"context"

	"pernoite/internal/domain/entity"

	"github.com/google/uuid"
)

// PreferenceUpdate carries the switches a user may change. Nil fields are left
// untouched so partial updates do not reset other switches.
type PreferenceUpdate struct {
	EnableNotifications    *bool `json:"enable_notifications"`
	EnablePush             *bool `json:"enable_push"`
	EnableAdvertisingPush  *bool `json:"enable_advertising_push"`
	EnableSecurityPush     *bool `json:"enable_security_push"`
	EnableMaintenancePush  *bool `json:"enable_maintenance_push"`
	NotifyContactMessages  *bool `json:"notify_contact_messages"`
	NotifyNewProspects     *bool `json:"notify_new_prospects"`
	NotifyPaymentReminders *bool `json:"notify_payment_reminders"`
	NotifyMotelApprovals   *bool `json:"notify_motel_approvals"`
	NotifyNewPromos        *bool `json:"notify_new_promos"`
}

// PreferenceUsecase defines notification-preference management use cases.
type PreferenceUsecase interface {
	// GetPreferences retrieves a user's preferences, creating the all-enabled
	// default row when the user has none yet.
	GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreferences, error)

	// UpdatePreferences applies the non-nil switches and returns the result.
	UpdatePreferences(ctx context.Context, userID uuid.UUID, update *PreferenceUpdate) (*entity.NotificationPreferences, error)
}
