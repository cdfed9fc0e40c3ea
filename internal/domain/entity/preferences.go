// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreferences holds one user's opt-out switches. A missing row is
// equivalent to everything enabled, never to everything disabled; repositories
// create this row lazily with all-enabled defaults on first check.
type NotificationPreferences struct {
	UserID              uuid.UUID `json:"user_id"`              // The user these preferences belong to.
	EnableNotifications bool      `json:"enable_notifications"` // Global kill switch.
	EnablePush          bool      `json:"enable_push"`          // Push channel switch.

	// Per-category switches for scheduled notifications.
	EnableAdvertisingPush bool `json:"enable_advertising_push"`
	EnableSecurityPush    bool `json:"enable_security_push"`
	EnableMaintenancePush bool `json:"enable_maintenance_push"`

	// Feature-specific switches used by the direct notification helpers.
	NotifyContactMessages  bool `json:"notify_contact_messages"`
	NotifyNewProspects     bool `json:"notify_new_prospects"`
	NotifyPaymentReminders bool `json:"notify_payment_reminders"`
	NotifyMotelApprovals   bool `json:"notify_motel_approvals"`
	NotifyNewPromos        bool `json:"notify_new_promos"`

	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// DefaultNotificationPreferences returns the all-enabled defaults written when
// a user's preference row is created lazily.
func DefaultNotificationPreferences(userID uuid.UUID) *NotificationPreferences {
	return &NotificationPreferences{
		UserID:                 userID,
		EnableNotifications:    true,
		EnablePush:             true,
		EnableAdvertisingPush:  true,
		EnableSecurityPush:     true,
		EnableMaintenancePush:  true,
		NotifyContactMessages:  true,
		NotifyNewProspects:     true,
		NotifyPaymentReminders: true,
		NotifyMotelApprovals:   true,
		NotifyNewPromos:        true,
	}
}

// PushEnabled reports whether push delivery is possible at all for this user.
func (p *NotificationPreferences) PushEnabled() bool {
	return p.EnableNotifications && p.EnablePush
}
