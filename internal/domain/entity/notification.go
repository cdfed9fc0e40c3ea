// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies a notification for preference filtering. Advertising
// notifications can be suppressed per user; security and maintenance cannot.
type Category string

const (
	// CategoryAdvertising indicates promotional content. This is the default category.
	CategoryAdvertising Category = "advertising"
	// CategorySecurity indicates security-relevant content (password changes, logins).
	CategorySecurity Category = "security"
	// CategoryMaintenance indicates operational announcements (downtime, migrations).
	CategoryMaintenance Category = "maintenance"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a known value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryAdvertising, CategorySecurity, CategoryMaintenance:
		return true
	default:
		return false
	}
}

// Suppressible reports whether a user opt-out preference may suppress this
// category. Unrecognized categories behave like advertising.
func (c Category) Suppressible() bool {
	switch c {
	case CategorySecurity, CategoryMaintenance:
		return false
	default:
		return true
	}
}

// ParseCategory normalizes a wire-visible category string, defaulting to
// advertising for empty or unrecognized values.
func ParseCategory(s string) Category {
	c := Category(s)
	if !c.IsValid() {
		return CategoryAdvertising
	}

	return c
}

// ScheduledNotification represents a unit of outbound messaging intent,
// delivered immediately or once its scheduled time has passed.
type ScheduledNotification struct {
	ID           uuid.UUID      `json:"id"`            // The Global Unique Identifier (GUID) for the notification.
	Title        string         `json:"title"`         // The push notification title.
	Body         string         `json:"body"`          // The push notification body text.
	Data         map[string]any `json:"data"`          // Free-form payload forwarded to the device.
	Category     Category       `json:"category"`      // Business category controlling preference filtering.
	ScheduledFor time.Time      `json:"scheduled_for"` // When the notification becomes due.
	Targeting    Targeting      `json:"targeting"`     // Which users are candidates for delivery.
	Sent         bool           `json:"sent"`          // Terminal state flag; set exactly once.
	SentAt       *time.Time     `json:"sent_at"`       // Timestamp of when processing reached terminal state.
	TotalSent    int            `json:"total_sent"`    // Number of tokens delivered successfully.
	TotalFailed  int            `json:"total_failed"`  // Number of tokens that failed delivery.
	TotalSkipped int            `json:"total_skipped"` // Number of tokens excluded by user preferences.
	ErrorMessage string         `json:"error_message"` // Explanatory text for empty or failed runs.
	CreatedAt    time.Time      `json:"created_at"`    // Timestamp of when this record was created.
	UpdatedAt    time.Time      `json:"updated_at"`    // Timestamp of the last modification.
}

// Due reports whether the notification is eligible for processing at the given time.
func (n *ScheduledNotification) Due(now time.Time) bool {
	return !n.Sent && !n.ScheduledFor.After(now)
}

// DeliveryResult aggregates the per-recipient outcomes of one processing run.
type DeliveryResult struct {
	TotalSent    int    `json:"total_sent"`
	TotalFailed  int    `json:"total_failed"`
	TotalSkipped int    `json:"total_skipped"`
	ErrorMessage string `json:"error_message,omitempty"`
}
