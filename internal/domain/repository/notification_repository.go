// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"pernoite/internal/domain/entity"
	"pernoite/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a scheduled notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for scheduled-notification database operations.
type NotificationRepository interface {
	// CreateNotification persists a new scheduled notification.
	CreateNotification(ctx context.Context, notification *entity.ScheduledNotification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.ScheduledNotification, error)

	// ListNotifications retrieves notifications ordered by creation time, newest first.
	ListNotifications(ctx context.Context, limit, offset int) ([]*entity.ScheduledNotification, error)

	// ListDueNotifications retrieves up to limit notifications with
	// sent = false and scheduled_for <= now.
	ListDueNotifications(ctx context.Context, now time.Time, limit int) ([]*entity.ScheduledNotification, error)

	// ClaimNotification atomically transitions sent from false to true and
	// stamps sentAt. Returns true when this caller won the claim; false when
	// the notification was already sent (or concurrently claimed). Only the
	// winner may deliver and finalize.
	ClaimNotification(ctx context.Context, id uuid.UUID, sentAt time.Time) (bool, error)

	// FinalizeNotification writes the aggregated counters and error message
	// for a previously claimed notification.
	FinalizeNotification(ctx context.Context, id uuid.UUID, result *entity.DeliveryResult) error
}
