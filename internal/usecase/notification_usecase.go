package usecase

import (
	"context"
	"time"

	"pernoite/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateNotificationInput carries the caller-supplied fields of a new
// scheduled notification. Targeting fields follow the strict priority
// explicit users > role > motel > broadcast; only the highest-priority
// non-empty field is honored.
type CreateNotificationInput struct {
	Title        string         `json:"title"`
	Body         string         `json:"body"`
	Data         map[string]any `json:"data"`
	Category     string         `json:"category"`
	ScheduledFor *time.Time     `json:"scheduled_for"` // Nil means due immediately.
	UserIDs      []uuid.UUID    `json:"user_ids"`
	Role         string         `json:"role"`
	MotelID      *uuid.UUID     `json:"motel_id"`
	SendNow      bool           `json:"send_now"` // Process inline before returning.
}

// SweepResult aggregates one sweep run over due notifications.
type SweepResult struct {
	Processed   int `json:"processed"`
	TotalSent   int `json:"total_sent"`
	TotalFailed int `json:"total_failed"`
}

// NotificationUsecase defines the scheduled-notification lifecycle use cases.
type NotificationUsecase interface {
	// CreateNotification persists a new scheduled notification. When input.SendNow
	// is set, the processing path runs inline before returning; delivery problems
	// never fail creation and are only visible through the stored counters.
	CreateNotification(ctx context.Context, input *CreateNotificationInput) (*entity.ScheduledNotification, error)

	// ProcessNotification resolves, filters and delivers one notification to its
	// terminal state. Idempotent: a notification already sent returns its stored
	// counters without re-resolving or touching the gateway.
	ProcessNotification(ctx context.Context, id uuid.UUID) (*entity.DeliveryResult, error)

	// SweepDueNotifications claims and processes a bounded batch of due, unsent
	// notifications. A failure in one notification is recorded on that row and
	// never aborts the rest of the sweep.
	SweepDueNotifications(ctx context.Context) (*SweepResult, error)

	// GetNotification retrieves a notification with its stored counters.
	GetNotification(ctx context.Context, id uuid.UUID) (*entity.ScheduledNotification, error)

	// ListNotifications retrieves notifications newest first.
	ListNotifications(ctx context.Context, limit, offset int) ([]*entity.ScheduledNotification, error)
}
