package usecase

import (
	"context"

	"github.com/google/uuid"
)

// DirectUsecase defines single-user notification helpers triggered by platform
// events. Each is gated by the matching feature switch in the recipient's
// preferences and delivers through the shared executor without persisting a
// ScheduledNotification row.
type DirectUsecase interface {
	// NotifyContactMessage informs a user about a new contact message.
	NotifyContactMessage(ctx context.Context, userID uuid.UUID, senderName, preview string) error

	// NotifyNewProspect informs a motel owner about a new prospect.
	NotifyNewProspect(ctx context.Context, ownerID uuid.UUID, motelName string) error

	// NotifyPaymentReminder reminds a user of a pending payment.
	NotifyPaymentReminder(ctx context.Context, userID uuid.UUID, amount string) error

	// NotifyMotelApproval informs an owner that their motel listing was approved.
	NotifyMotelApproval(ctx context.Context, ownerID uuid.UUID, motelName string, approved bool) error

	// NotifyNewPromo informs a user about a new promotion on a favorited motel.
	NotifyNewPromo(ctx context.Context, userID uuid.UUID, motelName, promoTitle string) error
}
