package impl

import (
	"context"
	"fmt"
	"log/slog"

	"pernoite/config"
	"pernoite/internal/domain/repository"
	"pernoite/internal/domain/service"
	"pernoite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// directService implements the event-triggered single-user helpers. Unlike
// scheduled notifications these leave no persistent record; a suppressed or
// token-less recipient is a silent no-op.
type directService struct {
	logger         *slog.Logger
	preferenceRepo repository.PreferenceRepository
	tokenRepo      repository.TokenRepository
	filter         preferenceFilter
	executor       *deliveryExecutor
}

// NewDirectService creates the direct-notification usecase instance.
func NewDirectService(
	logger *slog.Logger,
	cfg *config.Config,
	preferenceRepo repository.PreferenceRepository,
	tokenRepo repository.TokenRepository,
	gateway service.PushGateway,
) usecase.DirectUsecase {
	return &directService{
		logger:         logger,
		preferenceRepo: preferenceRepo,
		tokenRepo:      tokenRepo,
		executor:       newDeliveryExecutor(gateway, tokenRepo, logger, cfg.Push.BatchSize),
	}
}

// NotifyContactMessage informs a user about a new contact message.
func (s *directService) NotifyContactMessage(ctx context.Context, userID uuid.UUID, senderName, preview string) error {
	return s.send(ctx, userID, featureContactMessages, &pushContent{
		Title: fmt.Sprintf("New message from %s", senderName),
		Body:  preview,
		Data:  map[string]any{"type": "contact_message"},
	})
}

// NotifyNewProspect informs a motel owner about a new prospect.
func (s *directService) NotifyNewProspect(ctx context.Context, ownerID uuid.UUID, motelName string) error {
	return s.send(ctx, ownerID, featureNewProspects, &pushContent{
		Title: "New prospect",
		Body:  fmt.Sprintf("Someone is interested in %s", motelName),
		Data:  map[string]any{"type": "new_prospect"},
	})
}

// NotifyPaymentReminder reminds a user of a pending payment.
func (s *directService) NotifyPaymentReminder(ctx context.Context, userID uuid.UUID, amount string) error {
	return s.send(ctx, userID, featurePaymentReminders, &pushContent{
		Title: "Payment reminder",
		Body:  fmt.Sprintf("You have a pending payment of %s", amount),
		Data:  map[string]any{"type": "payment_reminder"},
	})
}

// NotifyMotelApproval informs an owner about the review outcome of a listing.
func (s *directService) NotifyMotelApproval(ctx context.Context, ownerID uuid.UUID, motelName string, approved bool) error {
	body := fmt.Sprintf("%s was approved and is now listed", motelName)
	if !approved {
		body = fmt.Sprintf("%s was not approved; check the review notes", motelName)
	}

	return s.send(ctx, ownerID, featureMotelApprovals, &pushContent{
		Title: "Listing review",
		Body:  body,
		Data:  map[string]any{"type": "motel_approval"},
	})
}

// NotifyNewPromo informs a user about a promotion on a favorited motel.
func (s *directService) NotifyNewPromo(ctx context.Context, userID uuid.UUID, motelName, promoTitle string) error {
	return s.send(ctx, userID, featureNewPromos, &pushContent{
		Title: fmt.Sprintf("%s has a new promo", motelName),
		Body:  promoTitle,
		Data:  map[string]any{"type": "new_promo"},
	})
}

// send gates on the feature switch and delivers to the user's active tokens.
func (s *directService) send(ctx context.Context, userID uuid.UUID, feature directFeature, content *pushContent) error {
	prefs, err := s.preferenceRepo.EnsurePreferences(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load preferences")
	}

	if !s.filter.includeForFeature(prefs, feature) {
		s.logger.Debug("direct notification suppressed by preferences",
			slog.String("user_id", userID.String()),
		)

		return nil
	}

	pushTokens, err := s.tokenRepo.FindActiveTokensByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load tokens")
	}
	if len(pushTokens) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(pushTokens))
	for _, t := range pushTokens {
		tokens = append(tokens, t.Token)
	}

	sent, failed, _ := s.executor.deliver(ctx, tokens, content)
	s.logger.Info("direct notification delivered",
		slog.String("user_id", userID.String()),
		slog.Int("sent", sent),
		slog.Int("failed", failed),
	)

	return nil
}
