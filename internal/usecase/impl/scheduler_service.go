package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pernoite/config"
	"pernoite/internal/domain/entity"
	"pernoite/internal/domain/repository"
	"pernoite/internal/domain/service"
	"pernoite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Terminal error messages for runs that deliver nothing.
const (
	msgNoRecipients = "no recipients matched targeting"
	msgAllOptedOut  = "all recipients opted out"
)

// dataKeyIncludeGuests is the payload flag that widens a broadcast to guest
// devices. Only honored when no targeting field is set.
const dataKeyIncludeGuests = "includeGuests"

// schedulerService owns the scheduled-notification lifecycle: create, claim,
// resolve, filter, deliver, finalize. Both the immediate-send path and the
// sweep share processNotification, so neither may assume it is the only
// caller; the conditional claim decides who delivers.
type schedulerService struct {
	logger           *slog.Logger
	notificationRepo repository.NotificationRepository
	resolver         *targetingResolver
	filter           preferenceFilter
	executor         *deliveryExecutor
	sweepBatchSize   int
}

// NewSchedulerService creates the scheduled-notification usecase instance.
func NewSchedulerService(
	logger *slog.Logger,
	cfg *config.Config,
	notificationRepo repository.NotificationRepository,
	recipientRepo repository.RecipientRepository,
	tokenRepo repository.TokenRepository,
	gateway service.PushGateway,
) usecase.NotificationUsecase {
	return &schedulerService{
		logger:           logger,
		notificationRepo: notificationRepo,
		resolver:         newTargetingResolver(recipientRepo, tokenRepo),
		executor:         newDeliveryExecutor(gateway, tokenRepo, logger, cfg.Push.BatchSize),
		sweepBatchSize:   cfg.Sweep.BatchSize,
	}
}

// CreateNotification persists the notification and, for send-now requests,
// runs the processing path inline. Delivery problems never fail creation; the
// outcome is only visible through the stored counters.
func (s *schedulerService) CreateNotification(ctx context.Context, input *usecase.CreateNotificationInput) (*entity.ScheduledNotification, error) {
	scheduledFor := time.Now()
	if input.ScheduledFor != nil {
		scheduledFor = *input.ScheduledFor
	}

	notification := &entity.ScheduledNotification{
		ID:           uuid.New(),
		Title:        input.Title,
		Body:         input.Body,
		Data:         input.Data,
		Category:     entity.ParseCategory(input.Category),
		ScheduledFor: scheduledFor,
		Targeting: entity.ResolveTargeting(
			input.UserIDs,
			entity.Role(input.Role),
			input.MotelID,
			includeGuestsFlag(input.Data),
		),
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	if input.SendNow {
		result, err := s.ProcessNotification(ctx, notification.ID)
		if err != nil {
			s.logger.Error("inline processing failed after create",
				slog.String("notification_id", notification.ID.String()),
				slog.Any("error", err),
			)

			return notification, nil
		}
		applyResult(notification, result)
	}

	return notification, nil
}

// ProcessNotification drives one notification to its terminal state.
// Idempotent: an already-sent notification returns its stored counters and
// performs no resolution and no gateway call. Concurrent callers race on the
// conditional claim; the loser short-circuits to the stored result.
func (s *schedulerService) ProcessNotification(ctx context.Context, id uuid.UUID) (*entity.DeliveryResult, error) {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load notification")
	}

	if notification.Sent {
		return storedResult(notification), nil
	}

	claimed, err := s.notificationRepo.ClaimNotification(ctx, id, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to claim notification")
	}
	if !claimed {
		// Another caller won the claim; read back what it persisted.
		notification, err = s.notificationRepo.FindNotificationByID(ctx, id)
		if err != nil {
			return nil, errors.Wrap(err, "failed to reload claimed notification")
		}

		return storedResult(notification), nil
	}

	result := s.executeClaimed(ctx, notification)

	if err := s.notificationRepo.FinalizeNotification(ctx, id, result); err != nil {
		// The claim already made the state terminal; counters stay zero.
		s.logger.Error("failed to finalize notification",
			slog.String("notification_id", id.String()),
			slog.Any("error", err),
		)
	}

	return result, nil
}

// executeClaimed runs resolve, filter and deliver for a notification this
// caller has claimed. Never returns an error: anything unexpected, panics
// included, collapses into a terminal result carrying the error text so one
// bad notification cannot abort a sweep.
func (s *schedulerService) executeClaimed(ctx context.Context, notification *entity.ScheduledNotification) (result *entity.DeliveryResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic while processing notification",
				slog.String("notification_id", notification.ID.String()),
				slog.Any("panic", r),
			)
			result = &entity.DeliveryResult{ErrorMessage: fmt.Sprintf("processing panic: %v", r)}
		}
	}()

	aud, err := s.resolver.resolve(ctx, notification.Targeting)
	if err != nil {
		return &entity.DeliveryResult{ErrorMessage: err.Error()}
	}

	tokens, skipped := s.eligibleTokens(aud, notification.Category)

	if len(tokens) == 0 {
		msg := msgNoRecipients
		if skipped > 0 {
			msg = msgAllOptedOut
		}

		return &entity.DeliveryResult{TotalSkipped: skipped, ErrorMessage: msg}
	}

	sent, failed, errMsg := s.executor.deliver(ctx, tokens, &pushContent{
		Title: notification.Title,
		Body:  notification.Body,
		Data:  notification.Data,
	})

	return &entity.DeliveryResult{
		TotalSent:    sent,
		TotalFailed:  failed,
		TotalSkipped: skipped,
		ErrorMessage: errMsg,
	}
}

// eligibleTokens applies the preference filter per recipient and flattens the
// survivors into a deduplicated token list. Guests always pass. Decisions are
// per user, but the skipped tally counts the tokens those decisions cost so
// aggregate counters stay accurate.
func (s *schedulerService) eligibleTokens(aud *audience, category entity.Category) (tokens []string, skipped int) {
	seen := make(map[string]struct{})
	add := func(token string) {
		if _, ok := seen[token]; ok {
			return
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}

	for _, recipient := range aud.recipients {
		if !s.filter.includeForCategory(recipient.Preferences, category) {
			skipped += len(recipient.Tokens)

			continue
		}
		for _, t := range recipient.Tokens {
			add(t.Token)
		}
	}

	for _, t := range aud.guestTokens {
		add(t.Token)
	}

	return tokens, skipped
}

// SweepDueNotifications claims and processes a bounded batch of due, unsent
// notifications. Failures are isolated per notification.
func (s *schedulerService) SweepDueNotifications(ctx context.Context) (*usecase.SweepResult, error) {
	due, err := s.notificationRepo.ListDueNotifications(ctx, time.Now(), s.sweepBatchSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list due notifications")
	}

	sweep := &usecase.SweepResult{}
	for _, notification := range due {
		result, err := s.ProcessNotification(ctx, notification.ID)
		if err != nil {
			s.logger.Error("sweep skipped notification",
				slog.String("notification_id", notification.ID.String()),
				slog.Any("error", err),
			)

			continue
		}

		sweep.Processed++
		sweep.TotalSent += result.TotalSent
		sweep.TotalFailed += result.TotalFailed
	}

	s.logger.Info("sweep completed",
		slog.Int("due", len(due)),
		slog.Int("processed", sweep.Processed),
		slog.Int("sent", sweep.TotalSent),
		slog.Int("failed", sweep.TotalFailed),
	)

	return sweep, nil
}

// GetNotification retrieves a notification with its stored counters.
func (s *schedulerService) GetNotification(ctx context.Context, id uuid.UUID) (*entity.ScheduledNotification, error) {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load notification")
	}

	return notification, nil
}

// ListNotifications retrieves notifications newest first.
func (s *schedulerService) ListNotifications(ctx context.Context, limit, offset int) ([]*entity.ScheduledNotification, error) {
	return s.notificationRepo.ListNotifications(ctx, limit, offset)
}

// includeGuestsFlag reads the broadcast guest flag out of the free-form payload.
func includeGuestsFlag(data map[string]any) bool {
	if data == nil {
		return false
	}
	flag, _ := data[dataKeyIncludeGuests].(bool)

	return flag
}

// storedResult rebuilds a result from a terminal notification row.
func storedResult(n *entity.ScheduledNotification) *entity.DeliveryResult {
	return &entity.DeliveryResult{
		TotalSent:    n.TotalSent,
		TotalFailed:  n.TotalFailed,
		TotalSkipped: n.TotalSkipped,
		ErrorMessage: n.ErrorMessage,
	}
}

// applyResult copies terminal counters onto the in-memory entity.
func applyResult(n *entity.ScheduledNotification, result *entity.DeliveryResult) {
	now := time.Now()
	n.Sent = true
	n.SentAt = &now
	n.TotalSent = result.TotalSent
	n.TotalFailed = result.TotalFailed
	n.TotalSkipped = result.TotalSkipped
	n.ErrorMessage = result.ErrorMessage
}
