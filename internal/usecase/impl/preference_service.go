package impl

import (
	"context"
	"log/slog"

	"pernoite/internal/domain/entity"
	"pernoite/internal/domain/repository"
	"pernoite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// preferenceService manages user notification preferences with lazy default
// creation.
type preferenceService struct {
	logger         *slog.Logger
	preferenceRepo repository.PreferenceRepository
}

// NewPreferenceService creates the preference usecase instance.
func NewPreferenceService(logger *slog.Logger, preferenceRepo repository.PreferenceRepository) usecase.PreferenceUsecase {
	return &preferenceService{
		logger:         logger,
		preferenceRepo: preferenceRepo,
	}
}

// GetPreferences retrieves a user's preferences, creating the all-enabled
// default row when the user has none yet.
func (s *preferenceService) GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreferences, error) {
	prefs, err := s.preferenceRepo.EnsurePreferences(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load preferences")
	}

	return prefs, nil
}

// UpdatePreferences applies the non-nil switches and returns the result.
func (s *preferenceService) UpdatePreferences(ctx context.Context, userID uuid.UUID, update *usecase.PreferenceUpdate) (*entity.NotificationPreferences, error) {
	prefs, err := s.preferenceRepo.EnsurePreferences(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load preferences")
	}

	applySwitch(&prefs.EnableNotifications, update.EnableNotifications)
	applySwitch(&prefs.EnablePush, update.EnablePush)
	applySwitch(&prefs.EnableAdvertisingPush, update.EnableAdvertisingPush)
	applySwitch(&prefs.EnableSecurityPush, update.EnableSecurityPush)
	applySwitch(&prefs.EnableMaintenancePush, update.EnableMaintenancePush)
	applySwitch(&prefs.NotifyContactMessages, update.NotifyContactMessages)
	applySwitch(&prefs.NotifyNewProspects, update.NotifyNewProspects)
	applySwitch(&prefs.NotifyPaymentReminders, update.NotifyPaymentReminders)
	applySwitch(&prefs.NotifyMotelApprovals, update.NotifyMotelApprovals)
	applySwitch(&prefs.NotifyNewPromos, update.NotifyNewPromos)

	if err := s.preferenceRepo.UpdatePreferences(ctx, prefs); err != nil {
		return nil, errors.Wrap(err, "failed to update preferences")
	}

	return prefs, nil
}

func applySwitch(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
