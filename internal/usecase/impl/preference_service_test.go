package impl

import (
	"context"
	"testing"

	"pernoite/internal/domain/entity"
	mockRepo "pernoite/internal/mocks/repository"
	"pernoite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type preferenceFixtures struct {
	service        usecase.PreferenceUsecase
	preferenceRepo *mockRepo.MockPreferenceRepository
}

func createTestPreferenceService(t *testing.T) preferenceFixtures {
	preferenceRepo := mockRepo.NewMockPreferenceRepository(t)

	return preferenceFixtures{
		service:        NewPreferenceService(newTestLogger(), preferenceRepo),
		preferenceRepo: preferenceRepo,
	}
}

func TestPreferenceService_GetPreferences_EnsuresDefaults(t *testing.T) {
	fx := createTestPreferenceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.preferenceRepo.EXPECT().
		EnsurePreferences(ctx, userID).
		Return(entity.DefaultNotificationPreferences(userID), nil)

	prefs, err := fx.service.GetPreferences(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, prefs.UserID)
	assert.True(t, prefs.EnableNotifications)
	assert.True(t, prefs.NotifyNewPromos)
}

func TestPreferenceService_UpdatePreferences_AppliesOnlyProvidedSwitches(t *testing.T) {
	fx := createTestPreferenceService(t)

	ctx := context.Background()
	userID := uuid.New()
	disabled := false

	fx.preferenceRepo.EXPECT().
		EnsurePreferences(ctx, userID).
		Return(entity.DefaultNotificationPreferences(userID), nil)
	fx.preferenceRepo.EXPECT().
		UpdatePreferences(ctx, mock.AnythingOfType("*entity.NotificationPreferences")).
		RunAndReturn(func(_ context.Context, prefs *entity.NotificationPreferences) error {
			assert.False(t, prefs.EnableAdvertisingPush)
			assert.False(t, prefs.NotifyNewPromos)
			// Untouched switches keep their current value.
			assert.True(t, prefs.EnablePush)
			assert.True(t, prefs.NotifyContactMessages)

			return nil
		})

	prefs, err := fx.service.UpdatePreferences(ctx, userID, &usecase.PreferenceUpdate{
		EnableAdvertisingPush: &disabled,
		NotifyNewPromos:       &disabled,
	})
	require.NoError(t, err)
	assert.False(t, prefs.EnableAdvertisingPush)
	assert.True(t, prefs.EnableSecurityPush)
}

func TestPreferenceService_UpdatePreferences_PersistFailurePropagates(t *testing.T) {
	fx := createTestPreferenceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.preferenceRepo.EXPECT().
		EnsurePreferences(ctx, userID).
		Return(entity.DefaultNotificationPreferences(userID), nil)
	fx.preferenceRepo.EXPECT().
		UpdatePreferences(ctx, mock.AnythingOfType("*entity.NotificationPreferences")).
		Return(errors.New("connection reset"))

	prefs, err := fx.service.UpdatePreferences(ctx, userID, &usecase.PreferenceUpdate{})
	assert.Error(t, err)
	assert.Nil(t, prefs)
	assert.Contains(t, err.Error(), "failed to update preferences")
}
