package impl

import (
	"context"
	"testing"

	"pernoite/internal/domain/entity"
	"pernoite/internal/domain/service"
	mockRepo "pernoite/internal/mocks/repository"
	mockSvc "pernoite/internal/mocks/service"
	"pernoite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type directFixtures struct {
	service        usecase.DirectUsecase
	preferenceRepo *mockRepo.MockPreferenceRepository
	tokenRepo      *mockRepo.MockTokenRepository
	gateway        *mockSvc.MockPushGateway
}

func createTestDirectService(t *testing.T) directFixtures {
	preferenceRepo := mockRepo.NewMockPreferenceRepository(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	gateway := mockSvc.NewMockPushGateway(t)

	service := NewDirectService(newTestLogger(), newTestConfig(), preferenceRepo, tokenRepo, gateway)

	return directFixtures{
		service:        service,
		preferenceRepo: preferenceRepo,
		tokenRepo:      tokenRepo,
		gateway:        gateway,
	}
}

func TestDirectService_NotifyContactMessage_Delivers(t *testing.T) {
	fx := createTestDirectService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.preferenceRepo.EXPECT().
		EnsurePreferences(ctx, userID).
		Return(entity.DefaultNotificationPreferences(userID), nil)
	fx.tokenRepo.EXPECT().
		FindActiveTokensByUser(ctx, userID).
		Return([]*entity.PushToken{
			{ID: uuid.New(), UserID: &userID, Token: "ExponentPushToken[a]", Platform: "ios", IsActive: true},
		}, nil)
	fx.gateway.EXPECT().IsValidToken("ExponentPushToken[a]").Return(true)
	fx.gateway.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.PushMessage")).
		RunAndReturn(func(_ context.Context, msg *service.PushMessage) ([]service.PushOutcome, error) {
			assert.Equal(t, "New message from Ana", msg.Title)
			assert.Equal(t, "See you at eight?", msg.Body)
			assert.Equal(t, "contact_message", msg.Data["type"])

			return okOutcomes(msg.To), nil
		})

	err := fx.service.NotifyContactMessage(ctx, userID, "Ana", "See you at eight?")
	require.NoError(t, err)
}

func TestDirectService_NotifyNewPromo_SuppressedByFeatureSwitch(t *testing.T) {
	fx := createTestDirectService(t)

	ctx := context.Background()
	userID := uuid.New()

	prefs := entity.DefaultNotificationPreferences(userID)
	prefs.NotifyNewPromos = false

	// Suppression happens before token lookup; neither tokenRepo nor the
	// gateway may be touched.
	fx.preferenceRepo.EXPECT().EnsurePreferences(ctx, userID).Return(prefs, nil)

	err := fx.service.NotifyNewPromo(ctx, userID, "Motel Azul", "Half price on weekdays")
	require.NoError(t, err)
}

func TestDirectService_NotifyPaymentReminder_NoTokensIsNoop(t *testing.T) {
	fx := createTestDirectService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.preferenceRepo.EXPECT().
		EnsurePreferences(ctx, userID).
		Return(entity.DefaultNotificationPreferences(userID), nil)
	fx.tokenRepo.EXPECT().
		FindActiveTokensByUser(ctx, userID).
		Return(nil, nil)

	err := fx.service.NotifyPaymentReminder(ctx, userID, "R$ 120,00")
	require.NoError(t, err)
}

func TestDirectService_NotifyMotelApproval_RejectionBody(t *testing.T) {
	fx := createTestDirectService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.preferenceRepo.EXPECT().
		EnsurePreferences(ctx, ownerID).
		Return(entity.DefaultNotificationPreferences(ownerID), nil)
	fx.tokenRepo.EXPECT().
		FindActiveTokensByUser(ctx, ownerID).
		Return([]*entity.PushToken{
			{ID: uuid.New(), UserID: &ownerID, Token: "ExponentPushToken[o]", Platform: "android", IsActive: true},
		}, nil)
	fx.gateway.EXPECT().IsValidToken("ExponentPushToken[o]").Return(true)
	fx.gateway.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.PushMessage")).
		RunAndReturn(func(_ context.Context, msg *service.PushMessage) ([]service.PushOutcome, error) {
			assert.Equal(t, "Listing review", msg.Title)
			assert.Contains(t, msg.Body, "was not approved")

			return okOutcomes(msg.To), nil
		})

	err := fx.service.NotifyMotelApproval(ctx, ownerID, "Motel Lua", false)
	require.NoError(t, err)
}

func TestDirectService_Send_PreferenceLoadFailurePropagates(t *testing.T) {
	fx := createTestDirectService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.preferenceRepo.EXPECT().
		EnsurePreferences(ctx, ownerID).
		Return(nil, errors.New("connection reset"))

	err := fx.service.NotifyNewProspect(ctx, ownerID, "Motel Azul")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load preferences")
}

func TestDirectService_Send_GatewayFailureIsNotAnError(t *testing.T) {
	fx := createTestDirectService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.preferenceRepo.EXPECT().
		EnsurePreferences(ctx, userID).
		Return(entity.DefaultNotificationPreferences(userID), nil)
	fx.tokenRepo.EXPECT().
		FindActiveTokensByUser(ctx, userID).
		Return([]*entity.PushToken{
			{ID: uuid.New(), UserID: &userID, Token: "ExponentPushToken[a]", Platform: "ios", IsActive: true},
		}, nil)
	fx.gateway.EXPECT().IsValidToken("ExponentPushToken[a]").Return(true)
	fx.gateway.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.PushMessage")).
		Return(nil, errors.New("gateway timeout"))

	// Direct notifications are best-effort; delivery failures are logged, not
	// returned.
	err := fx.service.NotifyNewPromo(ctx, userID, "Motel Azul", "Half price")
	require.NoError(t, err)
}
