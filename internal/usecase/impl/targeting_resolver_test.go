package impl

import (
	"context"
	"testing"

	"pernoite/internal/domain/entity"
	mockRepo "pernoite/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resolverFixtures struct {
	resolver      *targetingResolver
	recipientRepo *mockRepo.MockRecipientRepository
	tokenRepo     *mockRepo.MockTokenRepository
}

func createTestTargetingResolver(t *testing.T) resolverFixtures {
	recipientRepo := mockRepo.NewMockRecipientRepository(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)

	return resolverFixtures{
		resolver:      newTargetingResolver(recipientRepo, tokenRepo),
		recipientRepo: recipientRepo,
		tokenRepo:     tokenRepo,
	}
}

func TestTargetingResolver_Resolve_UsersBranch(t *testing.T) {
	fx := createTestTargetingResolver(t)

	ctx := context.Background()
	userID := uuid.New()
	recipient := &entity.Recipient{UserID: userID}

	fx.recipientRepo.EXPECT().
		FindRecipientsByIDs(ctx, []uuid.UUID{userID}).
		Return([]*entity.Recipient{recipient}, nil)

	aud, err := fx.resolver.resolve(ctx, entity.TargetUsers([]uuid.UUID{userID}))
	require.NoError(t, err)
	assert.Len(t, aud.recipients, 1)
	assert.Empty(t, aud.guestTokens)
	assert.False(t, aud.empty())
}

func TestTargetingResolver_Resolve_RoleBranch(t *testing.T) {
	fx := createTestTargetingResolver(t)

	ctx := context.Background()

	fx.recipientRepo.EXPECT().
		FindRecipientsByRole(ctx, entity.RoleOwner).
		Return([]*entity.Recipient{{UserID: uuid.New()}}, nil)

	aud, err := fx.resolver.resolve(ctx, entity.TargetRole(entity.RoleOwner))
	require.NoError(t, err)
	assert.Len(t, aud.recipients, 1)
}

func TestTargetingResolver_Resolve_MotelBranch(t *testing.T) {
	fx := createTestTargetingResolver(t)

	ctx := context.Background()
	motelID := uuid.New()

	fx.recipientRepo.EXPECT().
		FindRecipientsByMotelFavorites(ctx, motelID).
		Return(nil, nil)

	aud, err := fx.resolver.resolve(ctx, entity.TargetMotel(motelID))
	require.NoError(t, err)
	assert.True(t, aud.empty())
}

func TestTargetingResolver_Resolve_BroadcastIncludesGuestsOnlyWhenAsked(t *testing.T) {
	fx := createTestTargetingResolver(t)

	ctx := context.Background()
	recipient := &entity.Recipient{UserID: uuid.New()}

	fx.recipientRepo.EXPECT().
		FindAllRecipients(ctx).
		Return([]*entity.Recipient{recipient}, nil).
		Twice()
	fx.tokenRepo.EXPECT().
		FindActiveGuestTokens(ctx).
		Return([]*entity.PushToken{{ID: uuid.New(), Token: "ExponentPushToken[guest]"}}, nil).
		Once()

	withGuests, err := fx.resolver.resolve(ctx, entity.Broadcast(true))
	require.NoError(t, err)
	assert.Len(t, withGuests.guestTokens, 1)

	// Without the flag the guest token query must not run at all; the Once
	// expectation above enforces that.
	withoutGuests, err := fx.resolver.resolve(ctx, entity.Broadcast(false))
	require.NoError(t, err)
	assert.Empty(t, withoutGuests.guestTokens)
}

func TestTargetingResolver_Resolve_DeduplicatesRecipients(t *testing.T) {
	fx := createTestTargetingResolver(t)

	ctx := context.Background()
	userID := uuid.New()
	other := uuid.New()

	fx.recipientRepo.EXPECT().
		FindRecipientsByIDs(ctx, []uuid.UUID{userID, userID, other}).
		Return([]*entity.Recipient{
			{UserID: userID},
			{UserID: userID},
			{UserID: other},
		}, nil)

	aud, err := fx.resolver.resolve(ctx, entity.TargetUsers([]uuid.UUID{userID, userID, other}))
	require.NoError(t, err)
	require.Len(t, aud.recipients, 2)
	assert.Equal(t, userID, aud.recipients[0].UserID)
	assert.Equal(t, other, aud.recipients[1].UserID)
}

func TestTargetingResolver_Resolve_UnknownKindErrors(t *testing.T) {
	fx := createTestTargetingResolver(t)

	aud, err := fx.resolver.resolve(context.Background(), entity.Targeting{Kind: "carrier-pigeon"})
	assert.Error(t, err)
	assert.Nil(t, aud)
	assert.Contains(t, err.Error(), "unknown targeting kind")
}

func TestTargetingResolver_Resolve_RepositoryErrorPropagates(t *testing.T) {
	fx := createTestTargetingResolver(t)

	ctx := context.Background()

	fx.recipientRepo.EXPECT().
		FindAllRecipients(ctx).
		Return(nil, errors.New("connection reset"))

	aud, err := fx.resolver.resolve(ctx, entity.Broadcast(true))
	assert.Error(t, err)
	assert.Nil(t, aud)
	assert.Contains(t, err.Error(), "failed to resolve targeting")
}
