package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResolveTargeting_StrictPriority(t *testing.T) {
	userID := uuid.New()
	motelID := uuid.New()

	t.Run("explicit users beat everything", func(t *testing.T) {
		got := ResolveTargeting([]uuid.UUID{userID}, RoleOwner, &motelID, true)
		assert.Equal(t, TargetingUsers, got.Kind)
		assert.Equal(t, []uuid.UUID{userID}, got.UserIDs)
		assert.Empty(t, got.Role)
		assert.Nil(t, got.MotelID)
	})

	t.Run("role beats motel", func(t *testing.T) {
		got := ResolveTargeting(nil, RoleOwner, &motelID, false)
		assert.Equal(t, TargetingRole, got.Kind)
		assert.Equal(t, RoleOwner, got.Role)
		assert.Nil(t, got.MotelID)
	})

	t.Run("motel beats broadcast", func(t *testing.T) {
		got := ResolveTargeting(nil, "", &motelID, true)
		assert.Equal(t, TargetingMotel, got.Kind)
		assert.Equal(t, motelID, *got.MotelID)
		assert.False(t, got.IncludeGuests)
	})

	t.Run("nothing set falls back to broadcast", func(t *testing.T) {
		got := ResolveTargeting(nil, "", nil, true)
		assert.Equal(t, TargetingBroadcast, got.Kind)
		assert.True(t, got.IncludeGuests)
	})

	t.Run("broadcast without guests", func(t *testing.T) {
		got := ResolveTargeting(nil, "", nil, false)
		assert.Equal(t, TargetingBroadcast, got.Kind)
		assert.False(t, got.IncludeGuests)
	})
}

func TestPushToken_IsGuest(t *testing.T) {
	userID := uuid.New()

	owned := &PushToken{UserID: &userID}
	assert.False(t, owned.IsGuest())

	guest := &PushToken{}
	assert.True(t, guest.IsGuest())
}
