package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDefaultNotificationPreferences_AllEnabled(t *testing.T) {
	userID := uuid.New()
	prefs := DefaultNotificationPreferences(userID)

	assert.Equal(t, userID, prefs.UserID)
	assert.True(t, prefs.EnableNotifications)
	assert.True(t, prefs.EnablePush)
	assert.True(t, prefs.EnableAdvertisingPush)
	assert.True(t, prefs.EnableSecurityPush)
	assert.True(t, prefs.EnableMaintenancePush)
	assert.True(t, prefs.NotifyContactMessages)
	assert.True(t, prefs.NotifyNewProspects)
	assert.True(t, prefs.NotifyPaymentReminders)
	assert.True(t, prefs.NotifyMotelApprovals)
	assert.True(t, prefs.NotifyNewPromos)
}

func TestNotificationPreferences_PushEnabled(t *testing.T) {
	prefs := DefaultNotificationPreferences(uuid.New())
	assert.True(t, prefs.PushEnabled())

	prefs.EnablePush = false
	assert.False(t, prefs.PushEnabled())

	prefs.EnablePush = true
	prefs.EnableNotifications = false
	assert.False(t, prefs.PushEnabled())
}
