package impl

import (
	"testing"

	"pernoite/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPreferenceFilter_IncludeForCategory(t *testing.T) {
	userID := uuid.New()

	withSwitch := func(mutate func(*entity.NotificationPreferences)) *entity.NotificationPreferences {
		prefs := entity.DefaultNotificationPreferences(userID)
		mutate(prefs)

		return prefs
	}

	tests := []struct {
		name     string
		prefs    *entity.NotificationPreferences
		category entity.Category
		want     bool
	}{
		{
			name:     "missing preference row includes",
			prefs:    nil,
			category: entity.CategoryAdvertising,
			want:     true,
		},
		{
			name:     "all defaults include advertising",
			prefs:    entity.DefaultNotificationPreferences(userID),
			category: entity.CategoryAdvertising,
			want:     true,
		},
		{
			name: "global kill switch excludes everything",
			prefs: withSwitch(func(p *entity.NotificationPreferences) {
				p.EnableNotifications = false
			}),
			category: entity.CategorySecurity,
			want:     false,
		},
		{
			name: "push kill switch excludes everything",
			prefs: withSwitch(func(p *entity.NotificationPreferences) {
				p.EnablePush = false
			}),
			category: entity.CategoryMaintenance,
			want:     false,
		},
		{
			name: "advertising opt-out excludes advertising",
			prefs: withSwitch(func(p *entity.NotificationPreferences) {
				p.EnableAdvertisingPush = false
			}),
			category: entity.CategoryAdvertising,
			want:     false,
		},
		{
			name: "security ignores category opt-outs",
			prefs: withSwitch(func(p *entity.NotificationPreferences) {
				p.EnableAdvertisingPush = false
				p.EnableSecurityPush = false
			}),
			category: entity.CategorySecurity,
			want:     true,
		},
		{
			name: "maintenance ignores category opt-outs",
			prefs: withSwitch(func(p *entity.NotificationPreferences) {
				p.EnableMaintenancePush = false
			}),
			category: entity.CategoryMaintenance,
			want:     true,
		},
		{
			name: "unrecognized category behaves like advertising",
			prefs: withSwitch(func(p *entity.NotificationPreferences) {
				p.EnableAdvertisingPush = false
			}),
			category: entity.Category("weather"),
			want:     false,
		},
	}

	var filter preferenceFilter
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filter.includeForCategory(tt.prefs, tt.category))
		})
	}
}

func TestPreferenceFilter_IncludeForFeature(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		mutate  func(*entity.NotificationPreferences)
		feature directFeature
		want    bool
	}{
		{
			name:    "defaults include contact messages",
			mutate:  func(*entity.NotificationPreferences) {},
			feature: featureContactMessages,
			want:    true,
		},
		{
			name: "contact message switch gates contact messages",
			mutate: func(p *entity.NotificationPreferences) {
				p.NotifyContactMessages = false
			},
			feature: featureContactMessages,
			want:    false,
		},
		{
			name: "prospect switch gates prospects only",
			mutate: func(p *entity.NotificationPreferences) {
				p.NotifyNewProspects = false
			},
			feature: featurePaymentReminders,
			want:    true,
		},
		{
			name: "payment reminder switch gates payment reminders",
			mutate: func(p *entity.NotificationPreferences) {
				p.NotifyPaymentReminders = false
			},
			feature: featurePaymentReminders,
			want:    false,
		},
		{
			name: "motel approval switch gates approvals",
			mutate: func(p *entity.NotificationPreferences) {
				p.NotifyMotelApprovals = false
			},
			feature: featureMotelApprovals,
			want:    false,
		},
		{
			name: "promo switch gates promos",
			mutate: func(p *entity.NotificationPreferences) {
				p.NotifyNewPromos = false
			},
			feature: featureNewPromos,
			want:    false,
		},
		{
			name: "push kill switch beats feature switches",
			mutate: func(p *entity.NotificationPreferences) {
				p.EnablePush = false
			},
			feature: featureNewPromos,
			want:    false,
		},
	}

	var filter preferenceFilter
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := entity.DefaultNotificationPreferences(userID)
			tt.mutate(prefs)
			assert.Equal(t, tt.want, filter.includeForFeature(prefs, tt.feature))
		})
	}

	t.Run("missing preference row includes", func(t *testing.T) {
		assert.True(t, filter.includeForFeature(nil, featureNewPromos))
	})
}
