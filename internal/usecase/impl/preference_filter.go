package impl

import "pernoite/internal/domain/entity"

// directFeature selects the feature-specific switch a direct notification
// helper is gated by.
type directFeature int

const (
	featureContactMessages directFeature = iota
	featureNewProspects
	featurePaymentReminders
	featureMotelApprovals
	featureNewPromos
)

// preferenceFilter decides per-user inclusion for a notification category.
// Guests never reach this filter; they are always included.
type preferenceFilter struct{}

// includeForCategory applies the opt-out rules in order: a missing preference
// row means include; the global and push kill switches exclude; security and
// maintenance are not user-suppressible; advertising (and anything
// unrecognized) honors the advertising switch.
func (preferenceFilter) includeForCategory(prefs *entity.NotificationPreferences, category entity.Category) bool {
	if prefs == nil {
		return true
	}
	if !prefs.PushEnabled() {
		return false
	}
	if !category.Suppressible() {
		return true
	}

	return prefs.EnableAdvertisingPush
}

// includeForFeature applies the same kill switches, then the feature-specific
// switch instead of a category switch.
func (preferenceFilter) includeForFeature(prefs *entity.NotificationPreferences, feature directFeature) bool {
	if prefs == nil {
		return true
	}
	if !prefs.PushEnabled() {
		return false
	}

	switch feature {
	case featureContactMessages:
		return prefs.NotifyContactMessages
	case featureNewProspects:
		return prefs.NotifyNewProspects
	case featurePaymentReminders:
		return prefs.NotifyPaymentReminders
	case featureMotelApprovals:
		return prefs.NotifyMotelApprovals
	case featureNewPromos:
		return prefs.NotifyNewPromos
	default:
		return false
	}
}
