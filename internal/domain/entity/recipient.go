// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Recipient is one resolved delivery candidate: a user together with their
// active push tokens and, when a row exists, their notification preferences.
// Produced by the targeting resolver, consumed by the preference filter.
type Recipient struct {
	UserID      uuid.UUID                `json:"user_id"`
	Tokens      []*PushToken             `json:"tokens"`      // Active tokens only.
	Preferences *NotificationPreferences `json:"preferences"` // Nil when the user has no preference row.
}

// TokenStrings flattens the recipient's tokens to gateway addresses.
func (r *Recipient) TokenStrings() []string {
	out := make([]string, 0, len(r.Tokens))
	for _, t := range r.Tokens {
		out = append(out, t.Token)
	}

	return out
}
