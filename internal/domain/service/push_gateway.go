// Package service defines interfaces for external collaborators of the domain.
package service

import "context"

// ErrorCodeDeviceNotRegistered is the gateway detail code for a permanently
// undeliverable token. The caller must deactivate the token on sight of it.
const ErrorCodeDeviceNotRegistered = "DeviceNotRegistered"

// PushMessage is one batched request to the push gateway.
type PushMessage struct {
	To        []string       `json:"to"`        // Gateway addresses; all receive the same content.
	Title     string         `json:"title"`     // Notification title.
	Body      string         `json:"body"`      // Notification body.
	Data      map[string]any `json:"data"`      // Free-form payload, defaults to {}.
	Sound     string         `json:"sound"`     // Defaults to "default".
	Badge     *int           `json:"badge"`     // Optional badge count.
	ChannelID string         `json:"channelId"` // Android channel, defaults to "default".
	Priority  string         `json:"priority"`  // "default", "normal" or "high"; defaults to "high".
}

// PushOutcome is the gateway's verdict for a single token.
type PushOutcome struct {
	Token     string // The gateway address this outcome belongs to.
	OK        bool   // True when the gateway accepted the message.
	Message   string // Gateway-provided failure message.
	ErrorCode string // Gateway detail code, e.g. ErrorCodeDeviceNotRegistered.
}

// PushGateway defines the interface for the external push-notification gateway.
type PushGateway interface {
	// IsValidToken reports whether the token matches the gateway's expected
	// address format. Malformed tokens must be rejected locally, without a
	// network call.
	IsValidToken(token string) bool

	// Send delivers one batched message and returns one outcome per token in
	// msg.To, preserving order. A transport-level error means no outcome is
	// known for any token in the batch.
	Send(ctx context.Context, msg *PushMessage) ([]PushOutcome, error)
}
