package impl

import (
	"context"
	"log/slog"

	"pernoite/internal/domain/service"
)

// pushContent is the device-facing payload of one notification, shared by
// every token in the batch.
type pushContent struct {
	Title     string
	Body      string
	Data      map[string]any
	Badge     *int
	ChannelID string
	Priority  string
	Sound     string
}

// deliveryExecutor sends a flat, deduplicated token list to the push gateway
// and reconciles per-token outcomes. Dead tokens are deactivated on the spot;
// failures are counted, never retried.
type deliveryExecutor struct {
	gateway   service.PushGateway
	tokens    tokenDeactivator
	logger    *slog.Logger
	batchSize int
}

// tokenDeactivator is the slice of TokenRepository the executor needs.
type tokenDeactivator interface {
	DeactivateToken(ctx context.Context, token string) error
}

func newDeliveryExecutor(gateway service.PushGateway, tokens tokenDeactivator, logger *slog.Logger, batchSize int) *deliveryExecutor {
	return &deliveryExecutor{
		gateway:   gateway,
		tokens:    tokens,
		logger:    logger,
		batchSize: batchSize,
	}
}

// deliver pushes content to every token and returns the aggregated counts.
// Tokens that fail the gateway's address-format check are counted as failed
// without a network call. A transport-level error fails the whole chunk that
// was in flight; errMsg carries the last transport error for the terminal
// record.
func (e *deliveryExecutor) deliver(ctx context.Context, tokens []string, content *pushContent) (sent, failed int, errMsg string) {
	if len(tokens) == 0 {
		return 0, 0, ""
	}

	valid := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !e.gateway.IsValidToken(token) {
			failed++
			e.logger.Warn("rejected malformed push token",
				slog.String("token", token),
			)

			continue
		}
		valid = append(valid, token)
	}

	for i := 0; i < len(valid); i += e.batchSize {
		end := min(i+e.batchSize, len(valid))
		chunk := valid[i:end]

		outcomes, err := e.gateway.Send(ctx, e.buildMessage(chunk, content))
		if err != nil {
			failed += len(chunk)
			errMsg = err.Error()
			e.logger.Error("push gateway call failed",
				slog.Int("tokens", len(chunk)),
				slog.Any("error", err),
			)

			continue
		}

		for _, outcome := range outcomes {
			if outcome.OK {
				sent++

				continue
			}

			failed++
			if outcome.ErrorCode == service.ErrorCodeDeviceNotRegistered {
				e.deactivate(ctx, outcome.Token)
			}
		}
	}

	return sent, failed, errMsg
}

func (e *deliveryExecutor) buildMessage(tokens []string, content *pushContent) *service.PushMessage {
	msg := &service.PushMessage{
		To:        tokens,
		Title:     content.Title,
		Body:      content.Body,
		Data:      content.Data,
		Badge:     content.Badge,
		Sound:     content.Sound,
		ChannelID: content.ChannelID,
		Priority:  content.Priority,
	}
	if msg.Data == nil {
		msg.Data = map[string]any{}
	}
	if msg.Sound == "" {
		msg.Sound = "default"
	}
	if msg.ChannelID == "" {
		msg.ChannelID = "default"
	}
	if msg.Priority == "" {
		msg.Priority = "high"
	}

	return msg
}

// deactivate marks a dead token inactive. Deactivation failures are logged
// and swallowed; the token stays counted as failed either way.
func (e *deliveryExecutor) deactivate(ctx context.Context, token string) {
	if err := e.tokens.DeactivateToken(ctx, token); err != nil {
		e.logger.Error("failed to deactivate dead push token",
			slog.String("token", token),
			slog.Any("error", err),
		)

		return
	}

	e.logger.Info("deactivated unregistered push token",
		slog.String("token", token),
	)
}
