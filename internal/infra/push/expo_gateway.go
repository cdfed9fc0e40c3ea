// Package push contains the HTTP client for the external push gateway.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"pernoite/config"
	"pernoite/internal/domain/service"

	"github.com/pkg/errors"
)

// Gateway address-format prefixes. Tokens not matching either are rejected
// locally, without a network call.
var tokenPrefixes = []string{"ExponentPushToken[", "ExpoPushToken["}

type expoGateway struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewExpoGateway creates a push gateway client against the configured send
// endpoint. The request timeout bounds every gateway call so a stalled
// gateway cannot stall a sweep.
func NewExpoGateway(cfg *config.Config, logger *slog.Logger) service.PushGateway {
	return &expoGateway{
		endpoint: cfg.Push.URL,
		httpClient: &http.Client{
			Timeout: cfg.Push.Timeout,
		},
		logger: logger,
	}
}

// pushRequest is the gateway's send-endpoint body. To is a string for a
// single token and an array otherwise.
type pushRequest struct {
	To        any            `json:"to"`
	Sound     string         `json:"sound"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Data      map[string]any `json:"data"`
	Badge     *int           `json:"badge,omitempty"`
	ChannelID string         `json:"channelId"`
	Priority  string         `json:"priority"`
}

// pushTicket is the gateway's verdict for one token.
type pushTicket struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Details struct {
		Error string `json:"error,omitempty"`
	} `json:"details,omitempty"`
}

// pushResponse wraps the data entry, which the gateway returns either as a
// single ticket or as an array with one ticket per token.
type pushResponse struct {
	Data json.RawMessage `json:"data"`
}

// IsValidToken reports whether the token matches the gateway address format.
func (g *expoGateway) IsValidToken(token string) bool {
	if !strings.HasSuffix(token, "]") {
		return false
	}
	for _, prefix := range tokenPrefixes {
		if strings.HasPrefix(token, prefix) {
			return true
		}
	}

	return false
}

// Send delivers one batched message and returns one outcome per token in
// msg.To, preserving order.
func (g *expoGateway) Send(ctx context.Context, msg *service.PushMessage) ([]service.PushOutcome, error) {
	if len(msg.To) == 0 {
		return nil, nil
	}

	tickets, err := g.post(ctx, msg)
	if err != nil {
		return nil, err
	}

	// Normalize: a single data entry applies to the whole batch; an array is
	// matched per index, falling back to index 0 on length mismatch.
	outcomes := make([]service.PushOutcome, len(msg.To))
	for i, token := range msg.To {
		ticket := tickets[0]
		if i < len(tickets) {
			ticket = tickets[i]
		}

		outcomes[i] = service.PushOutcome{
			Token:     token,
			OK:        ticket.Status == "ok",
			Message:   ticket.Message,
			ErrorCode: ticket.Details.Error,
		}
	}

	return outcomes, nil
}

func (g *expoGateway) post(ctx context.Context, msg *service.PushMessage) ([]pushTicket, error) {
	reqBody := pushRequest{
		Sound:     msg.Sound,
		Title:     msg.Title,
		Body:      msg.Body,
		Data:      msg.Data,
		Badge:     msg.Badge,
		ChannelID: msg.ChannelID,
		Priority:  msg.Priority,
	}
	if len(msg.To) == 1 {
		reqBody.To = msg.To[0]
	} else {
		reqBody.To = msg.To
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "push gateway request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("push gateway returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read gateway response")
	}

	var parsed pushResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, errors.Wrap(err, "malformed gateway response")
	}

	tickets, err := decodeTickets(parsed.Data)
	if err != nil {
		return nil, err
	}
	if len(tickets) == 0 {
		return nil, errors.New("gateway response carried no data entry")
	}

	g.logger.Debug("push gateway call completed",
		slog.Int("tokens", len(msg.To)),
		slog.Int("tickets", len(tickets)),
	)

	return tickets, nil
}

// decodeTickets accepts both response shapes: a single ticket object or an
// array of tickets.
func decodeTickets(raw json.RawMessage) ([]pushTicket, error) {
	if len(raw) == 0 {
		return nil, errors.New("gateway response carried no data entry")
	}

	var many []pushTicket
	if err := json.Unmarshal(raw, &many); err == nil {
		return many, nil
	}

	var one pushTicket
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, errors.Wrap(err, "malformed gateway data entry")
	}

	return []pushTicket{one}, nil
}
