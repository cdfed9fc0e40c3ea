package push

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pernoite/config"
	"pernoite/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) service.PushGateway {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Push: &config.PushConfig{
			URL:       server.URL,
			Timeout:   time.Second,
			BatchSize: 100,
		},
	}

	return NewExpoGateway(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestExpoGateway_IsValidToken(t *testing.T) {
	gateway := newTestGateway(t, func(http.ResponseWriter, *http.Request) {})

	tests := []struct {
		token string
		want  bool
	}{
		{"ExponentPushToken[xxxxxx]", true},
		{"ExpoPushToken[xxxxxx]", true},
		{"ExponentPushToken[]", true},
		{"ExponentPushToken[xxxxxx", false},
		{"FCMToken[xxxxxx]", false},
		{"", false},
		{"xxxxxx", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, gateway.IsValidToken(tt.token), "token %q", tt.token)
	}
}

func TestExpoGateway_Send_SingleTokenWireShape(t *testing.T) {
	var captured map[string]any
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"data":{"status":"ok"}}`))
	})

	outcomes, err := gateway.Send(context.Background(), &service.PushMessage{
		To:        []string{"ExponentPushToken[a]"},
		Title:     "Title",
		Body:      "Body",
		Data:      map[string]any{"screen": "promo"},
		Sound:     "default",
		ChannelID: "default",
		Priority:  "high",
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].OK)

	// A single token is sent as a plain string, not a one-element array.
	assert.Equal(t, "ExponentPushToken[a]", captured["to"])
	assert.Equal(t, "Title", captured["title"])
	assert.Equal(t, "Body", captured["body"])
	assert.Equal(t, "default", captured["sound"])
	assert.Equal(t, "default", captured["channelId"])
	assert.Equal(t, "high", captured["priority"])
	assert.Equal(t, map[string]any{"screen": "promo"}, captured["data"])
	assert.NotContains(t, captured, "badge")
}

func TestExpoGateway_Send_BatchSendsTokenArray(t *testing.T) {
	var captured map[string]any
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"data":[{"status":"ok"},{"status":"error","message":"device gone","details":{"error":"DeviceNotRegistered"}}]}`))
	})

	outcomes, err := gateway.Send(context.Background(), &service.PushMessage{
		To:    []string{"ExponentPushToken[a]", "ExponentPushToken[b]"},
		Title: "Title",
		Body:  "Body",
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	assert.Equal(t, []any{"ExponentPushToken[a]", "ExponentPushToken[b]"}, captured["to"])

	assert.Equal(t, "ExponentPushToken[a]", outcomes[0].Token)
	assert.True(t, outcomes[0].OK)

	assert.Equal(t, "ExponentPushToken[b]", outcomes[1].Token)
	assert.False(t, outcomes[1].OK)
	assert.Equal(t, "device gone", outcomes[1].Message)
	assert.Equal(t, service.ErrorCodeDeviceNotRegistered, outcomes[1].ErrorCode)
}

func TestExpoGateway_Send_SingleTicketAppliesToWholeBatch(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"status":"error","message":"rejected"}}`))
	})

	outcomes, err := gateway.Send(context.Background(), &service.PushMessage{
		To:    []string{"ExponentPushToken[a]", "ExponentPushToken[b]", "ExponentPushToken[c]"},
		Title: "Title",
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	for _, outcome := range outcomes {
		assert.False(t, outcome.OK)
		assert.Equal(t, "rejected", outcome.Message)
	}
}

func TestExpoGateway_Send_NonSuccessStatusIsError(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	outcomes, err := gateway.Send(context.Background(), &service.PushMessage{
		To:    []string{"ExponentPushToken[a]"},
		Title: "Title",
	})
	assert.Error(t, err)
	assert.Nil(t, outcomes)
	assert.Contains(t, err.Error(), "push gateway returned status 502")
}

func TestExpoGateway_Send_MalformedResponseIsError(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	outcomes, err := gateway.Send(context.Background(), &service.PushMessage{
		To:    []string{"ExponentPushToken[a]"},
		Title: "Title",
	})
	assert.Error(t, err)
	assert.Nil(t, outcomes)
}

func TestExpoGateway_Send_EmptyDataEntryIsError(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	outcomes, err := gateway.Send(context.Background(), &service.PushMessage{
		To:    []string{"ExponentPushToken[a]"},
		Title: "Title",
	})
	assert.Error(t, err)
	assert.Nil(t, outcomes)
	assert.Contains(t, err.Error(), "no data entry")
}

func TestExpoGateway_Send_EmptyTokenListSkipsNetwork(t *testing.T) {
	gateway := newTestGateway(t, func(http.ResponseWriter, *http.Request) {
		t.Fatal("no request expected for an empty token list")
	})

	outcomes, err := gateway.Send(context.Background(), &service.PushMessage{Title: "Title"})
	require.NoError(t, err)
	assert.Nil(t, outcomes)
}
