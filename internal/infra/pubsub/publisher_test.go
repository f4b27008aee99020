package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tablescout/config"
	"tablescout/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishClaimEvent(t *testing.T) {
	var received PushEnvelope
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-42", r.Header.Get("X-Request-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	event := &service.ClaimEvent{
		RequestID: "req-42",
		EventID:   "evt-1",
		PlaceID:   "ChIJ-bistro",
		ClaimedBy: "owner-1",
		UpdatedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishClaimEvent(context.Background(), event))

	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, claimEventType, received.Message.Attributes["event_type"])
	assert.Equal(t, "ChIJ-bistro", received.Message.Attributes["place_id"])
	assert.Equal(t, "owner-1", received.Message.Attributes["claimed_by"])
	assert.Equal(t, "false", received.Message.Attributes["removed"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.ClaimEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "owner-1", decoded.ClaimedBy)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := publisher.PublishClaimEvent(context.Background(), &service.ClaimEvent{EventID: "e", PlaceID: "p"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestLocalHTTPPublisher_RejectsEventWithoutPlace(t *testing.T) {
	publisher := NewLocalHTTPPublisher("http://127.0.0.1:1/push", discardLogger())

	err := publisher.PublishClaimEvent(context.Background(), &service.ClaimEvent{EventID: "e"})

	assert.Error(t, err)
}

func TestNewEventPublisher_Providers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "unset", cfg: nil},
		{name: "none", cfg: &config.PubSubConfig{Provider: "none"}},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:9999/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "claims"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "tablescout"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}
