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

	"estate/config"
	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/constants"
	"estate/internal/domain/entity"
	"estate/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_SendsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	event := &service.DomainEvent{
		ID:         "evt-1",
		Type:       entity.EventAccountRegistered,
		RequestID:  "req-1",
		Subject:    "acc-1",
		OccurredAt: time.Now(),
		Attributes: map[string]string{"role": "user"},
	}

	err := NewLocalHTTPPublisher(srv.URL, discardLogger()).Publish(ctx, event)
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.ID, received.Message.MessageID)
	assert.Equal(t, entity.EventAccountRegistered, received.Message.Attributes["event_type"])
	assert.Equal(t, "user", received.Message.Attributes["role"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.DomainEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "acc-1", decoded.Subject)
	assert.Equal(t, "user", decoded.Attributes["role"])
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	event := &service.DomainEvent{ID: "evt-2", Type: entity.EventContactReceived, Subject: "c-1", OccurredAt: time.Now()}
	err := NewLocalHTTPPublisher(srv.URL, discardLogger()).Publish(context.Background(), event)

	assert.ErrorContains(t, err, "non-success status: 503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "not configured", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9000"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "localEndpoint is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "pubsub.topicId"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}
