package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"boxtrack/config"
	"boxtrack/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	event := sampleEvent()

	require.NoError(t, publisher.PublishShipmentEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.EventID, received.Message.MessageID)
	assert.Equal(t, service.EventShipmentStatusChanged, received.Message.Attributes["event_type"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.ShipmentEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.ShipmentID, decoded.ShipmentID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))

	assert.Error(t, publisher.PublishShipmentEvent(context.Background(), sampleEvent()))
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr bool
	}{
		{"unset falls back to noop", nil, false},
		{"explicit noop", &config.PubSubConfig{Provider: "noop"}, false},
		{"local requires endpoint", &config.PubSubConfig{Provider: "local"}, true},
		{"local with breaker", &config.PubSubConfig{
			Provider:      "local",
			LocalEndpoint: "http://localhost:8081/push",
			Breaker:       &config.BreakerConfig{Enabled: true},
		}, false},
		{"google requires project", &config.PubSubConfig{Provider: "google"}, true},
		{"kafka requires brokers", &config.PubSubConfig{Provider: "kafka", Kafka: &config.KafkaConfig{Topic: "t"}}, true},
		{"unknown provider", &config.PubSubConfig{Provider: "carrier-pigeon"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: slog.New(slog.DiscardHandler),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}
