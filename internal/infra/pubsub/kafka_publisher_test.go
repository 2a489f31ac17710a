package pubsub

import (
	"encoding/json"
	"log/slog"
	"testing"

	"boxtrack/config"
	"boxtrack/internal/domain/service"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent() *service.ShipmentEvent {
	return &service.ShipmentEvent{
		EventID:        "0b6a3c1e-8f0e-4a43-9f5b-6f1d2c3b4a59",
		RequestID:      "req-1",
		Type:           service.EventShipmentStatusChanged,
		ShipmentID:     "5f1c6a0e-2d3b-4c5a-9e8f-7a6b5c4d3e2f",
		TrackingNumber: "BOX-LZ1K2M3-ABC123",
		SenderID:       "9a8b7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d",
		Status:         "IN_TRANSIT",
		PreviousStatus: "CREATED",
	}
}

func TestKafkaPublisher_PublishShipmentEvent(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var decoded service.ShipmentEvent
		if err := json.Unmarshal(val, &decoded); err != nil {
			return err
		}
		if decoded.TrackingNumber != "BOX-LZ1K2M3-ABC123" {
			return errors.Errorf("unexpected tracking number %q", decoded.TrackingNumber)
		}

		return nil
	})

	publisher := newKafkaPublisher(producer, "shipment-events", slog.New(slog.DiscardHandler))

	require.NoError(t, publisher.PublishShipmentEvent(t.Context(), sampleEvent()))
	require.NoError(t, publisher.Close())
}

func TestKafkaPublisher_SendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := newKafkaPublisher(producer, "shipment-events", slog.New(slog.DiscardHandler))

	err := publisher.PublishShipmentEvent(t.Context(), sampleEvent())
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, publisher.Close())
}

func TestNewProducerConfig(t *testing.T) {
	tests := []struct {
		name    string
		acks    string
		want    sarama.RequiredAcks
		wantErr bool
	}{
		{"default waits for all", "", sarama.WaitForAll, false},
		{"leader", "leader", sarama.WaitForLocal, false},
		{"none", "none", sarama.NoResponse, false},
		{"unknown", "some", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := newProducerConfig(&config.KafkaConfig{RequiredAcks: tt.acks, MaxRetries: 2})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Producer.RequiredAcks)
			assert.Equal(t, 2, cfg.Producer.Retry.Max)
			assert.True(t, cfg.Producer.Return.Successes)
			assert.Equal(t, defaultKafkaClientID, cfg.ClientID)
		})
	}
}
