package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"boxtrack/config"
	"boxtrack/internal/domain/service"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
)

const (
	defaultKafkaClientID   = "boxtrack"
	defaultKafkaMaxRetries = 5
)

// kafkaPublisher implements EventPublisher on a synchronous sarama producer.
// Messages are keyed by shipment ID so one shipment's events share a partition.
type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewKafkaPublisher dials the brokers and returns a publisher for cfg.Topic.
func NewKafkaPublisher(cfg *config.KafkaConfig, logger *slog.Logger) (service.EventPublisher, error) {
	saramaCfg, err := newProducerConfig(cfg)
	if err != nil {
		return nil, err
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Kafka producer")
	}

	return newKafkaPublisher(producer, cfg.Topic, logger), nil
}

func newKafkaPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

func newProducerConfig(cfg *config.KafkaConfig) (*sarama.Config, error) {
	saramaCfg := sarama.NewConfig()
	// Record headers need the 0.11 message format.
	saramaCfg.Version = sarama.V2_1_0_0
	saramaCfg.ClientID = defaultKafkaClientID
	if cfg.ClientID != "" {
		saramaCfg.ClientID = cfg.ClientID
	}

	switch cfg.RequiredAcks {
	case "", "all":
		saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	case "leader":
		saramaCfg.Producer.RequiredAcks = sarama.WaitForLocal
	case "none":
		saramaCfg.Producer.RequiredAcks = sarama.NoResponse
	default:
		return nil, errors.Errorf("unknown kafka requiredAcks: %s", cfg.RequiredAcks)
	}

	saramaCfg.Producer.Retry.Max = defaultKafkaMaxRetries
	if cfg.MaxRetries > 0 {
		saramaCfg.Producer.Retry.Max = cfg.MaxRetries
	}
	saramaCfg.Producer.Retry.Backoff = 500 * time.Millisecond
	saramaCfg.Producer.Timeout = 5 * time.Second
	saramaCfg.Producer.Return.Successes = true

	return saramaCfg, nil
}

// PublishShipmentEvent sends the JSON event with its attributes as record headers.
func (p *kafkaPublisher) PublishShipmentEvent(ctx context.Context, event *service.ShipmentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := event.Attributes()
	headers := make([]sarama.RecordHeader, 0, len(attributes))
	for key, value := range attributes {
		headers = append(headers, sarama.RecordHeader{Key: []byte(key), Value: []byte(value)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(event.ShipmentID),
		Value:   sarama.ByteEncoder(data),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return errors.Wrap(err, "failed to send message to Kafka")
	}

	p.logger.DebugContext(ctx, "[Kafka] Event published",
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.Type),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.producer.Close())
}
