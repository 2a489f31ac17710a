// Package consumer reads shipment events straight from Kafka when the
// notifier is deployed next to a broker instead of behind a push subscription.
package consumer

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"boxtrack/config"
	"boxtrack/internal/delivery"
	deliverycontext "boxtrack/internal/delivery/context"
	workerhandler "boxtrack/internal/delivery/worker/handler"
	"boxtrack/internal/domain/lifecycle"
	"boxtrack/internal/domain/service"
	"boxtrack/internal/usecase"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultClientID = "boxtrack-notifier"
	rejoinDelay     = 2 * time.Second
	firstRetryDelay = time.Second
	maxRetryDelay   = 30 * time.Second
)

// ConsumerParams holds dependencies for the Kafka consumer, injected by Fx
type ConsumerParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

type kafkaConsumer struct {
	group   sarama.ConsumerGroup
	topic   string
	logger  *slog.Logger
	handler *eventHandler

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewKafkaConsumer joins cfg.PubSub.Kafka.GroupID and feeds every record to the notification use case.
func NewKafkaConsumer(params ConsumerParams) (delivery.Delivery, error) {
	if params.Cfg.PubSub == nil || params.Cfg.PubSub.Kafka == nil {
		return nil, errors.New("kafka consumer requires pubSub.kafka configuration")
	}
	kafkaCfg := params.Cfg.PubSub.Kafka
	if len(kafkaCfg.Brokers) == 0 || kafkaCfg.Topic == "" || kafkaCfg.GroupID == "" {
		return nil, errors.New("kafka brokers, topic and groupId are required for the consumer")
	}

	group, err := sarama.NewConsumerGroup(kafkaCfg.Brokers, kafkaCfg.GroupID, newConsumerConfig(kafkaCfg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Kafka consumer group")
	}

	c := newKafkaConsumer(group, kafkaCfg.Topic, params.Logger, params.NotificationUC)
	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c, nil
}

func newKafkaConsumer(group sarama.ConsumerGroup, topic string, logger *slog.Logger, notificationUC usecase.NotificationUsecase) *kafkaConsumer {
	ctx, cancel := context.WithCancel(context.Background())

	return &kafkaConsumer{
		group:  group,
		topic:  topic,
		logger: logger,
		handler: &eventHandler{
			logger:          logger,
			notificationUC:  notificationUC,
			firstRetryDelay: firstRetryDelay,
			maxRetryDelay:   maxRetryDelay,
		},
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

func newConsumerConfig(cfg *config.KafkaConfig) *sarama.Config {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Version = sarama.V2_1_0_0
	saramaCfg.ClientID = defaultClientID
	if cfg.ClientID != "" {
		saramaCfg.ClientID = cfg.ClientID
	}
	saramaCfg.Consumer.Return.Errors = true
	saramaCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return saramaCfg
}

// Serve consumes until the consumer is stopped. The caller's ctx is not
// used for cancellation; fx stops the consumer through its OnStop hook.
func (c *kafkaConsumer) Serve(_ context.Context) error {
	defer close(c.done)

	go c.logErrors()

	c.logger.Info("Starting Kafka consumer", slog.String("topic", c.topic))
	for {
		if err := c.group.Consume(c.ctx, []string{c.topic}, c.handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			c.logger.Error("Kafka consumer session failed", slog.Any("error", err))
		}

		if c.ctx.Err() != nil {
			return nil
		}

		select {
		case <-c.ctx.Done():
			return nil
		case <-time.After(rejoinDelay):
		}
	}
}

func (c *kafkaConsumer) logErrors() {
	for err := range c.group.Errors() {
		c.logger.Warn("Kafka consumer error", slog.Any("error", err))
	}
}

func (c *kafkaConsumer) stop(ctx context.Context) error {
	c.logger.Info("Stopping Kafka consumer")
	c.cancel()

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-c.done:
	case <-shutdownCtx.Done():
		c.logger.Warn("Kafka consumer did not drain before shutdown")
	}

	return errors.WithStack(c.group.Close())
}

// eventHandler implements sarama.ConsumerGroupHandler.
// Retryable failures are retried in place with backoff and never marked,
// so a rebalance redelivers the record to the next owner.
type eventHandler struct {
	logger          *slog.Logger
	notificationUC  usecase.NotificationUsecase
	firstRetryDelay time.Duration
	maxRetryDelay   time.Duration
}

func (h *eventHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *eventHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *eventHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if !h.handle(session.Context(), msg) {
				return nil
			}
			session.MarkMessage(msg, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

// handle reports false when the session ended before the record was settled.
func (h *eventHandler) handle(ctx context.Context, msg *sarama.ConsumerMessage) bool {
	var event service.ShipmentEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("[Kafka] Dropping undecodable record",
			slog.Int64("offset", msg.Offset),
			slog.Int("partition", int(msg.Partition)),
			slog.Any("error", err),
		)

		return true
	}

	attributes := make(map[string]string, len(msg.Headers))
	for _, header := range msg.Headers {
		if header != nil {
			attributes[string(header.Key)] = string(header.Value)
		}
	}

	requestID := workerhandler.ResolveRequestID(ctx, attributes, &event)
	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, h.logger, requestID)

	delay := h.firstRetryDelay
	for {
		err := h.notificationUC.HandleShipmentEvent(ctx, &event)
		if err == nil {
			return true
		}
		if !usecase.IsRetryable(err) {
			reqLogger.Error("[Kafka] Shipment event failed permanently",
				slog.String("event_id", event.EventID),
				slog.Any("error", err),
			)

			return true
		}

		reqLogger.Warn("[Kafka] Shipment event failed, retrying",
			slog.String("event_id", event.EventID),
			slog.Duration("delay", delay),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
		}
		delay = min(delay*2, h.maxRetryDelay)
	}
}
