package consumer

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"

	"boxtrack/config"
	deliverycontext "boxtrack/internal/delivery/context"
	"boxtrack/internal/domain/service"
	mockUsecase "boxtrack/internal/mocks/usecase"
	"boxtrack/internal/usecase"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	sarama.ConsumerGroupSession

	ctx    context.Context
	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

func (s *fakeSession) offsets() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]int64(nil), s.marked...)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim

	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func record(t *testing.T, offset int64, event *service.ShipmentEvent, headers map[string]string) *sarama.ConsumerMessage {
	t.Helper()

	value, err := json.Marshal(event)
	require.NoError(t, err)

	msg := &sarama.ConsumerMessage{Topic: "shipment-events", Offset: offset, Value: value}
	for key, val := range headers {
		msg.Headers = append(msg.Headers, &sarama.RecordHeader{Key: []byte(key), Value: []byte(val)})
	}

	return msg
}

func newTestHandler(t *testing.T) (*eventHandler, *mockUsecase.MockNotificationUsecase) {
	t.Helper()
	notifications := mockUsecase.NewMockNotificationUsecase(t)

	return &eventHandler{
		logger:          slog.New(slog.DiscardHandler),
		notificationUC:  notifications,
		firstRetryDelay: time.Millisecond,
		maxRetryDelay:   4 * time.Millisecond,
	}, notifications
}

func TestEventHandler_MarksSettledRecords(t *testing.T) {
	h, notifications := newTestHandler(t)

	notifications.EXPECT().HandleShipmentEvent(mock.Anything, mock.MatchedBy(func(e *service.ShipmentEvent) bool {
		return e.EventID == "evt-ok"
	})).Return(nil).Once()
	notifications.EXPECT().HandleShipmentEvent(mock.Anything, mock.MatchedBy(func(e *service.ShipmentEvent) bool {
		return e.EventID == "evt-permanent"
	})).Return(errors.New("no devices")).Once()

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 3)}
	claim.messages <- record(t, 10, &service.ShipmentEvent{EventID: "evt-ok"}, nil)
	claim.messages <- &sarama.ConsumerMessage{Offset: 11, Value: []byte("not json")}
	claim.messages <- record(t, 12, &service.ShipmentEvent{EventID: "evt-permanent"}, nil)
	close(claim.messages)

	session := &fakeSession{ctx: context.Background()}
	require.NoError(t, h.ConsumeClaim(session, claim))
	assert.Equal(t, []int64{10, 11, 12}, session.offsets())
}

func TestEventHandler_RetriesTransientFailures(t *testing.T) {
	h, notifications := newTestHandler(t)

	transient := usecase.Retryable(errors.New("fcm unavailable"))
	notifications.EXPECT().HandleShipmentEvent(mock.Anything, mock.Anything).Return(transient).Twice()
	notifications.EXPECT().HandleShipmentEvent(mock.Anything, mock.Anything).Return(nil).Once()

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 1)}
	claim.messages <- record(t, 7, &service.ShipmentEvent{EventID: "evt-retry"}, nil)
	close(claim.messages)

	session := &fakeSession{ctx: context.Background()}
	require.NoError(t, h.ConsumeClaim(session, claim))
	assert.Equal(t, []int64{7}, session.offsets())
}

func TestEventHandler_LeavesRecordUnmarkedWhenSessionEnds(t *testing.T) {
	h, notifications := newTestHandler(t)
	ctx, cancel := context.WithCancel(context.Background())

	notifications.EXPECT().HandleShipmentEvent(mock.Anything, mock.Anything).RunAndReturn(
		func(context.Context, *service.ShipmentEvent) error {
			cancel()

			return usecase.Retryable(errors.New("fcm unavailable"))
		}).Once()

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 1)}
	claim.messages <- record(t, 3, &service.ShipmentEvent{EventID: "evt-rebalance"}, nil)

	session := &fakeSession{ctx: ctx}
	require.NoError(t, h.ConsumeClaim(session, claim))
	assert.Empty(t, session.offsets())
}

func TestEventHandler_RequestIDFromHeaders(t *testing.T) {
	h, notifications := newTestHandler(t)

	notifications.EXPECT().HandleShipmentEvent(mock.MatchedBy(func(ctx context.Context) bool {
		return deliverycontext.GetRequestIDFromContext(ctx) == "req-42"
	}), mock.Anything).Return(nil).Once()

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 1)}
	claim.messages <- record(t, 1, &service.ShipmentEvent{EventID: "evt-trace", RequestID: "ignored"}, map[string]string{"request_id": "req-42"})
	close(claim.messages)

	session := &fakeSession{ctx: context.Background()}
	require.NoError(t, h.ConsumeClaim(session, claim))
}

func TestNewConsumerConfig(t *testing.T) {
	cfg := newConsumerConfig(&config.KafkaConfig{ClientID: "notifier-1"})
	assert.Equal(t, "notifier-1", cfg.ClientID)
	assert.True(t, cfg.Consumer.Return.Errors)
	assert.Equal(t, sarama.OffsetOldest, cfg.Consumer.Offsets.Initial)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, defaultClientID, newConsumerConfig(&config.KafkaConfig{}).ClientID)
}

func TestNewKafkaConsumer_RequiresGroup(t *testing.T) {
	_, err := NewKafkaConsumer(ConsumerParams{
		Cfg: &config.Config{PubSub: &config.PubSubConfig{Kafka: &config.KafkaConfig{
			Brokers: []string{"localhost:9092"}, Topic: "shipment-events",
		}}},
		Logger: slog.New(slog.DiscardHandler),
	})
	assert.Error(t, err)
}
