package pubsub

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"boxtrack/config"
	mockService "boxtrack/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBreakerPublisher_OpensAfterConsecutiveFailures(t *testing.T) {
	next := mockService.NewMockEventPublisher(t)
	brokerDown := errors.New("broker down")
	next.EXPECT().PublishShipmentEvent(mock.Anything, mock.Anything).Return(brokerDown).Times(2)

	var states []int
	publisher := NewBreakerPublisher(next, "test-publisher", &config.BreakerConfig{
		ConsecutiveFailures: 2,
		Timeout:             time.Hour,
	}, slog.New(slog.DiscardHandler), func(_ string, state int) {
		states = append(states, state)
	})

	ctx := context.Background()
	assert.ErrorIs(t, publisher.PublishShipmentEvent(ctx, sampleEvent()), brokerDown)
	assert.ErrorIs(t, publisher.PublishShipmentEvent(ctx, sampleEvent()), brokerDown)

	// Third call is rejected without reaching the wrapped publisher.
	assert.ErrorIs(t, publisher.PublishShipmentEvent(ctx, sampleEvent()), ErrPublisherUnavailable)
	assert.Equal(t, []int{2}, states)
}

func TestBreakerPublisher_PassesThroughSuccess(t *testing.T) {
	next := mockService.NewMockEventPublisher(t)
	next.EXPECT().PublishShipmentEvent(mock.Anything, mock.Anything).Return(nil).Once()
	next.EXPECT().Close().Return(nil).Once()

	publisher := NewBreakerPublisher(next, "test-publisher", &config.BreakerConfig{}, slog.New(slog.DiscardHandler), nil)

	assert.NoError(t, publisher.PublishShipmentEvent(context.Background(), sampleEvent()))
	assert.NoError(t, publisher.Close())
}

func TestBreakerPublisher_IgnoresCancelledCallers(t *testing.T) {
	next := mockService.NewMockEventPublisher(t)
	next.EXPECT().PublishShipmentEvent(mock.Anything, mock.Anything).Return(context.Canceled).Times(3)

	publisher := NewBreakerPublisher(next, "test-publisher", &config.BreakerConfig{ConsecutiveFailures: 1}, slog.New(slog.DiscardHandler), nil)

	for range 3 {
		assert.ErrorIs(t, publisher.PublishShipmentEvent(context.Background(), sampleEvent()), context.Canceled)
	}
}
