package pubsub

import (
	"context"
	"log/slog"
	"time"

	"boxtrack/config"
	"boxtrack/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
)

const (
	defaultBreakerMaxRequests         = 1
	defaultBreakerInterval            = time.Minute
	defaultBreakerTimeout             = 30 * time.Second
	defaultBreakerConsecutiveFailures = 5
)

// ErrPublisherUnavailable is returned while the breaker rejects publishes.
var ErrPublisherUnavailable = errors.New("event publisher unavailable: circuit breaker open")

// StateObserver receives breaker state changes as 0 (closed), 1 (half-open) or 2 (open).
type StateObserver func(name string, state int)

// breakerPublisher fails fast once the wrapped publisher keeps failing,
// so request handlers do not each wait out a broker timeout.
type breakerPublisher struct {
	next service.EventPublisher
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerPublisher wraps next in a circuit breaker. observe may be nil.
func NewBreakerPublisher(next service.EventPublisher, name string, cfg *config.BreakerConfig, logger *slog.Logger, observe StateObserver) service.EventPublisher {
	threshold := uint32(defaultBreakerConsecutiveFailures)
	if cfg.ConsecutiveFailures > 0 {
		threshold = cfg.ConsecutiveFailures
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: orDefault(cfg.MaxRequests, defaultBreakerMaxRequests),
		Interval:    orDefault(cfg.Interval, defaultBreakerInterval),
		Timeout:     orDefault(cfg.Timeout, defaultBreakerTimeout),
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A cancelled caller says nothing about the broker.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			if observe != nil {
				observe(name, int(to))
			}
		},
	}

	return &breakerPublisher{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

func orDefault[T uint32 | time.Duration](value, fallback T) T {
	if value > 0 {
		return value
	}

	return fallback
}

func (p *breakerPublisher) PublishShipmentEvent(ctx context.Context, event *service.ShipmentEvent) error {
	_, err := p.cb.Execute(func() (any, error) {
		return nil, p.next.PublishShipmentEvent(ctx, event)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.Wrapf(ErrPublisherUnavailable, "%s", p.cb.Name())
	}

	return err
}

func (p *breakerPublisher) Close() error {
	return p.next.Close()
}
