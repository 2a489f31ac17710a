// Package scheduler runs the notifier's periodic jobs.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"boxtrack/config"
	"boxtrack/internal/delivery"
	deliverycontext "boxtrack/internal/delivery/context"
	"boxtrack/internal/domain/lifecycle"
	"boxtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// OverdueParams holds dependencies for the overdue sweeper, injected by Fx
type OverdueParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	OverdueUC usecase.OverdueSweepUsecase
}

type overdueScheduler struct {
	cron      *cron.Cron
	schedule  string
	window    time.Duration
	logger    *slog.Logger
	overdueUC usecase.OverdueSweepUsecase
	now       func() time.Time
}

// NewOverdueScheduler registers the sweep on cfg.Worker.OverdueSchedule.
// An empty schedule yields a delivery that does nothing.
func NewOverdueScheduler(params OverdueParams) (delivery.Delivery, error) {
	s := &overdueScheduler{
		logger:    params.Logger,
		overdueUC: params.OverdueUC,
		now:       time.Now,
	}
	if params.Cfg.Worker != nil {
		s.schedule = params.Cfg.Worker.OverdueSchedule
		s.window = params.Cfg.Worker.OverdueWindow
	}
	if s.schedule == "" {
		return s, nil
	}

	logger := &cronLogger{logger: params.Logger}
	s.cron = cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	if _, err := s.cron.AddFunc(s.schedule, s.sweep); err != nil {
		return nil, errors.Wrapf(err, "invalid overdue schedule %q", s.schedule)
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func (s *overdueScheduler) Serve(_ context.Context) error {
	if s.cron == nil {
		s.logger.Info("Overdue sweeper disabled")

		return nil
	}

	s.logger.Info("Starting overdue sweeper",
		slog.String("schedule", s.schedule),
		slog.Duration("window", s.window),
	)
	s.cron.Start()

	return nil
}

// sweep covers the window ending at the tick. Ticks land just after a second
// boundary, so truncating keeps consecutive windows contiguous.
func (s *overdueScheduler) sweep() {
	ctx, logger := deliverycontext.WithRequestScope(context.Background(), s.logger, uuid.New().String())
	ctx, cancel := context.WithTimeout(ctx, s.window)
	defer cancel()

	now := s.now().Truncate(time.Second)
	count, err := s.overdueUC.SweepOverdue(ctx, now, s.window)
	if err != nil {
		logger.Error("Overdue sweep failed", slog.Time("until", now), slog.Any("error", err))

		return
	}

	logger.Info("Overdue sweep finished", slog.Time("until", now), slog.Int("published", count))
}

func (s *overdueScheduler) stop(ctx context.Context) error {
	s.logger.Info("Stopping overdue sweeper")
	done := s.cron.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-done.Done():
		return nil
	case <-shutdownCtx.Done():
		return errors.New("overdue sweep still running at shutdown")
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l *cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("[Cron] "+msg, keysAndValues...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("[Cron] "+msg, append(keysAndValues, slog.Any("error", err))...)
}
