package scheduler

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"boxtrack/config"
	mockUsecase "boxtrack/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newScheduler(t *testing.T, worker *config.WorkerConfig) (*overdueScheduler, *mockUsecase.MockOverdueSweepUsecase, error) {
	t.Helper()
	overdue := mockUsecase.NewMockOverdueSweepUsecase(t)

	d, err := NewOverdueScheduler(OverdueParams{
		Lc:        fxtest.NewLifecycle(t),
		Cfg:       &config.Config{Worker: worker},
		Logger:    slog.New(slog.DiscardHandler),
		OverdueUC: overdue,
	})
	if err != nil {
		return nil, overdue, err
	}

	return d.(*overdueScheduler), overdue, nil
}

func TestOverdueScheduler_Disabled(t *testing.T) {
	s, _, err := newScheduler(t, &config.WorkerConfig{})
	require.NoError(t, err)
	assert.Nil(t, s.cron)
	assert.NoError(t, s.Serve(context.Background()))

	s, _, err = newScheduler(t, nil)
	require.NoError(t, err)
	assert.Nil(t, s.cron)
}

func TestOverdueScheduler_InvalidSchedule(t *testing.T) {
	_, _, err := newScheduler(t, &config.WorkerConfig{OverdueSchedule: "every tuesday", OverdueWindow: time.Hour})
	assert.Error(t, err)
}

func TestOverdueScheduler_SweepUsesTickWindow(t *testing.T) {
	s, overdue, err := newScheduler(t, &config.WorkerConfig{OverdueSchedule: "0 * * * *", OverdueWindow: time.Hour})
	require.NoError(t, err)
	require.Len(t, s.cron.Entries(), 1)

	tick := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return tick.Add(3 * time.Millisecond) }

	overdue.EXPECT().SweepOverdue(mock.Anything, tick, time.Hour).Return(2, nil).Once()
	s.sweep()

	overdue.EXPECT().SweepOverdue(mock.Anything, tick, time.Hour).Return(0, errors.New("db down")).Once()
	s.sweep()
}

func TestOverdueScheduler_StartAndStop(t *testing.T) {
	s, _, err := newScheduler(t, &config.WorkerConfig{OverdueSchedule: "@every 1h", OverdueWindow: time.Hour})
	require.NoError(t, err)

	require.NoError(t, s.Serve(context.Background()))
	assert.NoError(t, s.stop(context.Background()))
}

func TestCronLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &cronLogger{logger: slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	l.Info("schedule", "entry", 1)
	l.Error(errors.New("boom"), "panic", "entry", 1)

	assert.Contains(t, buf.String(), `"msg":"[Cron] schedule"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}
