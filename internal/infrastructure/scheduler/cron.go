// Package scheduler triggers the daily compliance pass on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"pcg_compliance/internal/usecase"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Runner owns the cron instance. All schedules are evaluated in UTC.
type Runner struct {
	cron    *cron.Cron
	daily   usecase.ISchedulerUseCase
	log     zerolog.Logger
	timeout time.Duration
	now     func() time.Time
}

func NewRunner(daily usecase.ISchedulerUseCase, log zerolog.Logger, timeout time.Duration) *Runner {
	log = log.With().Str("component", "cron").Logger()
	cl := cronLogger{log: log}
	return &Runner{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		daily:   daily,
		log:     log,
		timeout: timeout,
		now:     time.Now,
	}
}

// Schedule registers the daily pass under spec (standard 5-field cron).
func (r *Runner) Schedule(ctx context.Context, spec string) error {
	if _, err := r.cron.AddFunc(spec, func() { _, _ = r.RunOnce(ctx, r.now().UTC()) }); err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}
	r.log.Info().Str("spec", spec).Msg("daily pass scheduled")
	return nil
}

// Start blocks until ctx is done, then waits for a running pass to finish.
func (r *Runner) Start(ctx context.Context) {
	r.cron.Start()
	<-ctx.Done()
	r.log.Info().Msg("stopping scheduler")
	<-r.cron.Stop().Done()
}

// RunOnce executes a single pass with the configured timeout.
func (r *Runner) RunOnce(ctx context.Context, now time.Time) (usecase.SchedulerReport, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	report, err := r.daily.RunDaily(ctx, now)
	if err != nil {
		r.log.Error().Err(err).Msg("daily pass failed")
	}
	return report, err
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
