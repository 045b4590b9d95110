package app

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"algo-readme/internal/domain/ports"
	"algo-readme/internal/usecase"
)

// Runner is one README regeneration.
type Runner interface {
	Run(ctx context.Context) (*usecase.RunSummary, error)
}

// App runs the README update once, or on a cron schedule when one is configured.
type App struct {
	cron     *cron.Cron
	usecase  Runner
	logger   ports.Logger
	schedule string
	timeout  time.Duration
}

// New constructs an App instance. An empty schedule means a single run.
func New(update Runner, logger ports.Logger, schedule string) *App {
	return &App{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger}))),
		usecase:  update,
		logger:   logger,
		schedule: schedule,
		timeout:  10 * time.Minute,
	}
}

// Scheduled reports whether the app keeps running after the first update.
func (a *App) Scheduled() bool { return a.schedule != "" }

// Run executes the update immediately. Without a schedule it returns the
// result of that run; with one it keeps regenerating until ctx is cancelled.
func (a *App) Run(ctx context.Context) (*usecase.RunSummary, error) {
	if !a.Scheduled() {
		return a.usecase.Run(ctx)
	}

	if err := a.scheduleJob(); err != nil {
		return nil, err
	}

	a.logger.Info(ctx, "running first update immediately")
	summary, err := a.usecase.Run(ctx)
	if err != nil {
		a.logger.Error(ctx, "initial update failed", "error", err)
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return summary, nil
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()
		if _, err := a.usecase.Run(ctx); err != nil {
			a.logger.Error(ctx, "scheduled update failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", a.schedule, err)
	}
	return nil
}

// cronLogger routes the scheduler's own messages (e.g. skipped runs) to ports.Logger.
type cronLogger struct {
	logger ports.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(context.Background(), "cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(context.Background(), "cron: "+msg, append(keysAndValues, "error", err)...)
}
