package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"news-curator/internal/domain/ports"
)

const (
	cronStopTimeout = 5 * time.Second
	probeRunTimeout = 2 * time.Minute
)

// HTTPServer is the transport the App runs.
type HTTPServer interface {
	Start() error
	Shutdown(ctx context.Context) error
}

// Job is a unit of background work run on the probe schedule.
type Job interface {
	Run(ctx context.Context) error
}

// Config controls the background schedule and shutdown bound.
type Config struct {
	// ProbeSchedule is a cron expression; empty disables the job.
	ProbeSchedule   string
	ShutdownTimeout time.Duration
}

// App manages the lifecycle of the HTTP server and the feed probe scheduler.
type App struct {
	cron   *cron.Cron
	server HTTPServer
	probe  Job
	logger ports.Logger
	cfg    Config
}

// New constructs an App instance.
func New(server HTTPServer, probe Job, logger ports.Logger, cfg Config) *App {
	return &App{
		cron:   cron.New(),
		server: server,
		probe:  probe,
		logger: logger,
		cfg:    cfg,
	}
}

// Run serves HTTP until ctx is cancelled or the server fails, running the
// probe once immediately and then on its schedule.
func (a *App) Run(ctx context.Context) error {
	if err := a.scheduleProbe(); err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.server.Start()
	}()

	if a.probeScheduled() {
		go a.runProbe(ctx, "initial feed probe failed")
		a.logger.Info(ctx, "starting scheduler", "cron", a.cfg.ProbeSchedule)
		a.cron.Start()
	}

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info(context.Background(), "shutdown requested")
	case err := <-serverErr:
		if err != nil {
			runErr = fmt.Errorf("http server: %w", err)
			a.logger.Error(context.Background(), "http server stopped", "error", err)
		}
	}

	a.stopScheduler()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout())
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error(shutdownCtx, "http server shutdown failed", "error", err)
		runErr = errors.Join(runErr, fmt.Errorf("shutdown http server: %w", err))
	}

	a.logger.Info(context.Background(), "application stopped")
	return runErr
}

func (a *App) scheduleProbe() error {
	if !a.probeScheduled() {
		return nil
	}

	_, err := a.cron.AddFunc(a.cfg.ProbeSchedule, func() {
		a.runProbe(context.Background(), "scheduled feed probe failed")
	})
	if err != nil {
		return fmt.Errorf("schedule feed probe %q: %w", a.cfg.ProbeSchedule, err)
	}
	return nil
}

func (a *App) probeScheduled() bool {
	return a.probe != nil && a.cfg.ProbeSchedule != ""
}

func (a *App) runProbe(parent context.Context, failMsg string) {
	ctx, cancel := context.WithTimeout(parent, probeRunTimeout)
	defer cancel()
	if err := a.probe.Run(ctx); err != nil {
		a.logger.Error(ctx, failMsg, "error", err)
	}
}

func (a *App) stopScheduler() {
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(cronStopTimeout):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
}

func (a *App) shutdownTimeout() time.Duration {
	if a.cfg.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}
	return a.cfg.ShutdownTimeout
}
