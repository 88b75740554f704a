// Package app wires the shared runtime of the gradebook binaries:
// configuration, logging, the domain event bus and the metrics recorder.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/alem-hub/gradebook/config"
	"github.com/alem-hub/gradebook/internal/application/command"
	"github.com/alem-hub/gradebook/internal/domain/shared"
	"github.com/alem-hub/gradebook/internal/domain/student"
	"github.com/alem-hub/gradebook/internal/infrastructure/messaging"
	"github.com/alem-hub/gradebook/internal/infrastructure/metrics"
	"github.com/alem-hub/gradebook/internal/interface/console"
	"github.com/alem-hub/gradebook/pkg/logger"
)

// Runtime holds the process-wide collaborators every binary needs.
type Runtime struct {
	Config  *config.Config
	Logger  *slog.Logger
	Bus     *messaging.InMemoryEventBus
	Metrics *metrics.Recorder
}

// New builds a Runtime from cfg. Close must be called on exit.
func New(cfg *config.Config, opts logger.Options) (*Runtime, error) {
	opts.Level = logger.ParseLevel(cfg.Observability.LogLevel)
	opts.Format = logger.ParseFormat(cfg.Observability.LogFormat)
	if opts.Service == "" {
		opts.Service = cfg.App.Name
	}
	log := logger.New(opts)

	rt := &Runtime{Config: cfg, Logger: log}

	busConfig := messaging.DefaultInMemoryEventBusConfig()
	busConfig.Logger = log
	busConfig.AsyncMode = cfg.Features.IsEnabled(config.FeatureEventsAsync)

	if cfg.Observability.MetricsEnabled {
		rt.Metrics = metrics.NewRecorder(cfg.Observability.MetricsNamespace)
		busConfig.Observer = rt.Metrics
	}

	rt.Bus = messaging.NewInMemoryEventBus(busConfig)

	if cfg.Features.IsEnabled(config.FeatureEventLog) {
		if err := rt.Bus.SubscribeAll(messaging.NewLogHandler(log)); err != nil {
			return nil, fmt.Errorf("subscribe event log: %w", err)
		}
	}
	if rt.Metrics != nil {
		if err := rt.Bus.SubscribeAll(rt.Metrics.EventHandler()); err != nil {
			return nil, fmt.Errorf("subscribe metrics: %w", err)
		}
	}

	log.Debug("runtime ready",
		"env", cfg.App.Environment,
		"async_events", busConfig.AsyncMode,
		"metrics", cfg.Observability.MetricsEnabled,
	)
	return rt, nil
}

// Publisher returns the bus as a shared.EventPublisher.
func (rt *Runtime) Publisher() shared.EventPublisher {
	return rt.Bus
}

// Observer returns the console observer, or nil when metrics are off.
// The nil check keeps a typed nil out of the interface.
func (rt *Runtime) Observer() console.Observer {
	if rt.Metrics == nil {
		return nil
	}
	return rt.Metrics
}

// SeedStudents stores the default roster through the create command so the
// usual events and metrics are produced. It is a no-op when seeding is off.
func (rt *Runtime) SeedStudents(ctx context.Context, create *command.CreateStudentHandler, repo student.Repository) error {
	if !rt.Config.Roster.Seed {
		return nil
	}

	for _, params := range student.DefaultRoster() {
		_, err := create.Handle(ctx, command.CreateStudentCommand{
			ID:            int(params.ID),
			Name:          params.Name,
			Age:           int(params.Age),
			Grades:        params.Grades,
			CorrelationID: "seed",
		})
		if err != nil {
			return fmt.Errorf("seed student %d: %w", params.ID, err)
		}
	}

	if rt.Metrics != nil {
		count, err := repo.Count(ctx)
		if err != nil {
			return fmt.Errorf("seed: count roster: %w", err)
		}
		rt.Metrics.SetRosterSize("students", count)
	}
	return nil
}

// Close drains the event bus and logs a metrics summary when enabled.
func (rt *Runtime) Close() {
	done := make(chan struct{})
	go func() {
		_ = rt.Bus.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(rt.Config.App.ShutdownTimeout):
		rt.Logger.Warn("event bus did not drain in time", logger.Latency(rt.Config.App.ShutdownTimeout))
	}

	if rt.Metrics == nil || !rt.Config.Features.IsEnabled(config.FeatureMetricsSummary) {
		return
	}

	snapshot, err := rt.Metrics.Snapshot()
	if err != nil {
		rt.Logger.Warn("failed to gather metrics", logger.Err(err))
		return
	}

	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make([]any, 0, len(names))
	for _, name := range names {
		attrs = append(attrs, slog.Float64(name, snapshot[name]))
	}
	rt.Logger.Info("session metrics", attrs...)
}
