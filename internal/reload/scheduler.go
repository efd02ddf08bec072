package reload

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
)

// Scheduler wraps a gocron scheduler that re-indexes on a fixed interval.
type Scheduler struct {
	scheduler gocron.Scheduler
	reindex   ReindexFunc
	recorder  metrics.Recorder
}

// NewScheduler creates a scheduler that calls reindex every interval. Runs
// never overlap; a tick that arrives while one is running is rescheduled.
func NewScheduler(ctx context.Context, interval time.Duration, reindex ReindexFunc, recorder metrics.Recorder) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("reindex interval must be positive, got %s", interval)
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	sch := &Scheduler{scheduler: s, reindex: reindex, recorder: recorder}
	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { sch.run(ctx) }),
		gocron.WithName("periodic-reindex"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("failed to create periodic reindex job: %w", err)
	}
	return sch, nil
}

// Start begins the scheduler.
func (s *Scheduler) Start() {
	slog.Info("Starting reindex scheduler")
	s.scheduler.Start()
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() error {
	slog.Info("Stopping reindex scheduler")
	return s.scheduler.Shutdown()
}

func (s *Scheduler) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	start := time.Now()
	result := metrics.ResultSuccess
	if err := s.reindex(ctx); err != nil {
		result = metrics.ResultFailed
		slog.Error("Scheduled re-index failed", logfields.Error(err))
	} else {
		slog.Debug("Scheduled re-index finished", logfields.DurationMS(float64(time.Since(start).Milliseconds())))
	}
	s.recorder.IncReload(metrics.TriggerSchedule, result)
}
