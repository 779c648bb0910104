package digest

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/starwatch/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule runs the digest at 23:59 UTC.
const DefaultSchedule = "59 23 * * *"

var ErrSchedulerAlreadyStarted = errors.New("scheduler already started")

// cronLogger forwards cron's internal logs to the context logger.
type cronLogger struct {
	ctx context.Context
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	logger.Debug(l.ctx, msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	logger.Error(l.ctx, msg, append(keysAndValues, "error", err)...)
}

// Scheduler runs a digest Service once per day. Runs never overlap and a
// panicking run is recovered and logged.
type Scheduler struct {
	mu        sync.Mutex
	isStarted bool
	cron      *cron.Cron

	service  Service
	schedule string
	now      func() time.Time
}

// Start registers the job and starts cron's goroutine. Runs use ctx.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrSchedulerAlreadyStarted
	}

	cl := cronLogger{ctx: ctx}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	if _, err := c.AddFunc(s.schedule, func() { s.runOnce(ctx) }); err != nil {
		return err
	}

	c.Start()
	s.cron = c
	s.isStarted = true

	logger.Info(ctx, "daily digest scheduled", "digest.schedule", s.schedule)
	return nil
}

func (s *Scheduler) runOnce(ctx context.Context) {
	// Run logs its own failures. The schedule keeps going.
	_ = s.service.Run(ctx, s.now())
}

// Close stops scheduling and waits for a running digest to finish.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	s.cron = nil
	s.isStarted = false
}

type SchedulerOption func(*Scheduler)

func NewScheduler(service Service, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		service:  service,
		schedule: DefaultSchedule,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithSchedule sets the cron expression, evaluated in UTC.
func WithSchedule(expr string) SchedulerOption {
	return func(s *Scheduler) {
		s.schedule = expr
	}
}

// WithSchedulerClock replaces time.Now when picking the day to summarize.
func WithSchedulerClock(now func() time.Time) SchedulerOption {
	return func(s *Scheduler) {
		s.now = now
	}
}
