// Package indexwatch compares the chain head with the height last indexed by
// the block explorer and alerts when the explorer falls too far behind.
//
// The decision itself is the pure CheckState; Service is the poller that
// feeds it and owns the NotificationState.
package indexwatch

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/starwatch/internal/dispatch"
	"github.com/gabapcia/starwatch/internal/pkg/logger"
	"github.com/gabapcia/starwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/starwatch/internal/pkg/telemetry"
	"github.com/gabapcia/starwatch/internal/pkg/x/chflow"

	"github.com/ccoveille/go-safecast"
	"go.opentelemetry.io/otel/metric"
)

const defaultPollInterval = 50 * time.Second

// HeightSource reports the chain head.
type HeightSource interface {
	CurrentHeight(ctx context.Context) (uint64, error)
}

// IndexCache reports the last height indexed by the explorer. A missing
// value is an error, never a zero height.
type IndexCache interface {
	CachedHeight(ctx context.Context) (uint64, error)
}

type Service interface {
	// Run polls until ctx is cancelled. Iterations never overlap.
	Run(ctx context.Context) error
}

type service struct {
	heights  HeightSource
	cache    IndexCache
	notifier dispatch.Notifier
	cfg      Config

	pollInterval time.Duration
	retry        retry.Retry
	now          func() time.Time

	// state is only touched by the goroutine running Run.
	state NotificationState
	lag   metric.Int64Gauge
}

var _ Service = (*service)(nil)

// FormatAlert renders the index lag alert.
func FormatAlert(r Result) string {
	return fmt.Sprintf(
		"🚨 Index lag alert: chain height %d, indexed height %d, difference %d. The explorer index may not be keeping up.",
		r.CurrentHeight,
		r.CachedHeight,
		r.Difference,
	)
}

func (s *service) fetchHeights(ctx context.Context) (current, cached uint64, err error) {
	err = s.retry.Execute(ctx, func() error {
		current, err = s.heights.CurrentHeight(ctx)
		return err
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to fetch chain height: %w", err)
	}

	err = s.retry.Execute(ctx, func() error {
		cached, err = s.cache.CachedHeight(ctx)
		return err
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to fetch indexed height: %w", err)
	}

	return current, cached, nil
}

func (s *service) recordLag(ctx context.Context, current, cached uint64) {
	if current < cached {
		return
	}

	lag, err := safecast.ToInt64(current - cached)
	if err != nil {
		logger.Warn(ctx, "index lag does not fit the gauge", "error", err)
		return
	}

	s.lag.Record(ctx, lag)
}

// tick runs one poll. Lookup failures skip the tick.
func (s *service) tick(ctx context.Context) {
	current, cached, err := s.fetchHeights(ctx)
	if err != nil {
		logger.Error(ctx, "index watch tick skipped", "error", err)
		return
	}

	s.recordLag(ctx, current, cached)

	now, err := safecast.ToUint64(s.now().Unix())
	if err != nil {
		logger.Error(ctx, "clock is before the epoch", "error", err)
		return
	}

	result := CheckState(current, cached, s.state, s.cfg, now)
	switch result.Action {
	case ShouldWait:
		logger.Debug(ctx, "chain is behind the index, waiting",
			"chain.height", current,
			"index.height", cached,
		)
	case ShouldNotify:
		if err := s.notifier.Notify(ctx, FormatAlert(result)); err != nil {
			logger.Error(ctx, "failed to deliver index lag alert",
				"index.difference", result.Difference,
				"error", err,
			)
			return
		}

		s.state.Update(now)
		logger.Info(ctx, "index lag alert delivered",
			"chain.height", current,
			"index.height", cached,
			"index.difference", result.Difference,
		)
	}
}

func (s *service) Run(ctx context.Context) error {
	logger.Info(ctx, "index watch started",
		"index.max_block_difference", s.cfg.MaxBlockDifference,
		"index.max_notify_interval", s.cfg.MaxNotifyInterval,
		"index.poll_interval", s.pollInterval.String(),
	)

	for {
		s.tick(ctx)

		if !chflow.Sleep(ctx, s.pollInterval) {
			return nil
		}
	}
}

type config struct {
	pollInterval time.Duration
	retry        retry.Retry
	now          func() time.Time
}

type Option func(*config)

// New returns the poller. Zero thresholds are valid, see Config.
func New(heights HeightSource, cache IndexCache, notifier dispatch.Notifier, cfg Config, opts ...Option) (*service, error) {
	c := config{
		pollInterval: defaultPollInterval,
		retry:        retry.New(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(&c)
	}

	lag, err := telemetry.Meter().Int64Gauge("indexwatch.lag",
		metric.WithDescription("Blocks between the chain head and the explorer index."),
	)
	if err != nil {
		return nil, err
	}

	return &service{
		heights:      heights,
		cache:        cache,
		notifier:     notifier,
		cfg:          cfg,
		pollInterval: c.pollInterval,
		retry:        c.retry,
		now:          c.now,
		lag:          lag,
	}, nil
}

func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}
