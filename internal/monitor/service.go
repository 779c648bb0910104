// Package monitor supervises the watchers: the block and event streams
// feeding the alert pipeline, the index lag poller and the daily digest
// schedule. The first watcher to fail ends all of them and is reported on
// Err.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/starwatch/internal/alerting"
	"github.com/gabapcia/starwatch/internal/chainstream"
	"github.com/gabapcia/starwatch/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Runner is a watcher that polls until ctx is cancelled.
type Runner interface {
	Run(ctx context.Context) error
}

// Scheduler is a watcher driven by its own clock.
type Scheduler interface {
	Start(ctx context.Context) error
	Close()
}

type Service interface {
	// Start launches every configured watcher. Returns
	// ErrServiceAlreadyStarted if the service is running.
	Start(ctx context.Context) error

	// Err delivers the error that stopped the watchers, if any. It is
	// closed once they all returned.
	Err() <-chan error

	// Close stops the watchers and waits for them. It is safe to call on a
	// service that never started.
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc
	errCh     chan error

	chainstream chainstream.Service
	alerting    alerting.Service
	indexwatch  Runner
	digest      Scheduler
	events      bool
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	if s.digest != nil {
		if err := s.digest.Start(ctx); err != nil {
			cancel()
			return fmt.Errorf("failed to start digest schedule: %w", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ctx := logger.Derive(gctx, "watcher", "blocks")
		logger.Info(ctx, "block watcher started")
		if err := s.chainstream.SubscribeBlocks(ctx, s.alerting.HandleBlock); err != nil {
			return fmt.Errorf("block watcher: %w", err)
		}
		return nil
	})

	if s.events {
		g.Go(func() error {
			ctx := logger.Derive(gctx, "watcher", "events")
			logger.Info(ctx, "event watcher started")
			if err := s.chainstream.SubscribeEvents(ctx, s.alerting.HandleEvent); err != nil {
				return fmt.Errorf("event watcher: %w", err)
			}
			return nil
		})
	}

	if s.indexwatch != nil {
		g.Go(func() error {
			if err := s.indexwatch.Run(logger.Derive(gctx, "watcher", "index")); err != nil {
				return fmt.Errorf("index watcher: %w", err)
			}
			return nil
		})
	}

	errCh := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(errCh)

		if err := g.Wait(); err != nil {
			logger.Error(ctx, "watchers stopped", "error", err)
			errCh <- err
		}
	}()

	s.errCh = errCh
	s.closeFunc = func() {
		cancel()
		<-done
		if s.digest != nil {
			s.digest.Close()
		}
	}
	s.isStarted = true
	return nil
}

func (s *service) Err() <-chan error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.errCh
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

type config struct {
	indexwatch Runner
	digest     Scheduler
	events     bool
}

type Option func(*config)

// New wires the block stream into the alert pipeline. Event alerts, the
// index watcher and the digest schedule are enabled through options.
func New(cs chainstream.Service, a alerting.Service, opts ...Option) *service {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		chainstream: cs,
		alerting:    a,
		indexwatch:  cfg.indexwatch,
		digest:      cfg.digest,
		events:      cfg.events,
	}
}

// WithEventAlerts also feeds the event stream to the alert pipeline.
func WithEventAlerts() Option {
	return func(c *config) {
		c.events = true
	}
}

func WithIndexWatch(r Runner) Option {
	return func(c *config) {
		c.indexwatch = r
	}
}

func WithDigest(s Scheduler) Option {
	return func(c *config) {
		c.digest = s
	}
}
