// Package dispatch delivers alert messages to a single chat with bounded
// retry and a degraded fallback.
//
// A message is escaped for MarkdownV2 and sent formatted up to
// MaxFormattedAttempts times with a linearly growing pause between attempts
// (attempt index times the base delay). If every formatted attempt fails, the
// original text is sent once more without formatting. When that also fails
// Notify returns ErrRetriesExhausted.
//
// The dispatcher keeps no state between calls and is safe for concurrent use.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/starwatch/internal/pkg/logger"
	"github.com/gabapcia/starwatch/internal/pkg/x/chflow"
)

const (
	// MaxFormattedAttempts is the number of MarkdownV2 attempts made before
	// falling back to plain text.
	MaxFormattedAttempts = 3

	defaultBaseDelay = 2 * time.Second
)

// ErrRetriesExhausted is returned when the plain text fallback also failed.
var ErrRetriesExhausted = errors.New("notification retries exhausted")

// Channel is the transport to a chat service.
type Channel interface {
	// Send posts text to target. formatted selects MarkdownV2 parsing.
	Send(ctx context.Context, target, text string, formatted bool) error
}

// Notifier delivers a plain text message. It is the single capability shared
// by the alert pipeline, the index watchdog and the daily digest.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

type dispatcher struct {
	channel   Channel
	target    string
	baseDelay time.Duration
	metrics   *metrics
}

var _ Notifier = (*dispatcher)(nil)

func (d *dispatcher) attempt(ctx context.Context, n int, text string, formatted bool) error {
	err := d.channel.Send(ctx, d.target, text, formatted)
	d.metrics.recordAttempt(ctx, formatted, err)

	if err != nil {
		logger.Warn(ctx, "notification attempt failed",
			"dispatch.attempt", n,
			"dispatch.formatted", formatted,
			"error", err,
		)
		return err
	}

	logger.Debug(ctx, "notification delivered",
		"dispatch.attempt", n,
		"dispatch.formatted", formatted,
	)
	return nil
}

func (d *dispatcher) Notify(ctx context.Context, text string) error {
	var (
		escaped = EscapeMarkdownV2(text)
		errs    []error
	)

	for i := 1; i <= MaxFormattedAttempts; i++ {
		if i > 1 && !chflow.Sleep(ctx, time.Duration(i-1)*d.baseDelay) {
			return ctx.Err()
		}

		err := d.attempt(ctx, i, escaped, true)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}

	err := d.attempt(ctx, MaxFormattedAttempts+1, text, false)
	if err == nil {
		return nil
	}
	errs = append(errs, err)

	return fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, len(errs), errors.Join(errs...))
}

type config struct {
	baseDelay time.Duration
}

type Option func(*config)

// New returns a Notifier sending to target through channel.
func New(channel Channel, target string, opts ...Option) (*dispatcher, error) {
	cfg := config{
		baseDelay: defaultBaseDelay,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	m, err := newMetrics()
	if err != nil {
		return nil, err
	}

	return &dispatcher{
		channel:   channel,
		target:    target,
		baseDelay: cfg.baseDelay,
		metrics:   m,
	}, nil
}

// WithBaseDelay sets the backoff unit. The pause before formatted attempt
// n+1 is n times d.
func WithBaseDelay(d time.Duration) Option {
	return func(c *config) {
		c.baseDelay = d
	}
}
