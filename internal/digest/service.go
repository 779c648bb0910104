// Package digest sends one summary per day of the large transfers the
// search index recorded for that day.
package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/starwatch/internal/dispatch"
	"github.com/gabapcia/starwatch/internal/pkg/logger"
	"github.com/gabapcia/starwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/starwatch/internal/pkg/telemetry"
	"github.com/gabapcia/starwatch/internal/transfer"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const dateLayout = "2006-01-02"

// Searcher queries the search index for transfers in [from, to] whose amount
// is greater than minAmount, newest first.
type Searcher interface {
	SearchLargeTransfers(ctx context.Context, from, to time.Time, minAmount *uint256.Int) ([]Record, error)
}

type Service interface {
	// Run summarizes day (in UTC) and dispatches the summary. A failed search
	// is returned without dispatching anything.
	Run(ctx context.Context, day time.Time) error
}

type service struct {
	searcher  Searcher
	notifier  dispatch.Notifier
	minAmount *uint256.Int
	retry     retry.Retry
}

var _ Service = (*service)(nil)

// DayRange returns the first and last millisecond of day in UTC.
func DayRange(day time.Time) (from, to time.Time) {
	y, m, d := day.UTC().Date()
	from = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	to = from.Add(24*time.Hour - time.Millisecond)
	return from, to
}

// FormatSummary renders the digest message for day.
func FormatSummary(day time.Time, s Summary) string {
	date := day.UTC().Format(dateLayout)
	if s.Count() == 0 {
		return fmt.Sprintf("📊 Daily transfer summary %s\n\nNo large transfers today.", date)
	}

	return fmt.Sprintf(
		"📊 Daily transfer summary %s\n\nLarge transfers: %d\nTotal amount: %s STC",
		date,
		s.Count(),
		transfer.FormatUnits(s.Total),
	)
}

func (s *service) Run(ctx context.Context, day time.Time) error {
	from, to := DayRange(day)

	ctx = logger.Derive(ctx, "digest.run_id", uuid.NewString(), "digest.date", from.Format(dateLayout))
	ctx, span := telemetry.Tracer().Start(ctx, "digest.Run", trace.WithAttributes(
		attribute.String("digest.date", from.Format(dateLayout)),
	))
	defer span.End()

	var records []Record
	err := s.retry.Execute(ctx, func() (err error) {
		records, err = s.searcher.SearchLargeTransfers(ctx, from, to, s.minAmount)
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		logger.Error(ctx, "daily digest skipped, search failed", "error", err)
		return fmt.Errorf("failed to search transfers: %w", err)
	}

	summary := Summarize(records, s.minAmount)
	logger.Info(ctx, "daily digest summarized",
		"digest.hits", len(records),
		"digest.count", summary.Count(),
		"digest.duplicates", summary.Duplicates,
		"digest.undecodable", summary.Undecodable,
	)
	span.SetAttributes(attribute.Int("digest.count", summary.Count()))

	if err := s.notifier.Notify(ctx, FormatSummary(day, summary)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "dispatch failed")
		logger.Error(ctx, "failed to dispatch daily digest", "error", err)
		return fmt.Errorf("failed to dispatch daily digest: %w", err)
	}

	return nil
}

type config struct {
	retry retry.Retry
}

type Option func(*config)

func New(searcher Searcher, notifier dispatch.Notifier, minAmount *uint256.Int, opts ...Option) *service {
	cfg := config{
		retry: retry.New(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		searcher:  searcher,
		notifier:  notifier,
		minAmount: minAmount,
		retry:     cfg.retry,
	}
}

func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}
