package dispatch

import (
	"context"
	"strconv"

	"github.com/gabapcia/starwatch/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type metrics struct {
	attempts metric.Int64Counter
}

func newMetrics() (*metrics, error) {
	attempts, err := telemetry.Meter().Int64Counter("dispatch.attempts",
		metric.WithDescription("Notification delivery attempts by format and outcome."),
	)
	if err != nil {
		return nil, err
	}

	return &metrics{attempts: attempts}, nil
}

func (m *metrics) recordAttempt(ctx context.Context, formatted bool, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}

	m.attempts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("formatted", strconv.FormatBool(formatted)),
		attribute.String("outcome", outcome),
	))
}
