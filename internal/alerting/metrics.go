package alerting

import (
	"context"

	"github.com/gabapcia/starwatch/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type metrics struct {
	candidates metric.Int64Counter
	sent       metric.Int64Counter
}

func newMetrics() (*metrics, error) {
	meter := telemetry.Meter()

	candidates, err := meter.Int64Counter("alerting.candidates",
		metric.WithDescription("Transfers above the threshold."),
	)
	if err != nil {
		return nil, err
	}

	sent, err := meter.Int64Counter("alerting.sent",
		metric.WithDescription("Alerts delivered."),
	)
	if err != nil {
		return nil, err
	}

	return &metrics{
		candidates: candidates,
		sent:       sent,
	}, nil
}

func (m *metrics) recordCandidate(ctx context.Context, source Source) {
	m.candidates.Add(ctx, 1, metric.WithAttributes(attribute.String("source", string(source))))
}

func (m *metrics) recordSent(ctx context.Context, source Source) {
	m.sent.Add(ctx, 1, metric.WithAttributes(attribute.String("source", string(source))))
}
