// Package metrics defines the OpenTelemetry instruments recorded by the
// converter front ends.
package metrics

import (
	"context"
	"fmt"
	"time"

	"baseconv/pkg/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1} //nolint: gochecknoglobals

// Instrument names.
const (
	ConversionsName     = "baseconv.conversions"
	ConvertDurationName = "baseconv.convert.duration"
)

// Conversions records how many conversions ran and how long they took,
// labelled by outcome kind and radices.
type Conversions struct {
	count    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewConversions creates the conversion instruments on meter.
func NewConversions(meter metric.Meter) (*Conversions, error) {
	count, err := meter.Int64Counter(ConversionsName,
		metric.WithDescription("Number of conversions by outcome"),
		metric.WithUnit("{conversion}"))
	if err != nil {
		return nil, fmt.Errorf("could not create conversions counter: %w", err)
	}

	duration, err := meter.Float64Histogram(ConvertDurationName,
		metric.WithDescription("Time spent converting a single request"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create convert duration histogram: %w", err)
	}

	return &Conversions{count: count, duration: duration}, nil
}

// Record adds one conversion of req with the given outcome and elapsed time.
func (c *Conversions) Record(ctx context.Context, req domain.Request, out domain.Outcome, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("outcome", out.Kind.String()),
		attribute.String("from", req.From.String()),
		attribute.String("to", req.To.String()),
	)
	c.count.Add(ctx, 1, attrs)
	c.duration.Record(ctx, elapsed.Seconds(), attrs)
}
