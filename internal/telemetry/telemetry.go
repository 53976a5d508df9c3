// Package telemetry counts landing attempts and terrain layouts with
// OpenTelemetry instruments.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "lunar-lander/internal/telemetry"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Recorder holds the lander's instruments.
type Recorder struct {
	attempts  metric.Int64Counter
	speed     metric.Float64Histogram
	score     metric.Float64Histogram
	terrains  metric.Int64Counter
	conflicts metric.Int64Counter
}

// New creates a Recorder on the global meter provider (no-op if not configured).
func New() (*Recorder, error) {
	m := meter()
	r := &Recorder{}

	var err error
	r.attempts, err = m.Int64Counter(
		"lander.attempts",
		metric.WithDescription("Completed landing attempts"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating attempts counter: %w", err)
	}

	r.speed, err = m.Float64Histogram(
		"lander.touchdown.speed",
		metric.WithDescription("Speed at first ground contact"),
		metric.WithUnit("m/s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating touchdown speed histogram: %w", err)
	}

	r.score, err = m.Float64Histogram(
		"lander.score",
		metric.WithDescription("Score of completed attempts"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating score histogram: %w", err)
	}

	r.terrains, err = m.Int64Counter(
		"lander.terrain.generated",
		metric.WithDescription("Generated terrains"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating terrain counter: %w", err)
	}

	r.conflicts, err = m.Int64Counter(
		"lander.terrain.soft_conflicts",
		metric.WithDescription("Zones accepted despite violating the spacing rule"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating soft conflict counter: %w", err)
	}

	return r, nil
}

// Attempt records one finished attempt.
func (r *Recorder) Attempt(ctx context.Context, outcome, zone string, speed, score float64) {
	if r == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.String("zone", zone),
	)
	r.attempts.Add(ctx, 1, attrs)
	r.speed.Record(ctx, speed, attrs)
	r.score.Record(ctx, score, attrs)
}

// Terrain records one generated layout.
func (r *Recorder) Terrain(ctx context.Context, zones int, fallback bool, softConflicts int) {
	if r == nil {
		return
	}
	r.terrains.Add(ctx, 1, metric.WithAttributes(
		attribute.Int("zones", zones),
		attribute.Bool("fallback", fallback),
	))
	if softConflicts > 0 {
		r.conflicts.Add(ctx, int64(softConflicts))
	}
}
