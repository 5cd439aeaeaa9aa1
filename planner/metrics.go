package planner

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level meter for search metrics. Instruments resolve against the
// global MeterProvider, so they are no-ops until an application installs one.
var meter = otel.Meter("balancedforest.planner")

var (
	plansTotal      metric.Int64Counter
	cutsTotal       metric.Int64Counter
	rollbacksTotal  metric.Int64Counter
	candidatesTotal metric.Int64Counter
	planDuration    metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// metricsEnabled controls whether Plan records metrics.
var metricsEnabled atomic.Bool

func init() {
	metricsEnabled.Store(true)
}

// SetMetricsEnabled turns metric recording on or off.
//
// Thread Safety: Safe for concurrent use.
func SetMetricsEnabled(enabled bool) {
	metricsEnabled.Store(enabled)
}

// initMetrics creates the instruments once.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		plansTotal, err = meter.Int64Counter(
			"planner_plans_total",
			metric.WithDescription("Total number of completed partition searches"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		cutsTotal, err = meter.Int64Counter(
			"planner_cuts_total",
			metric.WithDescription("Total number of trial cuts evaluated"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		rollbacksTotal, err = meter.Int64Counter(
			"planner_rollbacks_total",
			metric.WithDescription("Total number of checkpoint rollbacks"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		candidatesTotal, err = meter.Int64Counter(
			"planner_candidates_total",
			metric.WithDescription("Total number of candidate forests ranked"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		planDuration, err = meter.Float64Histogram(
			"planner_plan_duration_seconds",
			metric.WithDescription("Duration of partition searches in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

// recordPlan publishes the counters of one Plan call.
func recordPlan(ctx context.Context, s Stats, maxCuts int, elapsed time.Duration, failed bool) {
	if !metricsEnabled.Load() {
		return
	}
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.Int("max_cuts", maxCuts),
		attribute.Bool("failed", failed),
	)
	plansTotal.Add(ctx, 1, attrs)
	cutsTotal.Add(ctx, int64(s.Cuts), attrs)
	rollbacksTotal.Add(ctx, int64(s.Rollbacks), attrs)
	candidatesTotal.Add(ctx, int64(s.Candidates), attrs)
	planDuration.Record(ctx, elapsed.Seconds(), attrs)
}
