package main

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/katalvlaran/balancedforest/planner"
)

// initMetrics installs a global MeterProvider for cfg.Exporter and returns
// its shutdown function, which flushes pending data. With exporter "none"
// planner metric recording is switched off and shutdown is a no-op.
func initMetrics(_ context.Context, cfg MetricsConfig, w io.Writer) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.Exporter {
	case "none":
		planner.SetMetricsEnabled(false)
		return noop, nil

	case "stdout":
		exporter, err := stdoutmetric.New(
			stdoutmetric.WithWriter(w),
			stdoutmetric.WithPrettyPrint(),
		)
		if err != nil {
			return noop, fmt.Errorf("create stdout metric exporter: %w", err)
		}

		res := resource.NewWithAttributes(
			"",
			attribute.String("service.name", cfg.ServiceName),
		)
		// Flushed once by Shutdown at the end of the run.
		reader := sdkmetric.NewPeriodicReader(exporter)
		mp := sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(reader),
		)
		otel.SetMeterProvider(mp)
		planner.SetMetricsEnabled(true)

		return mp.Shutdown, nil

	default:
		return noop, fmt.Errorf("metrics exporter %q: %w", cfg.Exporter, ErrInvalidConfig)
	}
}
