package opaquebox

import (
	"context"
	"fmt"

	"github.com/LerianStudio/lib-opaquebox/opaquebox/internal/nilcheck"
	"go.opentelemetry.io/otel/metric"
)

// Metric names registered by Instrument.
const (
	MetricAllocations = "opaquebox.allocations"
	MetricReleases    = "opaquebox.releases"
	MetricLive        = "opaquebox.live"
	MetricLiveBytes   = "opaquebox.live_bytes"
)

// Instrument exposes the package accounting through meter as observable
// instruments. Call Unregister on the returned registration to detach.
//
// Example:
//
//	reg, err := opaquebox.Instrument(otel.Meter("payments"))
//	if err != nil {
//		return err
//	}
//	defer reg.Unregister()
func Instrument(meter metric.Meter) (metric.Registration, error) {
	if nilcheck.IsNil(meter) {
		return nil, ErrNilMeter
	}

	allocations, err := meter.Int64ObservableCounter(MetricAllocations,
		metric.WithDescription("Total number of values moved into a Box"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", MetricAllocations, err)
	}

	releases, err := meter.Int64ObservableCounter(MetricReleases,
		metric.WithDescription("Total number of Box values released"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", MetricReleases, err)
	}

	live, err := meter.Int64ObservableGauge(MetricLive,
		metric.WithDescription("Boxes constructed and not yet closed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", MetricLive, err)
	}

	liveBytes, err := meter.Int64ObservableGauge(MetricLiveBytes,
		metric.WithDescription("Top-level payload bytes owned by live Boxes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", MetricLiveBytes, err)
	}

	reg, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		stats := ReadStats()

		o.ObserveInt64(allocations, toInt64(stats.Allocations))
		o.ObserveInt64(releases, toInt64(stats.Releases))
		o.ObserveInt64(live, stats.Live())
		o.ObserveInt64(liveBytes, stats.LiveBytes())

		return nil
	}, allocations, releases, live, liveBytes)
	if err != nil {
		return nil, fmt.Errorf("register opaquebox callback: %w", err)
	}

	return reg, nil
}
