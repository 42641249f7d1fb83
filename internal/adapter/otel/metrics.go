package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "dealflow"

// Metrics holds all dealflow metric instruments.
type Metrics struct {
	DealsWon        metric.Int64Counter
	WinDuration     metric.Float64Histogram
	DashboardHits   metric.Int64Counter
	DashboardMisses metric.Int64Counter
}

// NewMetrics creates all metric instruments.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.DealsWon, err = meter.Int64Counter("dealflow.deals.won",
		metric.WithDescription("Number of deals transitioned to won"))
	if err != nil {
		return nil, err
	}

	m.WinDuration, err = meter.Float64Histogram("dealflow.win.duration_seconds",
		metric.WithDescription("Win cascade duration in seconds"))
	if err != nil {
		return nil, err
	}

	m.DashboardHits, err = meter.Int64Counter("dealflow.dashboard.cache_hits",
		metric.WithDescription("Dashboard aggregate cache hits"))
	if err != nil {
		return nil, err
	}

	m.DashboardMisses, err = meter.Int64Counter("dealflow.dashboard.cache_misses",
		metric.WithDescription("Dashboard aggregate cache misses"))
	if err != nil {
		return nil, err
	}

	return m, nil
}
