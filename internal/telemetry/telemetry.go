// Package telemetry exports synchronization metrics with OpenTelemetry.
package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

const (
	meterName      = "github.com/MKhiriev/go-sync-keeper"
	exportInterval = 30 * time.Second
	exportTimeout  = 10 * time.Second
)

// Telemetry owns the meter provider and the sync instruments built on it.
type Telemetry struct {
	MeterProvider *sdkmetric.MeterProvider
	Metrics       *SyncMetrics

	logger *logger.Logger
}

// New sets up the OTLP metric exporter. When telemetry is disabled the
// instruments are backed by a no-op meter and nothing is exported.
func New(ctx context.Context, cfg config.Telemetry, version string, logger *logger.Logger) (*Telemetry, error) {
	if !cfg.Enabled {
		logger.Info().Msg("telemetry disabled")
		metrics, err := NewSyncMetrics(noop.NewMeterProvider().Meter(meterName))
		if err != nil {
			return nil, err
		}
		return &Telemetry{Metrics: metrics, logger: logger}, nil
	}

	logger.Info().Str("endpoint", cfg.OTLPEndpoint).Msg("initializing telemetry")

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(version),
		),
		resource.WithHost(),
	)
	if err != nil {
		return nil, err
	}

	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(cfg.OTLPEndpoint),
		otlpmetricgrpc.WithInsecure(),
		otlpmetricgrpc.WithTimeout(exportTimeout),
	)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter,
			sdkmetric.WithInterval(exportInterval),
		)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	metrics, err := NewSyncMetrics(provider.Meter(meterName))
	if err != nil {
		return nil, errors.Join(err, provider.Shutdown(ctx))
	}

	return &Telemetry{
		MeterProvider: provider,
		Metrics:       metrics,
		logger:        logger,
	}, nil
}

// Shutdown flushes pending measurements.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t.MeterProvider == nil {
		return nil
	}

	t.logger.Info().Msg("shutting down telemetry...")
	return t.MeterProvider.Shutdown(ctx)
}
