package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/models"
)

var _ service.SyncMetrics = (*SyncMetrics)(nil)

// SyncMetrics counts captured, sent and ingested records.
type SyncMetrics struct {
	captured      metric.Int64Counter
	capturedItems metric.Int64Histogram
	transmissions metric.Int64Counter
	recordsSent   metric.Int64Counter
	ingested      metric.Int64Counter
}

func NewSyncMetrics(meter metric.Meter) (*SyncMetrics, error) {
	var (
		m   SyncMetrics
		err error
	)

	if m.captured, err = meter.Int64Counter("sync.records.captured",
		metric.WithDescription("Sync records journaled by the change interceptor"),
		metric.WithUnit("{record}")); err != nil {
		return nil, err
	}
	if m.capturedItems, err = meter.Int64Histogram("sync.records.items",
		metric.WithDescription("Items per captured sync record"),
		metric.WithUnit("{item}")); err != nil {
		return nil, err
	}
	if m.transmissions, err = meter.Int64Counter("sync.transmissions",
		metric.WithDescription("Transmissions sent to peers, by outcome"),
		metric.WithUnit("{transmission}")); err != nil {
		return nil, err
	}
	if m.recordsSent, err = meter.Int64Counter("sync.records.sent",
		metric.WithDescription("Records carried by sent transmissions"),
		metric.WithUnit("{record}")); err != nil {
		return nil, err
	}
	if m.ingested, err = meter.Int64Counter("sync.records.ingested",
		metric.WithDescription("Records received from peers, by import state"),
		metric.WithUnit("{record}")); err != nil {
		return nil, err
	}

	return &m, nil
}

func (m *SyncMetrics) RecordCaptured(ctx context.Context, items int) {
	m.captured.Add(ctx, 1)
	m.capturedItems.Record(ctx, int64(items))
}

func (m *SyncMetrics) TransmissionSent(ctx context.Context, serverUUID string, state models.TransmissionState, records int) {
	attrs := metric.WithAttributes(
		attribute.String("server_uuid", serverUUID),
		attribute.String("state", string(state)),
	)
	m.transmissions.Add(ctx, 1, attrs)
	m.recordsSent.Add(ctx, int64(records), attrs)
}

func (m *SyncMetrics) RecordIngested(ctx context.Context, serverUUID string, state models.SyncRecordState) {
	m.ingested.Add(ctx, 1, metric.WithAttributes(
		attribute.String("server_uuid", serverUUID),
		attribute.String("state", string(state)),
	))
}
