// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package observability

import (
	"context"

	"github.com/MKhiriev/go-purchase-tracker/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SyncMetrics counts finished currency sync runs and the changes they applied.
type SyncMetrics struct {
	runs    metric.Int64Counter
	changes metric.Int64Counter
}

func NewSyncMetrics() (*SyncMetrics, error) {
	meter := otel.Meter(instrumentationName)

	runs, err := meter.Int64Counter(
		"currency_sync.runs",
		metric.WithDescription("Finished currency sync runs by final state"),
		metric.WithUnit("{runs}"),
	)
	if err != nil {
		return nil, err
	}

	changes, err := meter.Int64Counter(
		"currency_sync.changes",
		metric.WithDescription("Country currency rows inserted or deleted by the sync"),
		metric.WithUnit("{rows}"),
	)
	if err != nil {
		return nil, err
	}

	return &SyncMetrics{runs: runs, changes: changes}, nil
}

// Observe is registered as a sync status observer. Only terminal states are
// recorded.
func (m *SyncMetrics) Observe(status models.SyncStatus) {
	if !status.State.IsTerminal() {
		return
	}

	ctx := context.Background()
	m.runs.Add(ctx, 1, metric.WithAttributes(
		attribute.String("state", string(status.State)),
		attribute.Int("attempt", status.Attempt),
	))

	if status.Result != nil {
		m.changes.Add(ctx, int64(status.Result.Inserted), metric.WithAttributes(attribute.String("change", "inserted")))
		m.changes.Add(ctx, int64(status.Result.Deleted), metric.WithAttributes(attribute.String("change", "deleted")))
	}
}
