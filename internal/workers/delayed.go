// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/config"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/service"
)

// DelayedWorker runs task once after delay has elapsed.
type DelayedWorker struct {
	name  string
	delay time.Duration
	task  Worker

	logger *logger.Logger
}

func NewDelayedWorker(name string, delay time.Duration, task Worker, logger *logger.Logger) *DelayedWorker {
	return &DelayedWorker{name: name, delay: delay, task: task, logger: logger}
}

// Run waits for the delay and then runs the task. If ctx is cancelled first
// the task never starts and ctx.Err() is returned.
func (d *DelayedWorker) Run(ctx context.Context) error {
	if d.delay > 0 {
		d.logger.Info().Str("worker", d.name).Dur("delay", d.delay).Msg("worker scheduled")

		timer := time.NewTimer(d.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			d.logger.Info().Str("worker", d.name).Msg("worker cancelled before start")
			return ctx.Err()
		case <-timer.C:
		}
	}

	return d.task.Run(d.logger.WithContext(ctx))
}

// NewCurrencySyncWorker schedules one currency sync cfg.SyncStartDelay after
// start. A failed sync is logged by the service and does not fail the
// worker: the API keeps serving whatever reference data is stored.
func NewCurrencySyncWorker(sync service.CurrencySyncService, cfg config.Workers, logger *logger.Logger) *DelayedWorker {
	task := WorkerFunc(func(ctx context.Context) error {
		_, err := sync.Run(ctx)
		if err != nil && ctx.Err() != nil {
			return ctx.Err()
		}
		return nil
	})

	return NewDelayedWorker("currency-sync", cfg.SyncStartDelay, task, logger)
}
