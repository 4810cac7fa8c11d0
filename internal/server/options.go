// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/workers"
)

// defaultShutdownTimeout bounds how long in-flight requests may drain.
const defaultShutdownTimeout = 10 * time.Second

// Option customises a server built by [NewServer].
type Option func(*server)

// WithWorkers runs bg next to the transports. The workers share the
// server's lifetime context and are waited for during shutdown.
func WithWorkers(bg *workers.Workers) Option {
	return func(s *server) {
		s.workers = bg
	}
}

// WithShutdownHook registers fn to run after the transports and workers
// stopped, for example to flush telemetry exporters. Hooks run in
// registration order.
func WithShutdownHook(name string, fn func(ctx context.Context) error) Option {
	return func(s *server) {
		s.hooks = append(s.hooks, shutdownHook{name: name, fn: fn})
	}
}

// WithShutdownTimeout overrides the drain deadline.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(s *server) {
		if timeout > 0 {
			s.shutdownTimeout = timeout
		}
	}
}

type shutdownHook struct {
	name string
	fn   func(ctx context.Context) error
}
