// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/models"
)

// SessionCheckFunc receives the outcome of every keeper tick.
type SessionCheckFunc func(action models.SessionAction, err error)

type clientSessionKeeper struct {
	sessionService ClientSessionService
	notify         SessionCheckFunc
	logger         *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSessionKeeper creates a keeper that calls sessionService.Check on
// a ticker. The keeper is idle until Start is called. notify may be nil.
func NewClientSessionKeeper(sessionService ClientSessionService, notify SessionCheckFunc, logger *logger.Logger) ClientSessionKeeper {
	return &clientSessionKeeper{sessionService: sessionService, notify: notify, logger: logger}
}

// Start implements ClientSessionKeeper. It stops any previously running
// keeper, then launches a background goroutine that calls Check every
// interval. Non-positive values fall back to a 10 second interval and a one
// minute threshold. The goroutine exits when ctx is cancelled or Stop is
// called.
func (k *clientSessionKeeper) Start(ctx context.Context, interval, threshold time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if threshold <= 0 {
		threshold = time.Minute
	}

	k.Stop()

	k.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	k.cancel = cancel
	k.wg.Add(1)
	k.mu.Unlock()

	go func() {
		defer k.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				k.tick(jobCtx, threshold)
			}
		}
	}()
}

func (k *clientSessionKeeper) tick(ctx context.Context, threshold time.Duration) {
	action, err := k.sessionService.Check(ctx, threshold)
	if err != nil {
		k.logger.Warn().Err(err).Stringer("action", action).Msg("session check failed")
	} else if action != models.SessionKeep {
		k.logger.Info().Stringer("action", action).Msg("session checked")
	}

	if k.notify != nil {
		k.notify(action, err)
	}
}

// Stop implements ClientSessionKeeper. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the keeper is not running.
func (k *clientSessionKeeper) Stop() {
	k.mu.Lock()
	cancel := k.cancel
	k.cancel = nil
	k.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	k.wg.Wait()
}
