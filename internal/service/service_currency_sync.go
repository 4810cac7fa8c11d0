// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/adapter"
	"github.com/MKhiriev/go-purchase-tracker/internal/config"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/store"
	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/sethvargo/go-retry"
)

// currencySyncService mirrors the treasury country/currency list.
//
// A run moves through Idle → Fetching → Reconciling → Done, or ends in
// Failed once every attempt is used up or the context is cancelled. Each
// attempt fetches every page into memory first; storage is touched only
// after the whole fetch succeeded, inside a single transaction.
type currencySyncService struct {
	treasury   adapter.TreasuryAdapter
	repository store.CountryCurrencyRepository

	maxAttempts int
	retryDelay  time.Duration
	pageSize    int
	allowEmpty  bool

	running atomic.Bool

	mu        sync.RWMutex
	status    models.SyncStatus
	observers []func(models.SyncStatus)

	now    func() time.Time
	logger *logger.Logger
}

// NewCurrencySyncService builds an idle sync from the worker settings.
func NewCurrencySyncService(treasury adapter.TreasuryAdapter, repository store.CountryCurrencyRepository, cfg config.Workers, logger *logger.Logger) CurrencySyncService {
	maxAttempts := cfg.SyncMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = config.DefaultSyncMaxAttempts
	}
	retryDelay := cfg.SyncRetryDelay
	if retryDelay <= 0 {
		retryDelay = config.DefaultSyncRetryDelay
	}
	pageSize := cfg.SyncPageSize
	if pageSize <= 0 {
		pageSize = config.DefaultSyncPageSize
	}

	return &currencySyncService{
		treasury:    treasury,
		repository:  repository,
		maxAttempts: maxAttempts,
		retryDelay:  retryDelay,
		pageSize:    pageSize,
		allowEmpty:  cfg.SyncAllowEmpty,
		status:      models.SyncStatus{State: models.SyncIdle, MaxAttempts: maxAttempts},
		now:         time.Now,
		logger:      logger,
	}
}

// Run performs one supervised sync. Only one run may be active at a time;
// a concurrent call returns ErrSyncAlreadyRunning.
func (s *currencySyncService) Run(ctx context.Context) (models.ReconcileResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		return models.ReconcileResult{}, ErrSyncAlreadyRunning
	}
	defer s.running.Store(false)

	log := logger.FromContext(ctx)
	log.Info().
		Str("func", "currencySyncService.Run").
		Int("max_attempts", s.maxAttempts).
		Int("page_size", s.pageSize).
		Msg("currency sync started")

	s.begin()

	var (
		attempt int
		result  models.ReconcileResult
	)
	backoff := retry.WithMaxRetries(uint64(s.maxAttempts-1), retry.NewConstant(s.retryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		res, err := s.attempt(ctx, attempt)
		if err == nil {
			result = res
			return nil
		}

		if ctx.Err() != nil || errors.Is(err, adapter.ErrCancelled) {
			return err
		}

		s.recordAttemptError(err)
		if attempt < s.maxAttempts {
			log.Warn().Err(err).
				Str("func", "currencySyncService.Run").
				Int("attempt", attempt).
				Int("max_attempts", s.maxAttempts).
				Dur("retry_in", s.retryDelay).
				Msg("currency sync attempt failed, retrying")
		}

		return retry.RetryableError(err)
	})
	if err != nil {
		if ctx.Err() != nil {
			err = fmt.Errorf("currency sync cancelled: %w", ctx.Err())
			log.Warn().Str("func", "currencySyncService.Run").Int("attempt", attempt).Msg("currency sync cancelled")
		} else {
			log.Error().Err(err).
				Str("func", "currencySyncService.Run").
				Int("attempt", attempt).
				Int("max_attempts", s.maxAttempts).
				Msg("currency sync failed")
		}
		s.finish(models.SyncFailed, nil, err)
		return models.ReconcileResult{}, err
	}

	s.finish(models.SyncDone, &result, nil)
	log.Info().
		Str("func", "currencySyncService.Run").
		Int("attempt", attempt).
		Int("fetched", result.Fetched).
		Int("inserted", result.Inserted).
		Int("deleted", result.Deleted).
		Msg("currency sync completed")

	return result, nil
}

// attempt fetches every page and reconciles the accumulated list.
func (s *currencySyncService) attempt(ctx context.Context, attempt int) (models.ReconcileResult, error) {
	s.transition(models.SyncFetching, attempt)

	fetched, err := s.fetchAll(ctx)
	if err != nil {
		return models.ReconcileResult{}, err
	}
	if len(fetched) == 0 && !s.allowEmpty {
		return models.ReconcileResult{}, ErrSyncEmptyFeed
	}

	if err = ctx.Err(); err != nil {
		return models.ReconcileResult{}, err
	}

	s.transition(models.SyncReconciling, attempt)

	result, err := s.repository.ReconcileCountryCurrencies(ctx, fetched)
	if err != nil {
		return models.ReconcileResult{}, fmt.Errorf("error reconciling country currencies: %w", err)
	}

	return result, nil
}

// fetchAll walks the pages until the reported total is reached or a page
// comes back without data.
func (s *currencySyncService) fetchAll(ctx context.Context) ([]models.CountryCurrency, error) {
	log := logger.FromContext(ctx)

	var all []models.CountryCurrency
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, found, err := s.treasury.CountryCurrenciesPage(ctx, page, s.pageSize)
		if err != nil {
			return nil, fmt.Errorf("error fetching page %d: %w", page, err)
		}

		if !found || len(resp.Data) == 0 {
			log.Warn().
				Str("func", "currencySyncService.fetchAll").
				Int("page", page).
				Msg("empty page from treasury, stopping pagination")
			break
		}

		all = append(all, resp.Data...)

		if page >= resp.Meta.TotalPages {
			break
		}
	}

	return all, nil
}

func (s *currencySyncService) Status() models.SyncStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot()
}

func (s *currencySyncService) OnStatusChange(fn func(models.SyncStatus)) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *currencySyncService) begin() {
	startedAt := s.now().UTC()
	s.update(func(st *models.SyncStatus) {
		*st = models.SyncStatus{
			State:       models.SyncIdle,
			MaxAttempts: s.maxAttempts,
			StartedAt:   &startedAt,
		}
	})
}

func (s *currencySyncService) transition(state models.SyncState, attempt int) {
	s.update(func(st *models.SyncStatus) {
		st.State = state
		st.Attempt = attempt
	})
}

func (s *currencySyncService) recordAttemptError(err error) {
	s.update(func(st *models.SyncStatus) {
		st.LastError = err.Error()
	})
}

func (s *currencySyncService) finish(state models.SyncState, result *models.ReconcileResult, err error) {
	finishedAt := s.now().UTC()
	s.update(func(st *models.SyncStatus) {
		st.State = state
		st.Result = result
		st.FinishedAt = &finishedAt
		if err != nil {
			st.LastError = err.Error()
		} else {
			st.LastError = ""
		}
	})
}

// update applies fn under the lock and notifies observers outside of it.
func (s *currencySyncService) update(fn func(st *models.SyncStatus)) {
	s.mu.Lock()
	fn(&s.status)
	snapshot := s.snapshot()
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, observer := range observers {
		observer(snapshot)
	}
}

// snapshot copies the status so callers cannot alias the pointer fields.
// Callers hold s.mu.
func (s *currencySyncService) snapshot() models.SyncStatus {
	st := s.status
	if st.Result != nil {
		result := *st.Result
		st.Result = &result
	}
	if st.StartedAt != nil {
		startedAt := *st.StartedAt
		st.StartedAt = &startedAt
	}
	if st.FinishedAt != nil {
		finishedAt := *st.FinishedAt
		st.FinishedAt = &finishedAt
	}

	return st
}
