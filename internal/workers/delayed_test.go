package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/config"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/mock"
	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDelayedWorker_RunsTaskAfterDelay(t *testing.T) {
	var startedAt time.Time
	task := WorkerFunc(func(context.Context) error {
		startedAt = time.Now()
		return nil
	})

	begin := time.Now()
	err := NewDelayedWorker("test", 20*time.Millisecond, task, logger.Nop()).Run(context.Background())

	require.NoError(t, err)
	assert.GreaterOrEqual(t, startedAt.Sub(begin), 20*time.Millisecond)
}

func TestDelayedWorker_ZeroDelayRunsImmediately(t *testing.T) {
	w := &mockWorker{}

	err := NewDelayedWorker("test", 0, w, logger.Nop()).Run(context.Background())

	require.NoError(t, err)
	assert.EqualValues(t, 1, w.runCount.Load())
}

func TestDelayedWorker_CancelledBeforeStart(t *testing.T) {
	w := &mockWorker{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewDelayedWorker("test", time.Hour, w, logger.Nop()).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.EqualValues(t, 0, w.runCount.Load())
}

func TestDelayedWorker_PropagatesTaskError(t *testing.T) {
	boom := errors.New("boom")

	err := NewDelayedWorker("test", 0, &mockWorker{err: boom}, logger.Nop()).Run(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestCurrencySyncWorker_RunsSyncOnce(t *testing.T) {
	sync := mock.NewMockCurrencySyncService(gomock.NewController(t))
	sync.EXPECT().Run(gomock.Any()).Return(models.ReconcileResult{Fetched: 3, Inserted: 3}, nil).Times(1)

	w := NewCurrencySyncWorker(sync, config.Workers{}, logger.Nop())

	assert.NoError(t, w.Run(context.Background()))
}

func TestCurrencySyncWorker_FailedSyncDoesNotFailWorker(t *testing.T) {
	sync := mock.NewMockCurrencySyncService(gomock.NewController(t))
	sync.EXPECT().Run(gomock.Any()).Return(models.ReconcileResult{}, errors.New("treasury unavailable"))

	w := NewCurrencySyncWorker(sync, config.Workers{}, logger.Nop())

	assert.NoError(t, w.Run(context.Background()))
}

func TestCurrencySyncWorker_CancelledDuringWarmUp(t *testing.T) {
	// no Run expectation: the sync must not start
	sync := mock.NewMockCurrencySyncService(gomock.NewController(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewCurrencySyncWorker(sync, config.Workers{SyncStartDelay: time.Hour}, logger.Nop())

	assert.ErrorIs(t, w.Run(ctx), context.Canceled)
}
