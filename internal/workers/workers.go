package workers

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Run starts every worker in its own goroutine and waits for all of them.
// A failing worker does not stop the others. Errors caused by ctx being
// cancelled are dropped; the first remaining error is returned.
func (w *Workers) Run(ctx context.Context) error {
	var g errgroup.Group

	for _, worker := range w.workers {
		g.Go(func() error {
			err := worker.Run(ctx)
			if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				return nil
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		if w.logger != nil {
			w.logger.Error().Err(err).Msg("worker failed")
		}
		return err
	}

	return nil
}
