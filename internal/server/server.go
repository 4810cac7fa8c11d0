package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/config"
	"github.com/MKhiriev/go-purchase-tracker/internal/handler"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/workers"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	workers    *workers.Workers
	hooks      []shutdownHook

	shutdownTimeout time.Duration
	shutdownOnce    sync.Once

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, opts ...Option) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		shutdownTimeout: defaultShutdownTimeout,
		logger:          logger,
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating gRPC server: %w", err)
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	for _, opt := range opts {
		opt(servers)
	}

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
		return err
	}

	return nil
}

// Shutdown stops the transports. It is safe to call more than once.
func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.shutdown(ctx)
}

func (s *server) shutdown(ctx context.Context) {
	s.shutdownOnce.Do(func() {
		// finish HTTP server
		if s.httpServer != nil {
			s.httpServer.Shutdown(ctx)
		}

		// finish gRPC server
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown(ctx)
		}
	})
}

// run serves until ctx is done, then drains the transports, waits for the
// workers and runs the shutdown hooks.
func (s *server) run(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersAreCreated
	}

	ctx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()

	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		if s.workers != nil {
			_ = s.workers.Run(ctx)
		}
	}()

	// a transport that returns before shutdown has failed
	failed := make(chan error, 2)
	serve := func(name string, fn func() error) {
		s.logger.Info().Msgf("Launching %s server", name)
		go func() {
			if err := fn(); err != nil {
				failed <- err
			}
		}()
	}
	if s.httpServer != nil {
		serve("HTTP", s.httpServer.RunServer)
	}
	if s.gRPCServer != nil {
		serve("GRPC", s.gRPCServer.RunServer)
	}

	var errs []error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown signal received")
	case err := <-failed:
		s.logger.Error().Err(err).Msg("transport failed, shutting down")
		errs = append(errs, fmt.Errorf("%w: %w", errTransportStopped, err))
	}
	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	s.shutdown(shutdownCtx)

	select {
	case <-workersDone:
	case <-shutdownCtx.Done():
		s.logger.Warn().Msg("workers did not stop before the shutdown deadline")
	}

	for _, hook := range s.hooks {
		if err := hook.fn(shutdownCtx); err != nil {
			s.logger.Error().Err(err).Str("hook", hook.name).Msg("shutdown hook failed")
			errs = append(errs, fmt.Errorf("%s: %w", hook.name, err))
		}
	}

	s.logger.Info().Msg("server Shutdown gracefully")

	return errors.Join(errs...)
}
