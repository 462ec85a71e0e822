// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/MKhiriev/go-gym-keeper/internal/config"
	"github.com/MKhiriev/go-gym-keeper/internal/handler"
	"github.com/MKhiriev/go-gym-keeper/internal/logger"
)

const defaultShutdownTimeout = 10 * time.Second

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration

	// ready receives the bound address once the listener is open.
	ready chan net.Addr

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		shutdownTimeout: shutdownTimeout,
		ready:           make(chan net.Addr, 1),
		logger:          logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	listener, err := s.httpServer.listen()
	if err != nil {
		return err
	}
	s.ready <- listener.Addr()

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Msg("Launching HTTP server")
		serveErr <- s.httpServer.serve(listener)
	}()

	select {
	case err = <-serveErr:
		// the server stopped on its own
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	err = errors.Join(s.httpServer.shutdown(shutdownCtx), <-serveErr)
	if err == nil {
		s.logger.Info().Msg("server Shutdown gracefully")
	}
	return err
}
