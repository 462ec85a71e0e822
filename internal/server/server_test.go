// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-gym-keeper/internal/config"
	"github.com/MKhiriev/go-gym-keeper/internal/handler"
	httpHandler "github.com/MKhiriev/go-gym-keeper/internal/handler/http"
	"github.com/MKhiriev/go-gym-keeper/internal/logger"
	"github.com/MKhiriev/go-gym-keeper/internal/service"
	"github.com/MKhiriev/go-gym-keeper/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticAppInfo struct{}

func (staticAppInfo) GetAppVersion(context.Context) string { return "9.9.9" }

func newTestHandlers(cfg config.StructuredConfig) *handler.Handlers {
	services := &service.Services{AppInfoService: staticAppInfo{}}
	return &handler.Handlers{HTTP: httpHandler.NewHandler(services, telemetry.NewMetrics(), cfg, logger.Nop())}
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRunServer_ServesAndShutsDown(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}}
	srv, err := NewServer(newTestHandlers(cfg), cfg.Server, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	var addr net.Addr
	select {
	case addr = <-srv.(*server).ready:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not start listening")
	}

	resp, err := http.Get("http://" + addr.String() + "/api/version")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "9.9.9", string(body))

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunServer_AddressInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: occupied.Addr().String()}}
	srv, err := NewServer(newTestHandlers(cfg), cfg.Server, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, srv.RunServer(context.Background()))
}
