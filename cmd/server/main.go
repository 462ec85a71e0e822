// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-gym-keeper/internal/config"
	"github.com/MKhiriev/go-gym-keeper/internal/handler"
	"github.com/MKhiriev/go-gym-keeper/internal/logger"
	"github.com/MKhiriev/go-gym-keeper/internal/server"
	"github.com/MKhiriev/go-gym-keeper/internal/service"
	"github.com/MKhiriev/go-gym-keeper/internal/store"
	"github.com/MKhiriev/go-gym-keeper/internal/telemetry"
	"github.com/MKhiriev/go-gym-keeper/internal/workers"
	"github.com/MKhiriev/go-gym-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-gym-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Bool("redis_sessions", cfg.Storage.Sessions.RedisAddress != "").
		Str("http_address", cfg.Server.HTTPAddress).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	metrics := telemetry.NewMetrics()
	if storages.MemorySessions != nil {
		metrics.RegisterSessionGauge(storages.MemorySessions.Len)
	}

	services, err := service.NewServices(storages, *cfg, metrics, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	backgroundWorkers := workers.NewWorkers(storages, cfg.Workers, log)
	backgroundWorkers.Start(ctx)
	defer backgroundWorkers.Stop()

	handlers, err := handler.NewHandlers(services, metrics, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return
	}

	log.Info().Msg("server stopped")
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
