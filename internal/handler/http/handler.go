// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-gym-keeper/internal/config"
	"github.com/MKhiriev/go-gym-keeper/internal/logger"
	"github.com/MKhiriev/go-gym-keeper/internal/service"
	"github.com/MKhiriev/go-gym-keeper/internal/telemetry"
)

type Handler struct {
	services *service.Services
	metrics  *telemetry.Metrics

	// adminKey guards /api/admin. Empty disables the admin routes.
	adminKey       string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *telemetry.Metrics, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		adminKey:       cfg.App.AdminKey,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
