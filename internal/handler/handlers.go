// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-gym-keeper/internal/config"
	"github.com/MKhiriev/go-gym-keeper/internal/handler/http"
	"github.com/MKhiriev/go-gym-keeper/internal/logger"
	"github.com/MKhiriev/go-gym-keeper/internal/service"
	"github.com/MKhiriev/go-gym-keeper/internal/telemetry"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, metrics *telemetry.Metrics, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, metrics, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
