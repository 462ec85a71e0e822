// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-gym-keeper/internal/config"
	"github.com/MKhiriev/go-gym-keeper/internal/logger"
	"github.com/MKhiriev/go-gym-keeper/internal/store"
	"github.com/MKhiriev/go-gym-keeper/internal/telemetry"
)

type Services struct {
	AccountService    AccountService
	CalculatorService CalculatorService
	AppInfoService    AppInfoService
}

// NewServices wires the services over storages. The account service is
// validated first and, when cfg.App.SimulatedLatency is set, delayed
// before reaching the directory.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, metrics *telemetry.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	var accountService AccountService = NewAccountService(
		storages.AccountRepository,
		storages.SessionStore,
		NewBcryptHasher(cfg.App.BcryptCost),
		cfg.App,
		cfg.Storage.Sessions.TTL,
		metrics,
		logger,
	)
	if cfg.App.SimulatedLatency > 0 {
		accountService = NewAccountLatencyService(cfg.App.SimulatedLatency).Wrap(accountService)
	}
	accountService = NewAccountValidationService().Wrap(accountService)

	return &Services{
		AccountService:    accountService,
		CalculatorService: NewCalculatorService(storages.AccountRepository, metrics, logger),
		AppInfoService:    appInfoService,
	}, nil
}
