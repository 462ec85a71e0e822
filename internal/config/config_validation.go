// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks the merged server configuration before startup.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs))
	}
	if cfg.App.BcryptCost < 0 {
		errs = append(errs, fmt.Errorf("%w: bcrypt cost must not be negative", ErrInvalidAppConfigs))
	}
	if cfg.App.SimulatedLatency < 0 {
		errs = append(errs, fmt.Errorf("%w: simulated latency must not be negative", ErrInvalidAppConfigs))
	}

	switch cfg.Storage.DB.Driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if cfg.Storage.DB.DSN == "" {
			errs = append(errs, fmt.Errorf("%w: dsn is required for driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown db driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}
	if cfg.Storage.Sessions.TTL < 0 {
		errs = append(errs, fmt.Errorf("%w: session ttl must not be negative", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs))
	}

	if cfg.Workers.SessionSweepInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: session sweep interval must be positive", ErrInvalidWorkerConfigs))
	}

	return errors.Join(errs...)
}

func (cfg *Adapter) validate() error {
	if cfg.BaseURL == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
