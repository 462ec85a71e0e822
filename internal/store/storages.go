// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gym-keeper/internal/config"
	"github.com/MKhiriev/go-gym-keeper/internal/logger"
)

// Storages bundles the repositories selected by configuration.
type Storages struct {
	AccountRepository AccountRepository
	SessionStore      SessionStore

	// MemorySessions is set when sessions live in process memory and need
	// periodic sweeping. It is nil for Redis.
	MemorySessions *MemorySessionStore

	closers []func() error
}

// NewStorages opens the account repository named by cfg.DB.Driver
// (running migrations for SQL drivers) and the session store, Redis when
// cfg.Sessions.RedisAddress is set and memory otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	s := &Storages{}

	switch cfg.DB.Driver {
	case config.DriverMemory, "":
		s.AccountRepository = NewMemoryAccountRepository(log)
	case config.DriverSQLite, config.DriverPostgres:
		db, err := connectSQL(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db.Close)

		if err = db.Migrate(ctx); err != nil {
			s.Close()
			return nil, fmt.Errorf("error migrating database: %w", err)
		}
		s.AccountRepository = NewAccountRepository(db, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DB.Driver)
	}

	if cfg.Sessions.RedisAddress != "" {
		client, err := NewConnectRedis(ctx, cfg.Sessions, log)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.closers = append(s.closers, client.Close)
		s.SessionStore = NewRedisSessionStore(client)
	} else {
		s.MemorySessions = NewMemorySessionStore()
		s.SessionStore = s.MemorySessions
	}

	return s, nil
}

func connectSQL(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.Driver == config.DriverPostgres {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// Close releases every connection opened by NewStorages.
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	s.closers = nil
	return errors.Join(errs...)
}
