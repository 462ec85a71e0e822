// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gym-keeper/internal/logger"
)

const defaultSweepInterval = time.Minute

// SessionSweeper periodically drops expired entries from an in-memory
// session store.
type SessionSweeper struct {
	sessions Sweeper
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

// NewSessionSweeper returns a sweeper over sessions. A non-positive
// interval defaults to one minute.
func NewSessionSweeper(sessions Sweeper, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *SessionSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-t.C:
			if removed := s.sessions.Sweep(s.now()); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired sessions swept")
			}
		}
	}
}
