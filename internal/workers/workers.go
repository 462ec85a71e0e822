// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-gym-keeper/internal/config"
	"github.com/MKhiriev/go-gym-keeper/internal/logger"
	"github.com/MKhiriev/go-gym-keeper/internal/store"
)

// Workers runs a set of workers side by side.
type Workers struct {
	workers []Worker

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWorkers returns the workers the storages need. Only the in-memory
// session store has to be swept; Redis expires keys on its own.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if storages.MemorySessions != nil {
		w.workers = append(w.workers, NewSessionSweeper(storages.MemorySessions, cfg.SessionSweepInterval, logger))
	}
	return w
}

// Len reports how many workers Start launches.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Start launches every worker in its own goroutine. A running set is
// stopped first. Workers exit when ctx is cancelled or Stop is called.
func (w *Workers) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(len(w.workers))
	w.mu.Unlock()

	for _, worker := range w.workers {
		go func() {
			defer w.wg.Done()
			worker.Run(runCtx)
		}()
	}
}

// Stop cancels the running workers and blocks until all of them have
// returned. Safe to call when nothing runs.
func (w *Workers) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
