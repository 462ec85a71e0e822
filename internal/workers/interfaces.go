// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the server.
package workers

import (
	"context"
	"time"
)

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Sweeper reclaims entries that expired before now and reports how many
// were removed.
type Sweeper interface {
	Sweep(now time.Time) int
}
