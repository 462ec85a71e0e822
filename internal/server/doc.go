// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the application's HTTP server.
//
// It owns the server lifecycle: startup, waiting for the stop signal
// carried by the context, and graceful shutdown bounded by the configured
// timeout.
package server
