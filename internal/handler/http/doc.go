// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the server.
//
// It exposes route wiring, request handlers and middleware. Cross-cutting
// concerns such as bearer authentication, the admin key, request tracing,
// access logging, metrics and response compression are handled in this
// package before requests are delegated to the service layer.
package http
