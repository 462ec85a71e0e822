// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements gymctl, the command line client of the gym
// keeper server.
//
// Every subcommand parses its own flags, talks to the server through an
// [adapter.ServerAdapter] and prints a short human-readable answer. The
// bearer token survives between runs in a [TokenStore].
package client
