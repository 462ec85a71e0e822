// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrEmailAlreadyExists is returned when an account with the same
	// (case-insensitive) email is already stored.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrAccountNotFound is returned by account lookups that match nothing.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrSessionNotFound is returned by SessionStore.Get for absent or
	// expired keys.
	ErrSessionNotFound = errors.New("session was not found")
)

var (
	// ErrBuildingSQLQuery wraps squirrel build failures.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery wraps driver errors that have no domain meaning.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow wraps row scan failures.
	ErrScanningRow = errors.New("failed to scan account row")

	// ErrUnknownDriver is returned by NewStorages for unsupported drivers.
	ErrUnknownDriver = errors.New("unknown database driver")
)
