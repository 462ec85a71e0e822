// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrDuplicateEmail is returned by Register when the email (compared
	// case-insensitively) already belongs to an account.
	ErrDuplicateEmail = errors.New("email is already registered")

	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password, so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoSession is returned when a token names no live session.
	ErrNoSession = errors.New("no active session")

	ErrAccountNotFound = errors.New("account not found")

	ErrSessionCreationFailed = errors.New("session creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
