// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrNoSession is returned by CurrentSession when the server holds no
	// live session for the stored token, and by calls that need a token
	// when none is stored.
	ErrNoSession = errors.New("no active session")

	ErrEmptyBaseURL = errors.New("empty server base URL")
)
