// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAdminKey is returned when "X-Admin-Key" is missing or wrong.
	ErrInvalidAdminKey = errors.New("invalid `X-Admin-Key` header")
)
