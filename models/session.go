// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SessionSchemaVersion is written into every serialized [Session] so that
// stored sessions can be migrated when the layout changes.
const SessionSchemaVersion = 1

// Session is the authenticated state of one client.
//
// It replaces the single "current user" slot of a browser with one entry
// per bearer token, so concurrent clients never overwrite each other.
type Session struct {
	SchemaVersion int `json:"schema_version"`

	// ID is the session identifier carried in the token's "jti" claim.
	ID string `json:"id"`

	// Account is the secret-free snapshot taken at Register or Login.
	Account Account `json:"account"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`

	// Token is the bearer token issued with the session. It is returned to
	// the client once and never persisted.
	Token string `json:"token,omitempty"`
}

// Expired reports whether the session is past its expiry at now.
// A zero ExpiresAt never expires.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
