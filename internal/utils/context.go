// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the server and the client:
// context keys, HMAC hashing, JSON over HTTP, bearer tokens and id
// generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-gym-keeper/models"
)

// contextKey is a private type for context keys, so they cannot collide
// with string keys set by other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// SessionCtxKey holds the models.Session resolved by the auth middleware.
	SessionCtxKey = contextKey("session")

	// TokenCtxKey holds the raw bearer token of the request.
	TokenCtxKey = contextKey("token")
)

// WithSession stores the resolved session and the token that named it.
func WithSession(ctx context.Context, session models.Session, token string) context.Context {
	ctx = context.WithValue(ctx, SessionCtxKey, session)
	return context.WithValue(ctx, TokenCtxKey, token)
}

// GetSessionFromContext returns the session stored by WithSession.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	return session, ok
}

// GetTokenFromContext returns the raw bearer token stored by WithSession.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenCtxKey).(string)
	return token, ok && token != ""
}
