// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-gym-keeper/models"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "session", SessionCtxKey.String())
	assert.Equal(t, "token", TokenCtxKey.String())
}

func TestWithSession_RoundTrip(t *testing.T) {
	session := models.Session{ID: "sid", Account: models.Account{ID: 7, Email: "a@x.com"}}
	ctx := WithSession(context.Background(), session, "raw-token")

	got, ok := GetSessionFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, session, got)

	token, ok := GetTokenFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "raw-token", token)
}

func TestGetSessionFromContext_Missing(t *testing.T) {
	_, ok := GetSessionFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetTokenFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetSessionFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionCtxKey, "not-a-session")
	_, ok := GetSessionFromContext(ctx)
	assert.False(t, ok)
}

func TestGetSessionFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), models.Session{ID: "x"})
	_, ok := GetSessionFromContext(ctx)
	assert.False(t, ok)
}
