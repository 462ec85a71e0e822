// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testHashKey = "test-secret-key"

func TestHashString_MatchesHMAC(t *testing.T) {
	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write([]byte("session-id"))
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, HashString("session-id", testHashKey))
}

func TestHashString_Deterministic(t *testing.T) {
	assert.Equal(t, HashString("abc", testHashKey), HashString("abc", testHashKey))
	assert.Len(t, HashString("abc", testHashKey), 64)
}

func TestHashString_DifferentKeysAndData(t *testing.T) {
	assert.NotEqual(t, HashString("abc", "k1"), HashString("abc", "k2"))
	assert.NotEqual(t, HashString("abc", testHashKey), HashString("abd", testHashKey))
}

func TestSecureCompare(t *testing.T) {
	assert.True(t, SecureCompare("admin-key", "admin-key"))
	assert.False(t, SecureCompare("admin-key", "admin-kez"))
	assert.False(t, SecureCompare("admin-key", "admin"))
	assert.False(t, SecureCompare("", "x"))
	assert.True(t, SecureCompare("", ""))
}
