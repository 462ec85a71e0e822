// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gym-keeper/models"
)

// AccountRepository persists registered accounts.
//
// Emails are unique under [models.EmailKey]. CreateAccount assigns the id
// (largest existing id plus one) and returns the stored account.
// Implementations are safe for concurrent use.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
	FindAccountByID(ctx context.Context, id int64) (models.Account, error)
	// ListAccounts returns every account in id order.
	ListAccounts(ctx context.Context) ([]models.Account, error)
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
}

// SessionStore is a string-keyed byte store with per-key expiry.
// A ttl of zero stores the value without expiry.
type SessionStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Remove(ctx context.Context, key string) error
}
