// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-gym-keeper/internal/logger"
	"github.com/MKhiriev/go-gym-keeper/models"
)

// memoryAccountRepository keeps accounts in insertion order. The email
// uniqueness check and the append happen under one write lock.
type memoryAccountRepository struct {
	mu       sync.RWMutex
	accounts []models.Account
	byEmail  map[string]int
	logger   *logger.Logger
}

// NewMemoryAccountRepository returns an empty in-process [AccountRepository].
func NewMemoryAccountRepository(logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating in-memory account repository")
	return &memoryAccountRepository{
		byEmail: make(map[string]int),
		logger:  logger,
	}
}

func (r *memoryAccountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	if err := ctx.Err(); err != nil {
		return models.Account{}, err
	}

	key := models.EmailKey(account.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[key]; exists {
		return models.Account{}, ErrEmailAlreadyExists
	}

	var maxID int64
	for _, a := range r.accounts {
		maxID = max(maxID, a.ID)
	}
	account.ID = maxID + 1

	r.byEmail[key] = len(r.accounts)
	r.accounts = append(r.accounts, account)

	logger.FromContext(ctx).Debug().Int64("account_id", account.ID).Msg("account stored in memory")
	return account, nil
}

func (r *memoryAccountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	if err := ctx.Err(); err != nil {
		return models.Account{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byEmail[models.EmailKey(email)]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}
	return r.accounts[idx], nil
}

func (r *memoryAccountRepository) FindAccountByID(ctx context.Context, id int64) (models.Account, error) {
	if err := ctx.Err(); err != nil {
		return models.Account{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Account{}, ErrAccountNotFound
}

func (r *memoryAccountRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

func (r *memoryAccountRepository) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.accounts {
		if r.accounts[i].ID == id {
			r.accounts[i].PasswordHash = passwordHash
			return nil
		}
	}
	return ErrAccountNotFound
}
