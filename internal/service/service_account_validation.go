// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gym-keeper/internal/validators"
	"github.com/MKhiriev/go-gym-keeper/models"
)

// accountValidationService checks payloads before they reach the wrapped
// AccountService. Every validation failure is returned wrapped in
// ErrInvalidDataProvided.
type accountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &accountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *accountValidationService) Register(ctx context.Context, registration models.Registration) (models.Session, error) {
	if err := v.validator.Validate(ctx, registration); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, registration)
}

func (v *accountValidationService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, credentials)
}

func (v *accountValidationService) Logout(ctx context.Context, token string) error {
	return v.inner.Logout(ctx, token)
}

func (v *accountValidationService) CurrentSession(ctx context.Context, token string) (models.Session, error) {
	if token == "" {
		return models.Session{}, ErrNoSession
	}

	return v.inner.CurrentSession(ctx, token)
}

func (v *accountValidationService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return v.inner.ListAccounts(ctx)
}

func (v *accountValidationService) ChangePassword(ctx context.Context, token string, change models.PasswordChange) error {
	if err := v.validator.Validate(ctx, change); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ChangePassword(ctx, token, change)
}

func (v *accountValidationService) Wrap(wrapped AccountService) AccountService {
	v.inner = wrapped
	return v
}
