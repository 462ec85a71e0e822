// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gym-keeper/models"
)

// accountLatencyService delays every call by a fixed duration to imitate a
// remote backend. A call whose context ends first returns ctx.Err() and
// never reaches the wrapped service.
type accountLatencyService struct {
	inner AccountService
	delay time.Duration
}

func NewAccountLatencyService(delay time.Duration) AccountServiceWrapper {
	return &accountLatencyService{delay: delay}
}

func (l *accountLatencyService) wait(ctx context.Context) error {
	if l.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(l.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (l *accountLatencyService) Register(ctx context.Context, registration models.Registration) (models.Session, error) {
	if err := l.wait(ctx); err != nil {
		return models.Session{}, err
	}
	return l.inner.Register(ctx, registration)
}

func (l *accountLatencyService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	if err := l.wait(ctx); err != nil {
		return models.Session{}, err
	}
	return l.inner.Login(ctx, credentials)
}

func (l *accountLatencyService) Logout(ctx context.Context, token string) error {
	if err := l.wait(ctx); err != nil {
		return err
	}
	return l.inner.Logout(ctx, token)
}

func (l *accountLatencyService) CurrentSession(ctx context.Context, token string) (models.Session, error) {
	if err := l.wait(ctx); err != nil {
		return models.Session{}, err
	}
	return l.inner.CurrentSession(ctx, token)
}

func (l *accountLatencyService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	if err := l.wait(ctx); err != nil {
		return nil, err
	}
	return l.inner.ListAccounts(ctx)
}

func (l *accountLatencyService) ChangePassword(ctx context.Context, token string, change models.PasswordChange) error {
	if err := l.wait(ctx); err != nil {
		return err
	}
	return l.inner.ChangePassword(ctx, token, change)
}

func (l *accountLatencyService) Wrap(wrapped AccountService) AccountService {
	l.inner = wrapped
	return l
}
