// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AccountServiceWrapper

package service

import (
	"context"

	"github.com/MKhiriev/go-gym-keeper/models"
)

// AccountService is the account directory: registration, sign-in and the
// per-token sessions that follow.
type AccountService interface {
	// Register stores a new account and opens a session for it.
	Register(ctx context.Context, registration models.Registration) (models.Session, error)
	// Login opens a session for an existing account.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)
	// Logout ends the session named by token. Ending an absent session is
	// not an error.
	Logout(ctx context.Context, token string) error
	// CurrentSession returns the live session named by token or ErrNoSession.
	CurrentSession(ctx context.Context, token string) (models.Session, error)
	// ListAccounts returns every account without its password hash, in id order.
	ListAccounts(ctx context.Context) ([]models.Account, error)
	ChangePassword(ctx context.Context, token string, change models.PasswordChange) error
}

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// validating or delaying.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService // returns a decorated AccountService applying additional behavior
}

// CalculatorService exposes the metrics engine and records every
// calculation.
type CalculatorService interface {
	BMI(ctx context.Context, input models.BiometricInput) (models.BMIResult, error)
	BodyFat(ctx context.Context, input models.BiometricInput) (models.BodyFatResult, error)
	Calories(ctx context.Context, input models.BiometricInput) (models.CalorieResult, error)
	// ProfileMetrics computes every metric the stored profile of accountID
	// allows. level is optional; without it calories are reported as skipped.
	ProfileMetrics(ctx context.Context, accountID int64, level models.ActivityLevel) (models.MetricsReport, error)
}

// PasswordHasher turns passwords into slow salted hashes and checks them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify returns nil when password matches hash.
	Verify(hash, password string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
