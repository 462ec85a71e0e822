// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the typed client of the gym keeper REST API.
//
// [ServerAdapter] hides the transport from callers. HTTP statuses are
// mapped back to the sentinel errors in errors.go, so callers match them
// with [errors.Is] (e.g. [ErrConflict] for a duplicate email,
// [ErrUnauthorized] for bad credentials).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-gym-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the gym keeper server on behalf of one client.
// It remembers the bearer token issued by Register or Login and attaches it
// to every request that needs a session.
type ServerAdapter interface {
	// SetToken replaces the stored bearer token. An empty token signs the
	// adapter out locally.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when signed out.
	Token() string

	// Register creates an account and signs it in. The issued token is
	// stored on success.
	Register(ctx context.Context, registration models.Registration) (models.Session, error)

	// Login signs an existing account in. The issued token is stored on
	// success.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Logout ends the server-side session and forgets the token. It is a
	// no-op without a stored token.
	Logout(ctx context.Context) error

	// CurrentSession returns the session behind the stored token, or
	// [ErrNoSession] when there is none.
	CurrentSession(ctx context.Context) (models.Session, error)

	// ChangePassword replaces the password of the signed-in account.
	ChangePassword(ctx context.Context, change models.PasswordChange) error

	// ListAccounts returns every registered account. adminKey is sent in
	// the "X-Admin-Key" header.
	ListAccounts(ctx context.Context, adminKey string) ([]models.Account, error)

	CalculateBMI(ctx context.Context, input models.BiometricInput) (models.BMIResult, error)
	CalculateBodyFat(ctx context.Context, input models.BiometricInput) (models.BodyFatResult, error)
	CalculateCalorieTargets(ctx context.Context, input models.BiometricInput) (models.CalorieResult, error)

	// ProfileMetrics computes the metrics of the signed-in account. An empty
	// level leaves the calorie targets out of the report.
	ProfileMetrics(ctx context.Context, level models.ActivityLevel) (models.MetricsReport, error)

	// ServerVersion returns the version string reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
