// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-gym-keeper/internal/config"
	"github.com/MKhiriev/go-gym-keeper/internal/logger"
	"github.com/MKhiriev/go-gym-keeper/internal/service"
	"github.com/MKhiriev/go-gym-keeper/internal/store"
	"github.com/MKhiriev/go-gym-keeper/internal/telemetry"
	"github.com/MKhiriev/go-gym-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRealRouter wires the router over real services and in-memory storage.
func newRealRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:   "sign-key",
			TokenIssuer:    "go-gym-keeper",
			TokenDuration:  time.Hour,
			SessionHashKey: "session-key",
			AdminKey:       testAdminKey,
			BcryptCost:     4,
			Version:        "test",
		},
		Storage: config.Storage{DB: config.DB{Driver: config.DriverMemory}},
		Server:  config.Server{HTTPAddress: "localhost:0", RequestTimeout: 5 * time.Second},
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	metrics := telemetry.NewMetrics()
	services, err := service.NewServices(storages, cfg, metrics, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, metrics, cfg, logger.Nop()).Init()
}

func serve(t *testing.T, router http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	th := &testHandler{router: router}
	return th.do(t, method, target, body, headers...)
}

func TestRoutes_AccountFlow(t *testing.T) {
	router := newRealRouter(t)

	rec := serve(t, router, http.MethodPost, "/api/account/register",
		`{"full_name":"Jane Doe","email":"Jane@Example.com","password":"s3cret","confirm_password":"s3cret","height":165,"weight":60,"age":25,"gender":"female"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	registered := decodeBody[models.Session](t, rec)
	assert.Equal(t, int64(1), registered.Account.ID)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, registered.Account.RegistrationDate)

	rec = serve(t, router, http.MethodPost, "/api/account/register",
		`{"full_name":"Other","email":"jane@example.com","password":"x"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = serve(t, router, http.MethodPost, "/api/account/register",
		`{"full_name":"Bad","email":"bad","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email address is malformed")

	rec = serve(t, router, http.MethodPost, "/api/account/login", `{"email":"jane@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(t, router, http.MethodPost, "/api/account/login", `{"email":"jane@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	loggedIn := decodeBody[models.Session](t, rec)
	assert.NotEqual(t, registered.Token, loggedIn.Token, "each login opens its own session")

	rec = serve(t, router, http.MethodGet, "/api/account/session", "", bearer(loggedIn.Token)...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Jane@Example.com", decodeBody[models.Session](t, rec).Account.Email)

	rec = serve(t, router, http.MethodGet, "/api/calculator/profile?activity_level=sedentary", "", bearer(loggedIn.Token)...)
	require.Equal(t, http.StatusOK, rec.Code)
	report := decodeBody[models.MetricsReport](t, rec)
	require.NotNil(t, report.BMI)
	assert.Equal(t, 22.04, report.BMI.Value)
	require.NotNil(t, report.Calories)
	assert.Equal(t, 1614, report.Calories.Maintain)

	rec = serve(t, router, http.MethodPut, "/api/account/password",
		`{"current_password":"s3cret","new_password":"n3w","confirm_password":"n3w"}`, bearer(loggedIn.Token)...)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(t, router, http.MethodPost, "/api/account/logout", "", bearer(loggedIn.Token)...)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(t, router, http.MethodGet, "/api/account/session", "", bearer(loggedIn.Token)...)
	assert.Equal(t, http.StatusNotFound, rec.Code, "logged-out token no longer resolves")

	rec = serve(t, router, http.MethodGet, "/api/account/session", "", bearer(registered.Token)...)
	assert.Equal(t, http.StatusOK, rec.Code, "the other session is untouched")

	rec = serve(t, router, http.MethodGet, "/api/admin/accounts", "", adminKeyHeader, testAdminKey)
	require.Equal(t, http.StatusOK, rec.Code)
	accounts := decodeBody[[]models.Account](t, rec)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Jane Doe", accounts[0].FullName)
}

func TestRoutes_Calculator(t *testing.T) {
	router := newRealRouter(t)

	rec := serve(t, router, http.MethodPost, "/api/calculator/bmi", `{"weight_kg":70,"height_cm":175}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"value":22.86,"category":"Normal weight"}`, rec.Body.String())

	rec = serve(t, router, http.MethodPost, "/api/calculator/body-fat", `{"sex":"male","height_cm":180,"waist_cm":85,"neck_cm":38}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"percentage":16.11}`, rec.Body.String())

	rec = serve(t, router, http.MethodPost, "/api/calculator/calories",
		`{"sex":"male","weight_kg":70,"height_cm":175,"age_years":30,"activity_level":"moderate"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"maintain":2556,"mild_loss":2306,"loss":2056,"extreme_loss":1556,"mild_gain":2806,"gain":3056}`, rec.Body.String())

	rec = serve(t, router, http.MethodPost, "/api/calculator/body-fat", `{"sex":"male","height_cm":180,"waist_cm":30,"neck_cm":38}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "insufficient input: waist must be greater than neck\n", rec.Body.String())

	rec = serve(t, router, http.MethodGet, "/api/version", "")
	assert.Equal(t, "test", rec.Body.String())
}
