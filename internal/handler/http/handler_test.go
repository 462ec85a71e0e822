// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-gym-keeper/internal/config"
	"github.com/MKhiriev/go-gym-keeper/internal/logger"
	"github.com/MKhiriev/go-gym-keeper/internal/mock"
	"github.com/MKhiriev/go-gym-keeper/internal/service"
	"github.com/MKhiriev/go-gym-keeper/internal/telemetry"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAdminKey = "admin-secret"

type testHandler struct {
	router     http.Handler
	accounts   *mock.MockAccountService
	calculator *mock.MockCalculatorService
	appInfo    *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) *testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)

	th := &testHandler{
		accounts:   mock.NewMockAccountService(ctrl),
		calculator: mock.NewMockCalculatorService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AccountService:    th.accounts,
		CalculatorService: th.calculator,
		AppInfoService:    th.appInfo,
	}
	cfg := config.StructuredConfig{
		App:    config.App{AdminKey: testAdminKey},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}
	th.router = NewHandler(services, telemetry.NewMetrics(), cfg, logger.Nop()).Init()
	return th
}

func (th *testHandler) do(t *testing.T, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	th.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func bearer(token string) []string {
	return []string{"Authorization", "Bearer " + token}
}
