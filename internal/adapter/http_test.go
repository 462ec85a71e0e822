// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-gym-keeper/internal/config"
	"github.com/MKhiriev/go-gym-keeper/internal/logger"
	"github.com/MKhiriev/go-gym-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.Adapter{BaseURL: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func testSession() models.Session {
	return models.Session{
		SchemaVersion: models.SessionSchemaVersion,
		ID:            "0190f1d2-aaaa-7bbb-8ccc-000000000001",
		Account:       models.Account{ID: 1, FullName: "Alice", Email: "alice@example.com"},
		Token:         "body-token",
	}
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/account/register", r.URL.Path)

		var reg models.Registration
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reg))
		assert.Equal(t, "alice@example.com", reg.Email)

		w.Header().Set("Authorization", "Bearer header-token")
		writeJSON(t, w, http.StatusCreated, testSession())
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	session, err := a.Register(context.Background(), models.Registration{
		FullName: "Alice",
		Email:    "alice@example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), session.Account.ID)
	assert.Equal(t, "header-token", session.Token)
	assert.Equal(t, "header-token", a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("email is already registered"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.Registration{Email: "alice@example.com"})

	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "email is already registered")
	assert.Empty(t, a.Token())
}

func TestRegister_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.Registration{Email: "alice@example.com"})

	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_TokenFromBodyWithoutHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/account/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, testSession())
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	session, err := a.Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "body-token", session.Token)
	assert.Equal(t, "body-token", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid email or password"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("previous")
	_, err := a.Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "wrong"})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "previous", a.Token())
}

func TestLogin_NoTokenIssued(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := testSession()
		session.Token = ""
		writeJSON(t, w, http.StatusOK, session)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "secret"})

	require.Error(t, err)
	assert.Empty(t, a.Token())
}

// ── Logout / CurrentSession ─────────────────────────────────────────────────

func TestLogout_ForgetsToken(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/api/account/logout", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	require.NoError(t, a.Logout(context.Background()))
	assert.Empty(t, a.Token())

	// signed out: nothing to send
	require.NoError(t, a.Logout(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestCurrentSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/account/session", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer live" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("no active session"))
			return
		}
		writeJSON(t, w, http.StatusOK, testSession())
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.CurrentSession(context.Background())
	assert.ErrorIs(t, err, ErrNoSession, "no token stored")

	a.SetToken("stale")
	_, err = a.CurrentSession(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)

	a.SetToken(" live ")
	session, err := a.CurrentSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", session.Account.Email)
}

// ── ChangePassword / ListAccounts ───────────────────────────────────────────

func TestChangePassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/account/password", r.URL.Path)

		var change models.PasswordChange
		require.NoError(t, json.NewDecoder(r.Body).Decode(&change))
		if change.CurrentPassword != "old" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	assert.NoError(t, a.ChangePassword(context.Background(), models.PasswordChange{CurrentPassword: "old", NewPassword: "new"}))
	assert.ErrorIs(t, a.ChangePassword(context.Background(), models.PasswordChange{CurrentPassword: "bad", NewPassword: "new"}), ErrUnauthorized)
}

func TestListAccounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/accounts", r.URL.Path)
		if r.Header.Get(adminKeyHeader) != "admin" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(t, w, http.StatusOK, []models.Account{{ID: 1}, {ID: 2}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	accounts, err := a.ListAccounts(context.Background(), "admin")
	require.NoError(t, err)
	assert.Len(t, accounts, 2)

	_, err = a.ListAccounts(context.Background(), "guess")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── calculator ──────────────────────────────────────────────────────────────

func TestCalculateBMI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/calculator/bmi", r.URL.Path)

		var in models.BiometricInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in.WeightKg <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("insufficient input: weight must be positive"))
			return
		}
		writeJSON(t, w, http.StatusOK, models.BMIResult{Value: 22.86, Category: "Normal weight"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	res, err := a.CalculateBMI(context.Background(), models.BiometricInput{WeightKg: 70, HeightCm: 175})
	require.NoError(t, err)
	assert.Equal(t, models.BMIResult{Value: 22.86, Category: "Normal weight"}, res)

	_, err = a.CalculateBMI(context.Background(), models.BiometricInput{HeightCm: 175})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "weight must be positive")
}

func TestCalculateBodyFatAndCalories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/calculator/body-fat":
			writeJSON(t, w, http.StatusOK, models.BodyFatResult{Percentage: 16.11})
		case "/api/calculator/calories":
			writeJSON(t, w, http.StatusOK, models.CalorieResult{Maintain: 2556})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	bf, err := a.CalculateBodyFat(context.Background(), models.BiometricInput{})
	require.NoError(t, err)
	assert.Equal(t, 16.11, bf.Percentage)

	cal, err := a.CalculateCalorieTargets(context.Background(), models.BiometricInput{})
	require.NoError(t, err)
	assert.Equal(t, 2556, cal.Maintain)
}

func TestProfileMetrics_SendsActivityLevel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/calculator/profile", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "moderate", r.URL.Query().Get("activity_level"))
		writeJSON(t, w, http.StatusOK, models.MetricsReport{
			BMI:          &models.BMIResult{Value: 22.86},
			BodyFatError: "insufficient input: waist must be positive",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	report, err := a.ProfileMetrics(context.Background(), models.Moderate)
	require.NoError(t, err)
	require.NotNil(t, report.BMI)
	assert.Nil(t, report.BodyFat)
	assert.NotEmpty(t, report.BodyFatError)
}

func TestServerVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("v1.2.3\n"))
	}))
	defer srv.Close()

	v, err := newTestAdapter(t, srv.URL).ServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", v)
}

func TestMapHTTPError_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ServerVersion(context.Background())
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewHTTPServerAdapter_EmptyBaseURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.Adapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyBaseURL)
}
