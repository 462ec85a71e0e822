// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-gym-keeper/internal/service"
	"github.com/MKhiriev/go-gym-keeper/internal/validators"
	"github.com/MKhiriev/go-gym-keeper/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// ── register ─────────────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	const body = `{"full_name":"Jane","email":"jane@example.com","password":"s3cret"}`

	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{name: "created", body: body, wantStatus: http.StatusCreated},
		{name: "duplicate email", body: body, serviceErr: service.ErrDuplicateEmail, wantStatus: http.StatusConflict, wantBody: "email is already registered"},
		{
			name:       "validation failure",
			body:       body,
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidEmail),
			wantStatus: http.StatusBadRequest,
			wantBody:   "email address is malformed",
		},
		{name: "storage failure", body: body, serviceErr: errors.New("disk full"), wantStatus: http.StatusInternalServerError, wantBody: "Internal Server Error"},
		{name: "malformed json", body: `{"email":`, wantStatus: http.StatusBadRequest, wantBody: "invalid JSON body"},
		{name: "empty body", body: "", wantStatus: http.StatusBadRequest, wantBody: "invalid JSON body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			if tt.wantStatus != http.StatusBadRequest || tt.serviceErr != nil {
				th.accounts.EXPECT().
					Register(gomock.Any(), models.Registration{FullName: "Jane", Email: "jane@example.com", Password: "s3cret"}).
					Return(models.Session{ID: "sid", Account: models.Account{ID: 1}, Token: "tok"}, tt.serviceErr)
			}

			rec := th.do(t, http.MethodPost, "/api/account/register", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "Bearer tok", rec.Header().Get("Authorization"))
				session := decodeBody[models.Session](t, rec)
				assert.Equal(t, "tok", session.Token)
				assert.Equal(t, int64(1), session.Account.ID)
				return
			}
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

// ── login ────────────────────────────────────────────────────────────────────

func TestLogin(t *testing.T) {
	th := newTestHandler(t)
	creds := models.Credentials{Email: "jane@example.com", Password: "s3cret"}

	th.accounts.EXPECT().Login(gomock.Any(), creds).Return(models.Session{ID: "sid", Token: "tok"}, nil)
	rec := th.do(t, http.MethodPost, "/api/account/login", `{"email":"jane@example.com","password":"s3cret"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer tok", rec.Header().Get("Authorization"))

	th.accounts.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Session{}, service.ErrInvalidCredentials)
	rec = th.do(t, http.MethodPost, "/api/account/login", `{"email":"jane@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email or password")
}

// ── logout ───────────────────────────────────────────────────────────────────

func TestLogout(t *testing.T) {
	th := newTestHandler(t)

	rec := th.do(t, http.MethodPost, "/api/account/logout", "")
	assert.Equal(t, http.StatusNoContent, rec.Code, "no token is still a successful logout")

	th.accounts.EXPECT().Logout(gomock.Any(), "tok").Return(nil)
	rec = th.do(t, http.MethodPost, "/api/account/logout", "", bearer("tok")...)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	th.accounts.EXPECT().Logout(gomock.Any(), "tok").Return(errors.New("redis down"))
	rec = th.do(t, http.MethodPost, "/api/account/logout", "", bearer("tok")...)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ── session ──────────────────────────────────────────────────────────────────

func TestCurrentSession(t *testing.T) {
	th := newTestHandler(t)

	rec := th.do(t, http.MethodGet, "/api/account/session", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = th.do(t, http.MethodGet, "/api/account/session", "", "Authorization", "Basic abc")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	th.accounts.EXPECT().CurrentSession(gomock.Any(), "gone").Return(models.Session{}, service.ErrNoSession)
	rec = th.do(t, http.MethodGet, "/api/account/session", "", bearer("gone")...)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no active session")

	live := models.Session{ID: "sid", Account: models.Account{ID: 3, Email: "a@x.com"}, Token: "live"}
	th.accounts.EXPECT().CurrentSession(gomock.Any(), "live").Return(live, nil)
	rec = th.do(t, http.MethodGet, "/api/account/session", "", bearer("live")...)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, live.Account, decodeBody[models.Session](t, rec).Account)

	th.accounts.EXPECT().CurrentSession(gomock.Any(), "boom").Return(models.Session{}, errors.New("redis down"))
	rec = th.do(t, http.MethodGet, "/api/account/session", "", bearer("boom")...)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ── password ─────────────────────────────────────────────────────────────────

func TestChangePassword(t *testing.T) {
	th := newTestHandler(t)
	const body = `{"current_password":"old","new_password":"new","confirm_password":"new"}`
	change := models.PasswordChange{CurrentPassword: "old", NewPassword: "new", ConfirmPassword: "new"}

	rec := th.do(t, http.MethodPut, "/api/account/password", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "protected route needs a token")

	th.accounts.EXPECT().CurrentSession(gomock.Any(), "tok").Return(models.Session{ID: "sid"}, nil).Times(2)

	th.accounts.EXPECT().ChangePassword(gomock.Any(), "tok", change).Return(nil)
	rec = th.do(t, http.MethodPut, "/api/account/password", body, bearer("tok")...)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	th.accounts.EXPECT().ChangePassword(gomock.Any(), "tok", change).Return(service.ErrInvalidCredentials)
	rec = th.do(t, http.MethodPut, "/api/account/password", body, bearer("tok")...)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ── admin ────────────────────────────────────────────────────────────────────

func TestListAccounts(t *testing.T) {
	th := newTestHandler(t)

	rec := th.do(t, http.MethodGet, "/api/admin/accounts", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = th.do(t, http.MethodGet, "/api/admin/accounts", "", adminKeyHeader, "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	accounts := []models.Account{{ID: 1, Email: "a@x.com"}, {ID: 2, Email: "b@x.com"}}
	th.accounts.EXPECT().ListAccounts(gomock.Any()).Return(accounts, nil)
	rec = th.do(t, http.MethodGet, "/api/admin/accounts", "", adminKeyHeader, testAdminKey)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, accounts, decodeBody[[]models.Account](t, rec))
	assert.NotContains(t, rec.Body.String(), "password")
}
