// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-gym-keeper/internal/logger"
	"github.com/MKhiriev/go-gym-keeper/internal/service"
	"github.com/MKhiriev/go-gym-keeper/internal/utils"
	"github.com/MKhiriev/go-gym-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var registration models.Registration
	if err := utils.DecodeJSON(w, r, &registration); err != nil {
		writeError(w, r, err)
		return
	}

	session, err := h.services.AccountService.Register(ctx, registration)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("account_id", session.Account.ID).Msg("account registered")

	w.Header().Set("Authorization", "Bearer "+session.Token)
	utils.WriteJSON(w, session, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(w, r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	session, err := h.services.AccountService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("account_id", session.Account.ID).Msg("account successfully logged in")

	w.Header().Set("Authorization", "Bearer "+session.Token)
	utils.WriteJSON(w, session, http.StatusOK)
}

// logout is idempotent: a request without a token, or with a token that
// names no session, is answered with 204 as well.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if ok {
		if err := h.services.AccountService.Logout(r.Context(), token); err != nil {
			writeError(w, r, err)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// currentSession answers 404 when no live session is attached to the
// request. Unlike protected routes, "signed out" is a regular answer here.
func (h *Handler) currentSession(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		writeErrorWithStatus(w, r, service.ErrNoSession, http.StatusNotFound)
		return
	}

	session, err := h.services.AccountService.CurrentSession(r.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			writeErrorWithStatus(w, r, err, http.StatusNotFound)
			return
		}
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var change models.PasswordChange
	if err := utils.DecodeJSON(w, r, &change); err != nil {
		writeError(w, r, err)
		return
	}

	token, _ := utils.GetTokenFromContext(ctx)
	if err := h.services.AccountService.ChangePassword(ctx, token, change); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.services.AccountService.ListAccounts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, accounts, http.StatusOK)
}

// bearerToken returns the token of a well-formed "Authorization: Bearer"
// header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	token, err := utils.ParseBearerToken(header)
	if err != nil {
		return "", false
	}
	return token, true
}
