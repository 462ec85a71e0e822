// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-gym-keeper/internal/utils"
)

// auth is an HTTP middleware that requires a live session.
//
// It extracts the bearer token from the "Authorization" header, resolves it
// with AccountService.CurrentSession and stores the session and token in
// the request context (see [utils.WithSession]). Requests without a
// header, with a malformed header or with a token that names no live
// session are answered with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		session, err := h.services.AccountService.CurrentSession(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, session, token)))
	})
}
