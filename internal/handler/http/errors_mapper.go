// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-gym-keeper/internal/calculator"
	"github.com/MKhiriev/go-gym-keeper/internal/logger"
	"github.com/MKhiriev/go-gym-keeper/internal/service"
	"github.com/MKhiriev/go-gym-keeper/internal/utils"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is ordered: the first match wins.
var errorStatuses = []errorStatus{
	{utils.ErrInvalidJSON, http.StatusBadRequest},
	{calculator.ErrInsufficientInput, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},

	{service.ErrDuplicateEmail, http.StatusConflict},

	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrNoSession, http.StatusUnauthorized},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAdminKey, http.StatusUnauthorized},

	{service.ErrAccountNotFound, http.StatusNotFound},

	{context.DeadlineExceeded, http.StatusGatewayTimeout},
	{context.Canceled, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and a plain-text body
// naming the violated condition. Server-side failures are logged and
// answered with the bare status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeErrorWithStatus(w, r, err, statusFromError(err))
}

func writeErrorWithStatus(w http.ResponseWriter, r *http.Request, err error, status int) {
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}
