// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-gym-keeper/internal/utils"
)

const adminKeyHeader = "X-Admin-Key"

// adminOnly admits requests whose "X-Admin-Key" header equals the
// configured admin key. Without a configured key the admin routes answer
// 404 as if they did not exist.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.adminKey == "" {
			http.NotFound(w, r)
			return
		}

		if !utils.SecureCompare(r.Header.Get(adminKeyHeader), h.adminKey) {
			writeError(w, r, ErrInvalidAdminKey)
			return
		}

		next.ServeHTTP(w, r)
	})
}
