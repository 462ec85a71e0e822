// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-gym-keeper/internal/calculator"
	"github.com/MKhiriev/go-gym-keeper/internal/utils"
	"github.com/MKhiriev/go-gym-keeper/models"
)

func (h *Handler) calculateBMI(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeBiometrics(w, r)
	if !ok {
		return
	}

	result, err := h.services.CalculatorService.BMI(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) calculateBodyFat(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeBiometrics(w, r)
	if !ok {
		return
	}

	result, err := h.services.CalculatorService.BodyFat(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) calculateCalories(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeBiometrics(w, r)
	if !ok {
		return
	}

	result, err := h.services.CalculatorService.Calories(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// profileMetrics computes the metrics of the signed-in account. The
// optional "activity_level" query parameter enables calorie targets.
func (h *Handler) profileMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var level models.ActivityLevel
	if raw := r.URL.Query().Get("activity_level"); raw != "" {
		parsed, err := calculator.ParseActivityLevel(raw)
		if err != nil {
			writeError(w, r, err)
			return
		}
		level = parsed
	}

	session, _ := utils.GetSessionFromContext(ctx)
	report, err := h.services.CalculatorService.ProfileMetrics(ctx, session.Account.ID, level)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

// decodeBiometrics reads the request body and normalizes the sex and
// activity level spellings. It answers the request itself on failure.
func decodeBiometrics(w http.ResponseWriter, r *http.Request) (models.BiometricInput, bool) {
	var input models.BiometricInput
	if err := utils.DecodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return models.BiometricInput{}, false
	}

	if input.Sex != "" {
		sex, err := calculator.ParseSex(string(input.Sex))
		if err != nil {
			writeError(w, r, err)
			return models.BiometricInput{}, false
		}
		input.Sex = sex
	}

	if input.ActivityLevel != "" {
		level, err := calculator.ParseActivityLevel(string(input.ActivityLevel))
		if err != nil {
			writeError(w, r, err)
			return models.BiometricInput{}, false
		}
		input.ActivityLevel = level
	}

	return input, true
}
