// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package calculator

import (
	"math"

	"github.com/MKhiriev/go-gym-keeper/models"
)

// CalculateBodyFat estimates body-fat percentage with the U.S. Navy
// circumference method. hipCm is required for females and ignored for males.
func CalculateBodyFat(sex models.Sex, heightCm, waistCm, neckCm, hipCm float64) (models.BodyFatResult, error) {
	if err := requirePositive("height", heightCm); err != nil {
		return models.BodyFatResult{}, err
	}
	if err := requirePositive("waist", waistCm); err != nil {
		return models.BodyFatResult{}, err
	}
	if err := requirePositive("neck", neckCm); err != nil {
		return models.BodyFatResult{}, err
	}

	var density float64
	switch sex {
	case models.Male:
		girth := waistCm - neckCm
		if girth <= 0 {
			return models.BodyFatResult{}, insufficient("waist must be greater than neck")
		}
		density = 1.0324 - 0.19077*math.Log10(girth) + 0.15456*math.Log10(heightCm)
	case models.Female:
		if err := requirePositive("hip", hipCm); err != nil {
			return models.BodyFatResult{}, err
		}
		girth := waistCm + hipCm - neckCm
		if girth <= 0 {
			return models.BodyFatResult{}, insufficient("waist plus hip must be greater than neck")
		}
		density = 1.29579 - 0.35004*math.Log10(girth) + 0.22100*math.Log10(heightCm)
	default:
		return models.BodyFatResult{}, insufficient("sex must be %q or %q", models.Male, models.Female)
	}

	if density == 0 {
		return models.BodyFatResult{}, insufficient("measurements produce no finite body fat")
	}

	bodyFat := 495/density - 450
	if math.IsNaN(bodyFat) || math.IsInf(bodyFat, 0) {
		return models.BodyFatResult{}, insufficient("measurements produce no finite body fat")
	}

	return models.BodyFatResult{Percentage: round2(bodyFat)}, nil
}
