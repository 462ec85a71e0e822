// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package calculator

import (
	"math"

	"github.com/MKhiriev/go-gym-keeper/models"
)

// BMI category labels.
const (
	CategoryUnderweight = "Underweight"
	CategoryNormal      = "Normal weight"
	CategoryOverweight  = "Overweight"
	CategoryObesity     = "Obesity"
)

// CalculateBMI returns weight / height² (height in meters) rounded to two
// decimals. The category is taken from the unrounded value, so 24.9975 is
// reported as 25 yet stays "Normal weight".
func CalculateBMI(weightKg, heightCm float64) (models.BMIResult, error) {
	if err := requirePositive("weight", weightKg); err != nil {
		return models.BMIResult{}, err
	}
	if err := requirePositive("height", heightCm); err != nil {
		return models.BMIResult{}, err
	}

	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	if math.IsInf(bmi, 0) || math.IsNaN(bmi) {
		return models.BMIResult{}, insufficient("weight and height produce no finite BMI")
	}

	return models.BMIResult{Value: round2(bmi), Category: BMICategory(bmi)}, nil
}

// BMICategory maps a BMI value onto its category. Intervals are closed on the
// lower bound: 18.5 is "Normal weight", 25 is "Overweight", 30 is "Obesity".
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObesity
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
