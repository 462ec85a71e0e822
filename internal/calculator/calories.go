// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package calculator

import (
	"math"
	"strings"

	"github.com/MKhiriev/go-gym-keeper/models"
)

// activityMultipliers is the only source of valid activity levels.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.Sedentary:  1.2,
	models.Light:      1.375,
	models.Moderate:   1.55,
	models.Active:     1.725,
	models.VeryActive: 1.9,
}

// Offsets from maintenance calories.
const (
	mildDelta    = 250
	regularDelta = 500
	extremeDelta = 1000
)

// ActivityMultiplier returns the TDEE multiplier for level.
func ActivityMultiplier(level models.ActivityLevel) (float64, bool) {
	m, ok := activityMultipliers[level]
	return m, ok
}

// ParseActivityLevel normalizes user input into an [models.ActivityLevel].
// "very_active", "very-active" and "veryactive" are accepted for
// [models.VeryActive]; matching is case-insensitive.
func ParseActivityLevel(s string) (models.ActivityLevel, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)

	for level := range activityMultipliers {
		if strings.ToLower(string(level)) == key {
			return level, nil
		}
	}
	return "", insufficient("unknown activity level %q", s)
}

// ParseSex normalizes user input into a [models.Sex].
func ParseSex(s string) (models.Sex, error) {
	switch sex := models.Sex(strings.ToLower(strings.TrimSpace(s))); sex {
	case models.Male, models.Female:
		return sex, nil
	default:
		return "", insufficient("sex must be %q or %q", models.Male, models.Female)
	}
}

// BMR returns the Mifflin-St Jeor basal metabolic rate in kcal/day.
func BMR(sex models.Sex, weightKg, heightCm float64, ageYears int) (float64, error) {
	if err := requirePositive("weight", weightKg); err != nil {
		return 0, err
	}
	if err := requirePositive("height", heightCm); err != nil {
		return 0, err
	}
	if ageYears <= 0 {
		return 0, insufficient("age must be positive")
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	switch sex {
	case models.Male:
		return bmr + 5, nil
	case models.Female:
		return bmr - 161, nil
	default:
		return 0, insufficient("sex must be %q or %q", models.Male, models.Female)
	}
}

// CalculateCalorieTargets returns the maintenance calories (BMR times the
// activity multiplier, rounded) and the loss/gain targets derived from it.
func CalculateCalorieTargets(sex models.Sex, weightKg, heightCm float64, ageYears int, level models.ActivityLevel) (models.CalorieResult, error) {
	bmr, err := BMR(sex, weightKg, heightCm, ageYears)
	if err != nil {
		return models.CalorieResult{}, err
	}

	multiplier, ok := ActivityMultiplier(level)
	if !ok {
		return models.CalorieResult{}, insufficient("unknown activity level %q", level)
	}

	maintain := int(math.Round(bmr * multiplier))

	return models.CalorieResult{
		Maintain:    maintain,
		MildLoss:    maintain - mildDelta,
		Loss:        maintain - regularDelta,
		ExtremeLoss: maintain - extremeDelta,
		MildGain:    maintain + mildDelta,
		Gain:        maintain + regularDelta,
	}, nil
}

// Calculate runs every metric the input allows and reports why the others
// were skipped.
func Calculate(in models.BiometricInput) models.MetricsReport {
	var report models.MetricsReport

	if bmi, err := CalculateBMI(in.WeightKg, in.HeightCm); err != nil {
		report.BMIError = err.Error()
	} else {
		report.BMI = &bmi
	}

	if bf, err := CalculateBodyFat(in.Sex, in.HeightCm, in.WaistCm, in.NeckCm, in.HipCm); err != nil {
		report.BodyFatError = err.Error()
	} else {
		report.BodyFat = &bf
	}

	if cal, err := CalculateCalorieTargets(in.Sex, in.WeightKg, in.HeightCm, in.AgeYears, in.ActivityLevel); err != nil {
		report.CaloriesError = err.Error()
	} else {
		report.Calories = &cal
	}

	return report
}
