// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Sex selects the formula variant used by the body-fat and calorie
// calculations.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ActivityLevel selects the TDEE multiplier applied to the basal
// metabolic rate.
type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "veryActive"
)

// BiometricInput carries the measurements submitted for a calculation.
// Zero means "not supplied" for every field.
type BiometricInput struct {
	WeightKg      float64       `json:"weight_kg"`
	HeightCm      float64       `json:"height_cm"`
	AgeYears      int           `json:"age_years"`
	Sex           Sex           `json:"sex"`
	WaistCm       float64       `json:"waist_cm,omitempty"`
	NeckCm        float64       `json:"neck_cm,omitempty"`
	HipCm         float64       `json:"hip_cm,omitempty"`
	ActivityLevel ActivityLevel `json:"activity_level,omitempty"`
}

// BMIResult is the body-mass index rounded to two decimals and its
// category label.
type BMIResult struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

// BodyFatResult is the U.S. Navy body-fat estimate rounded to two decimals.
type BodyFatResult struct {
	Percentage float64 `json:"percentage"`
}

// CalorieResult holds the daily calorie targets. Every field other than
// Maintain is a fixed offset from Maintain.
type CalorieResult struct {
	Maintain    int `json:"maintain"`
	MildLoss    int `json:"mild_loss"`
	Loss        int `json:"loss"`
	ExtremeLoss int `json:"extreme_loss"`
	MildGain    int `json:"mild_gain"`
	Gain        int `json:"gain"`
}

// MetricsReport bundles every metric that could be computed from one
// input. A nil result comes with the reason in the matching error field.
type MetricsReport struct {
	BMI           *BMIResult     `json:"bmi,omitempty"`
	BMIError      string         `json:"bmi_error,omitempty"`
	BodyFat       *BodyFatResult `json:"body_fat,omitempty"`
	BodyFatError  string         `json:"body_fat_error,omitempty"`
	Calories      *CalorieResult `json:"calories,omitempty"`
	CaloriesError string         `json:"calories_error,omitempty"`
}
