// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gym-keeper/internal/calculator"
	"github.com/MKhiriev/go-gym-keeper/internal/logger"
	"github.com/MKhiriev/go-gym-keeper/internal/store"
	"github.com/MKhiriev/go-gym-keeper/internal/telemetry"
	"github.com/MKhiriev/go-gym-keeper/models"
)

// Calculation kinds used as metric labels.
const (
	CalculationBMI      = "bmi"
	CalculationBodyFat  = "body_fat"
	CalculationCalories = "calories"
	CalculationProfile  = "profile"
)

type calculatorService struct {
	accounts store.AccountRepository
	metrics  *telemetry.Metrics
	logger   *logger.Logger
}

func NewCalculatorService(accounts store.AccountRepository, metrics *telemetry.Metrics, logger *logger.Logger) CalculatorService {
	return &calculatorService{
		accounts: accounts,
		metrics:  metrics,
		logger:   logger,
	}
}

func (c *calculatorService) BMI(ctx context.Context, input models.BiometricInput) (models.BMIResult, error) {
	result, err := calculator.CalculateBMI(input.WeightKg, input.HeightCm)
	c.record(ctx, CalculationBMI, err)
	return result, err
}

func (c *calculatorService) BodyFat(ctx context.Context, input models.BiometricInput) (models.BodyFatResult, error) {
	result, err := calculator.CalculateBodyFat(input.Sex, input.HeightCm, input.WaistCm, input.NeckCm, input.HipCm)
	c.record(ctx, CalculationBodyFat, err)
	return result, err
}

func (c *calculatorService) Calories(ctx context.Context, input models.BiometricInput) (models.CalorieResult, error) {
	result, err := calculator.CalculateCalorieTargets(input.Sex, input.WeightKg, input.HeightCm, input.AgeYears, input.ActivityLevel)
	c.record(ctx, CalculationCalories, err)
	return result, err
}

// ProfileMetrics reads the stored account so that profile edits made after
// login are reflected.
func (c *calculatorService) ProfileMetrics(ctx context.Context, accountID int64, level models.ActivityLevel) (models.MetricsReport, error) {
	account, err := c.accounts.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.MetricsReport{}, ErrAccountNotFound
		}
		logger.FromContext(ctx).Err(err).Int64("account_id", accountID).Msg("account search by id failed")
		return models.MetricsReport{}, fmt.Errorf("account search by id failed: %w", err)
	}

	input := account.Biometrics()
	input.ActivityLevel = level

	report := calculator.Calculate(input)
	c.metrics.IncCalculation(CalculationProfile, nil)
	return report, nil
}

func (c *calculatorService) record(ctx context.Context, kind string, err error) {
	c.metrics.IncCalculation(kind, err)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("calculation", kind).Msg("calculation rejected")
	}
}
