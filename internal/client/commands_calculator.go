// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"

	"github.com/MKhiriev/go-gym-keeper/models"
)

type biometricFlags struct {
	input    models.BiometricInput
	sex      string
	activity string
}

func newBiometricFlags(fs *flag.FlagSet) *biometricFlags {
	b := &biometricFlags{}
	fs.Float64Var(&b.input.WeightKg, "weight", 0, "Weight in kg")
	fs.Float64Var(&b.input.HeightCm, "height", 0, "Height in cm")
	fs.IntVar(&b.input.AgeYears, "age", 0, "Age in years")
	fs.Float64Var(&b.input.WaistCm, "waist", 0, "Waist circumference in cm")
	fs.Float64Var(&b.input.NeckCm, "neck", 0, "Neck circumference in cm")
	fs.Float64Var(&b.input.HipCm, "hip", 0, "Hip circumference in cm (female only)")
	fs.StringVar(&b.sex, "sex", "", "male or female")
	fs.StringVar(&b.activity, "activity", "", "sedentary, light, moderate, active or veryActive")
	return b
}

// value returns the input. Sex and activity level are sent as typed; the
// server normalizes them.
func (b *biometricFlags) value() models.BiometricInput {
	in := b.input
	in.Sex = models.Sex(b.sex)
	in.ActivityLevel = models.ActivityLevel(b.activity)
	return in
}

func (a *App) bmi(ctx context.Context, args []string) error {
	fs := a.flagSet("bmi")
	b := newBiometricFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	res, err := a.server.CalculateBMI(ctx, b.value())
	if err != nil {
		return err
	}

	printBMI(a.out, res)
	return nil
}

func (a *App) bodyFat(ctx context.Context, args []string) error {
	fs := a.flagSet("body-fat")
	b := newBiometricFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	res, err := a.server.CalculateBodyFat(ctx, b.value())
	if err != nil {
		return err
	}

	printBodyFat(a.out, res)
	return nil
}

func (a *App) calories(ctx context.Context, args []string) error {
	fs := a.flagSet("calories")
	b := newBiometricFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	res, err := a.server.CalculateCalorieTargets(ctx, b.value())
	if err != nil {
		return err
	}

	return printCalories(a.out, res)
}

func (a *App) metrics(ctx context.Context, args []string) error {
	fs := a.flagSet("metrics")
	activity := fs.String("activity", "", "Activity level for calorie targets")
	if err := fs.Parse(args); err != nil {
		return err
	}

	report, err := a.server.ProfileMetrics(ctx, models.ActivityLevel(*activity))
	if err != nil {
		return err
	}

	return printReport(a.out, report)
}
