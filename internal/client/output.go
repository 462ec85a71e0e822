// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-gym-keeper/models"
)

func printBMI(w io.Writer, res models.BMIResult) {
	fmt.Fprintf(w, "BMI: %.2f (%s)\n", res.Value, res.Category)
}

func printBodyFat(w io.Writer, res models.BodyFatResult) {
	fmt.Fprintf(w, "Body fat: %.2f%%\n", res.Percentage)
}

func printCalories(w io.Writer, res models.CalorieResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Maintain weight\t%d kcal/day\n", res.Maintain)
	fmt.Fprintf(tw, "Mild weight loss\t%d kcal/day\n", res.MildLoss)
	fmt.Fprintf(tw, "Weight loss\t%d kcal/day\n", res.Loss)
	fmt.Fprintf(tw, "Extreme weight loss\t%d kcal/day\n", res.ExtremeLoss)
	fmt.Fprintf(tw, "Mild weight gain\t%d kcal/day\n", res.MildGain)
	fmt.Fprintf(tw, "Weight gain\t%d kcal/day\n", res.Gain)
	return tw.Flush()
}

// printReport prints every metric of the report, or why it is missing.
func printReport(w io.Writer, report models.MetricsReport) error {
	if report.BMI != nil {
		printBMI(w, *report.BMI)
	} else {
		fmt.Fprintf(w, "BMI: n/a (%s)\n", report.BMIError)
	}

	if report.BodyFat != nil {
		printBodyFat(w, *report.BodyFat)
	} else {
		fmt.Fprintf(w, "Body fat: n/a (%s)\n", report.BodyFatError)
	}

	if report.Calories != nil {
		return printCalories(w, *report.Calories)
	}
	fmt.Fprintf(w, "Calories: n/a (%s)\n", report.CaloriesError)
	return nil
}

func printSession(w io.Writer, session models.Session) {
	fmt.Fprintf(w, "Signed in as %s <%s> (id %d)\n",
		session.Account.FullName, session.Account.Email, session.Account.ID)
	if !session.ExpiresAt.IsZero() {
		fmt.Fprintf(w, "Session expires at %s\n", session.ExpiresAt.Local().Format(time.RFC1123))
	}
}

func printAccounts(w io.Writer, accounts []models.Account) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tREGISTERED")
	for _, acc := range accounts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			acc.ID, acc.FullName, acc.Email, acc.Phone, acc.RegistrationDate)
	}
	return tw.Flush()
}
