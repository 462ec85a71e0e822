// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// RegistrationDateLayout is the calendar-date layout used for
// [Account.RegistrationDate].
const RegistrationDateLayout = time.DateOnly

// Account is a registered gym member.
//
// PasswordHash is never serialized; use [Account.Public] before handing an
// account to anything outside the store and service layers.
type Account struct {
	// ID is assigned by the directory at creation and never changes.
	ID int64 `json:"id"`

	FullName string `json:"full_name"`

	// Email is stored as typed by the member. Uniqueness is checked on
	// [EmailKey], so "A@x.com" and "a@x.com" are the same account.
	Email string `json:"email"`
	Phone string `json:"phone"`

	// PasswordHash is the bcrypt hash of the member's password.
	PasswordHash string `json:"-"`

	HeightCm       float64 `json:"height"`
	WeightKg       float64 `json:"weight"`
	AgeYears       int     `json:"age"`
	Gender         string  `json:"gender"`
	DesiredPackage string  `json:"desired_package"`
	FitnessGoals   string  `json:"fitness_goals"`

	// RegistrationDate is the calendar date the account was created,
	// formatted with [RegistrationDateLayout].
	RegistrationDate string `json:"registration_date"`

	ProfilePicture string `json:"profile_picture"`
}

// Public returns a copy of the account with the password hash cleared.
func (a Account) Public() Account {
	a.PasswordHash = ""
	return a
}

// Biometrics extracts the profile fields the calculator can consume.
// Fields the member did not fill in stay zero and disable the metrics
// that need them.
func (a Account) Biometrics() BiometricInput {
	return BiometricInput{
		WeightKg: a.WeightKg,
		HeightCm: a.HeightCm,
		AgeYears: a.AgeYears,
		Sex:      Sex(strings.ToLower(strings.TrimSpace(a.Gender))),
	}
}

// Registration is the payload of the multi-step sign-up form.
type Registration struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password,omitempty"`

	HeightCm       float64 `json:"height,omitempty"`
	WeightKg       float64 `json:"weight,omitempty"`
	AgeYears       int     `json:"age,omitempty"`
	Gender         string  `json:"gender,omitempty"`
	DesiredPackage string  `json:"desired_package,omitempty"`
	FitnessGoals   string  `json:"fitness_goals,omitempty"`
	ProfilePicture string  `json:"profile_picture,omitempty"`
}

// Account builds the account record for r. ID, PasswordHash and
// RegistrationDate are left for the directory to fill in.
func (r Registration) Account() Account {
	return Account{
		FullName:       strings.TrimSpace(r.FullName),
		Email:          strings.TrimSpace(r.Email),
		Phone:          strings.TrimSpace(r.Phone),
		HeightCm:       r.HeightCm,
		WeightKg:       r.WeightKg,
		AgeYears:       r.AgeYears,
		Gender:         r.Gender,
		DesiredPackage: r.DesiredPackage,
		FitnessGoals:   r.FitnessGoals,
		ProfilePicture: r.ProfilePicture,
	}
}

// String hides the password fields so a registration can be logged.
func (r Registration) String() string {
	return "Registration{email=" + r.Email + ", full_name=" + r.FullName + "}"
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c Credentials) String() string {
	return "Credentials{email=" + c.Email + "}"
}

// PasswordChange is the payload of the change-password form.
type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (p PasswordChange) String() string {
	return "PasswordChange{***}"
}

// EmailKey normalizes an email address for uniqueness checks and lookups.
func EmailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
