// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-gym-keeper/models"
)

const (
	FieldFullName        = "full_name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldMeasurements    = "measurements"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
)

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

// AccountValidator validates registration, login and password-change
// payloads.
type AccountValidator struct{}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Registration:
		return v.validateRegistration(value, fields...)
	case *models.Registration:
		return v.validateRegistration(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.PasswordChange:
		return v.validatePasswordChange(value, fields...)
	case *models.PasswordChange:
		return v.validatePasswordChange(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateRegistration(r models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldEmail, FieldPhone, FieldPassword, FieldConfirmPassword, FieldMeasurements}
	}

	for _, f := range fields {
		switch f {
		case FieldFullName:
			if strings.TrimSpace(r.FullName) == "" {
				return ErrEmptyFullName
			}
		case FieldEmail:
			if err := validateEmail(r.Email); err != nil {
				return err
			}
		case FieldPhone:
			if r.Phone != "" && !isValidPhone(r.Phone) {
				return ErrInvalidPhone
			}
		case FieldPassword:
			if r.Password == "" {
				return ErrEmptyPassword
			}
		case FieldConfirmPassword:
			if r.ConfirmPassword != "" && r.ConfirmPassword != r.Password {
				return ErrPasswordMismatch
			}
		case FieldMeasurements:
			if !nonNegative(r.HeightCm) || !nonNegative(r.WeightKg) || r.AgeYears < 0 {
				return ErrNegativeMeasurement
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(c.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validatePasswordChange(p models.PasswordChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCurrentPassword, FieldNewPassword, FieldConfirmPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldCurrentPassword:
			if p.CurrentPassword == "" {
				return ErrEmptyPassword
			}
		case FieldNewPassword:
			if p.NewPassword == "" {
				return ErrEmptyNewPassword
			}
			if p.NewPassword == p.CurrentPassword {
				return ErrSamePassword
			}
		case FieldConfirmPassword:
			if p.ConfirmPassword != p.NewPassword {
				return ErrPasswordMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEmail accepts a bare RFC 5322 address; display names such as
// "Jane <jane@x.com>" are rejected.
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}
	if _, domain, _ := strings.Cut(email, "@"); !strings.Contains(domain, ".") {
		return ErrInvalidEmail
	}

	return nil
}

func isValidPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case strings.ContainsRune("+-(). ", r):
		default:
			return false
		}
	}
	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
