// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFullName       = errors.New("full name is required")
	ErrEmptyEmail          = errors.New("email is required")
	ErrInvalidEmail        = errors.New("email address is malformed")
	ErrInvalidPhone        = errors.New("phone must contain 7 to 15 digits")
	ErrEmptyPassword       = errors.New("password is required")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrNegativeMeasurement = errors.New("height, weight and age must not be negative")
	ErrEmptyNewPassword    = errors.New("new password is required")
	ErrSamePassword        = errors.New("new password must differ from the current one")
)
