// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "context"

// Validator checks a value before it reaches a service.
type Validator interface {
	// Validate checks obj. When fields are given only those checks run;
	// otherwise every check for obj's type runs. Unsupported types yield
	// ErrUnsupportedType and unknown field names ErrUnknownField.
	Validate(context.Context, any, ...string) error
}
