// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package calculator

import (
	"errors"
	"fmt"
)

// ErrInsufficientInput is returned (wrapped) by every calculation that cannot
// be performed with the supplied input. The wrapping message names the
// violated condition, for example "insufficient input: height must be positive".
var ErrInsufficientInput = errors.New("insufficient input")

func insufficient(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInsufficientInput, fmt.Sprintf(format, args...))
}

func requirePositive(name string, v float64) error {
	if !(v > 0) {
		return insufficient("%s must be positive", name)
	}
	return nil
}
