// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. Variable names come from the
// `env` and `envPrefix` tags, e.g. STORAGE_SESSIONS_REDIS_ADDRESS; unset
// variables leave their fields zero so later sources can fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading environment: %w", err)
	}
	return nil
}
