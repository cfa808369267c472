// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Keys follow the
// `envPrefix` chain of [StructuredConfig], for example SERVER_ADDRESS,
// STORAGE_DB_DATABASE_URI, APP_LOG_LEVEL and ADAPTER_REQUEST_TIMEOUT.
func parseEnv(cfg any) error {
	return parseEnvFrom(cfg, env.ToMap(os.Environ()))
}

// parseEnvFrom is [parseEnv] over an explicit key/value set. Unset keys
// leave their fields zero so the builder can merge other sources on top.
func parseEnvFrom(cfg any, environ map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: environ})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
