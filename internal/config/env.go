// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// masterSecretFileEnv names a file holding the master secret, for
// deployments that mount secrets as files. APP_MASTER_SECRET wins when both
// are set.
const masterSecretFileEnv = "APP_MASTER_SECRET_FILE"

// loadDotEnv copies variables from file into the process environment without
// overriding ones that are already set. A missing file is not an error.
func loadDotEnv(file string) error {
	if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", file, err)
	}
	return nil
}

// parseEnv populates cfg from the `env` and `envPrefix` tags of
// [StructuredConfig].
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if path := os.Getenv(masterSecretFileEnv); path != "" && cfg.App.MasterSecret == "" {
		secret, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", masterSecretFileEnv, err)
		}
		cfg.App.MasterSecret = strings.TrimRight(string(secret), "\r\n")
	}

	return nil
}
