// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The master secret is deliberately not checked here: without it the
// service still starts and reports the secrets feature as unhealthy.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.MembershipURL != "" {
		u, err := url.Parse(cfg.Adapter.MembershipURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: membership url %q", ErrInvalidAdapterConfigs, cfg.Adapter.MembershipURL)
		}
	}

	if cfg.Workers.AuditRetention <= 0 || cfg.Workers.AuditPruneInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
