package config

import (
	"time"

	"github.com/Art-of-Technology/collab-sub012/internal/vault"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

const (
	defaultHTTPAddress        = "localhost:8080"
	defaultGRPCAddress        = "localhost:9090"
	defaultRequestTimeout     = 30 * time.Second
	defaultAdapterTimeout     = 5 * time.Second
	defaultTokenIssuer        = "collab"
	defaultAuditRetention     = 90 * 24 * time.Hour
	defaultAuditPruneInterval = time.Hour
	defaultDotEnvFile         = ".env"
)

// applyDefaults fills fields that no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverPostgres
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.GRPCAddress == "" {
		cfg.Server.GRPCAddress = defaultGRPCAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if len(cfg.App.SecretNoteTypes) == 0 {
		cfg.App.SecretNoteTypes = append([]string(nil), vault.DefaultSecretNoteTypes...)
	}
	if cfg.Workers.AuditRetention == 0 {
		cfg.Workers.AuditRetention = defaultAuditRetention
	}
	if cfg.Workers.AuditPruneInterval == 0 {
		cfg.Workers.AuditPruneInterval = defaultAuditPruneInterval
	}
}
