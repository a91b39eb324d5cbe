package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "sign"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/vault"}},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder(nil)
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty builder fails validation
// because no DSN is configured.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder(nil).build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_AppliesDefaults verifies that unset fields receive defaults.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultGRPCAddress, cfg.Server.GRPCAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, []string{"secret", "credentials", "env"}, cfg.App.SecretNoteTypes)
	assert.Equal(t, 90*24*time.Hour, cfg.Workers.AuditRetention)
	assert.Equal(t, time.Hour, cfg.Workers.AuditPruneInterval)
	assert.Empty(t, cfg.App.MasterSecret)
}

// TestBuild_LaterSourcesOverride verifies that fields from later configs
// override earlier ones while unset fields are kept.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder(nil)
	first := validConfig()
	first.App.Version = "1.0.0"
	first.App.TokenIssuer = "env-issuer"

	b.configs = append(b.configs,
		first,
		&StructuredConfig{App: App{TokenIssuer: "json-issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
}

// TestBuild_MissingMasterSecretIsNotAnError verifies that the service can
// start without a master secret.
func TestBuild_MissingMasterSecretIsNotAnError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, validConfig())

	_, err := b.build()
	assert.NoError(t, err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "sqlite driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = DriverSQLite }},
		{name: "missing sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing http address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "membership url without scheme", mutate: func(cfg *StructuredConfig) { cfg.Adapter.MembershipURL = "members.local" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "membership url", mutate: func(cfg *StructuredConfig) { cfg.Adapter.MembershipURL = "http://members.local:8081" }},
		{name: "negative retention", mutate: func(cfg *StructuredConfig) { cfg.Workers.AuditRetention = -time.Hour }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

// TestWithDotEnv_LoadsFile verifies that variables from a .env file become
// visible to withEnv.
func TestWithDotEnv_LoadsFile(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_TOKEN_ISSUER=dotenv-issuer\n"), 0o600))

	b := newConfigBuilder(nil).withDotEnv(path).withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "dotenv-issuer", b.configs[0].App.TokenIssuer)
}

// TestWithDotEnv_DoesNotOverrideEnvironment verifies that real environment
// variables win over the .env file.
func TestWithDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_TOKEN_ISSUER", "real-env")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_TOKEN_ISSUER=dotenv-issuer\n"), 0o600))

	b := newConfigBuilder(nil).withDotEnv(path).withEnv()

	require.NoError(t, b.err)
	assert.Equal(t, "real-env", b.configs[0].App.TokenIssuer)
}

// TestWithDotEnv_MissingFileIsIgnored verifies that an absent .env file is
// not an error.
func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder(nil).withDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, b.err)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder(nil)
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder(nil)
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

// TestWithEnv_SetsErrorOnBadValue verifies that conversion failures are
// collected into b.err.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("SERVER_REQUEST_TIMEOUT", "forever")

	b := newConfigBuilder(nil)
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_UsesBuilderArgs verifies that flags come from the builder's
// argument list.
func TestWithFlags_UsesBuilderArgs(t *testing.T) {
	b := newConfigBuilder([]string{"-d", "file:vault.db", "-db-driver", "sqlite3"})
	assert.Same(t, b, b.withFlags())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "file:vault.db", b.configs[0].Storage.DB.DSN)
	assert.Equal(t, DriverSQLite, b.configs[0].Storage.DB.Driver)
}

// TestWithFlags_SetsErrorOnUnknownFlag verifies that bad flags are reported.
func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder([]string{"-nope"})
	b.withFlags()
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.App.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	last := StructuredJSONConfig{}
	last.App.Version = "last-wins"

	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestBuilder_FullChain verifies env, flags and JSON layering end to end.
func TestBuilder_FullChain(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/db")
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-sign")
	t.Setenv("APP_MASTER_SECRET", "env-master-secret-0123456789abcdef")

	payload := StructuredJSONConfig{}
	payload.App.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	cfg, err := newConfigBuilder([]string{"-d", "postgres://flag/db", "-c", path}).
		withDotEnv(filepath.Join(t.TempDir(), "absent.env")).
		withEnv().
		withFlags().
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "postgres://flag/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "env-sign", cfg.App.TokenSignKey)
	assert.Equal(t, "env-master-secret-0123456789abcdef", cfg.App.MasterSecret)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
}
