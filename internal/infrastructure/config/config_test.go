package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, env, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadFrom(t *testing.T) {
	t.Run("should fall back to defaults without a config file", func(t *testing.T) {
		cfg, err := LoadFrom(Test, t.TempDir())

		require.NoError(t, err)
		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, int64(225925), cfg.Wallet.SeedBalance)
		assert.Equal(t, 10*time.Second, cfg.Sync.Timeout)
		assert.Equal(t, 2*time.Second, cfg.Sync.Debounce)
		assert.Equal(t, "@every 5m", cfg.Sync.Schedule)
		assert.Equal(t, "sqlite", cfg.Store.Driver)
		assert.Equal(t, 5*time.Second, cfg.Mirror.Database.RetryDelay)
		assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
		require.NoError(t, cfg.ValidateWallet())
	})

	t.Run("should read values from the environment file", func(t *testing.T) {
		dir := writeConfig(t, Development, `
server:
  port: 9000
  allowedOrigins: ["http://localhost:3000"]
wallet:
  seedBalance: 1000
  bankName: HDFC Savings
  bankAddress: me@hdfc
store:
  driver: memory
sync:
  timeout: 3s
  debounce: -1s
  mirrorUrl: http://mirror.local:8090
`)

		cfg, err := LoadFrom(Development, dir)

		require.NoError(t, err)
		assert.Equal(t, 9000, cfg.Server.Port)
		assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr())
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
		assert.Equal(t, int64(1000), cfg.Wallet.SeedBalance)
		assert.Equal(t, "me@hdfc", cfg.Wallet.BankAddress)
		assert.Equal(t, "memory", cfg.Store.KV().Driver)
		assert.Equal(t, 3*time.Second, cfg.Sync.Timeout)
		assert.Equal(t, -time.Second, cfg.Sync.Debounce)
		assert.Equal(t, "http://mirror.local:8090", cfg.Sync.MirrorURL)
	})

	t.Run("should let environment variables override the file", func(t *testing.T) {
		dir := writeConfig(t, Development, "sync:\n  timeout: 3s\n")
		t.Setenv("PL_SYNC_TIMEOUT", "7s")
		t.Setenv("PL_WALLET_SEEDBALANCE", "50")
		t.Setenv("PL_DB_PASSWORD", "s3cret")
		t.Setenv("PL_REDIS_ADDR", "localhost:6379")

		cfg, err := LoadFrom(Development, dir)

		require.NoError(t, err)
		assert.Equal(t, 7*time.Second, cfg.Sync.Timeout)
		assert.Equal(t, int64(50), cfg.Wallet.SeedBalance)
		assert.Equal(t, "s3cret", cfg.Mirror.Database.Password)
		assert.Equal(t, "localhost:6379", cfg.Store.KV().Redis.Addr)
	})

	t.Run("should fail on a malformed file", func(t *testing.T) {
		dir := writeConfig(t, Development, "server: [nope")

		_, err := LoadFrom(Development, dir)

		assert.Error(t, err)
	})
}

func TestConfig_ValidateWallet(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"port", func(c *Config) { c.Server.Port = 0 }},
		{"log level", func(c *Config) { c.Logger.Level = "verbose" }},
		{"seed balance", func(c *Config) { c.Wallet.SeedBalance = -1 }},
		{"bank address", func(c *Config) { c.Wallet.BankAddress = "bank" }},
		{"store driver", func(c *Config) { c.Store.Driver = "leveldb" }},
		{"sqlite path", func(c *Config) { c.Store.Path = "" }},
		{"redis addr", func(c *Config) { c.Store.Driver = "redis" }},
		{"sync timeout", func(c *Config) { c.Sync.Timeout = 0 }},
		{"mirror url", func(c *Config) { c.Sync.MirrorURL = "not a url" }},
	}

	for _, tc := range testCases {
		t.Run("should reject invalid "+tc.name, func(t *testing.T) {
			cfg, err := LoadFrom(Test, t.TempDir())
			require.NoError(t, err)

			tc.mutate(cfg)

			assert.Error(t, cfg.ValidateWallet())
		})
	}
}

func TestConfig_ValidateMirror(t *testing.T) {
	cfg, err := LoadFrom(Test, t.TempDir())
	require.NoError(t, err)

	assert.Error(t, cfg.ValidateMirror(), "database credentials have no defaults")

	cfg.Mirror.Database.Host = "localhost"
	cfg.Mirror.Database.Username = "payledger"
	cfg.Mirror.Database.Database = "mirror"
	assert.NoError(t, cfg.ValidateMirror())
	assert.False(t, cfg.IsProduction())
}
