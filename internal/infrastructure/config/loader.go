package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. PL_SYNC_TIMEOUT
const EnvPrefix = "PL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
	"../.env",
	"../../.env",
}

// LoadConfig loads configuration for the environment named by PL_ENV
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside local development
	_ = loadDotEnvFile()
	return LoadFrom(getEnvironment(), ConfigPaths...)
}

// LoadFrom loads <env>.yaml from the first matching path, then applies defaults
// and PL_ prefixed environment overrides. A missing file is not an error.
func LoadFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	return &config, nil
}

// loadDotEnvFile loads the first .env file found
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			return godotenv.Load(path)
		}
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults registers every key so AutomaticEnv can override it
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", "15s")
	v.SetDefault("server.writeTimeout", "15s")
	v.SetDefault("server.idleTimeout", "60s")
	v.SetDefault("server.readHeaderTimeout", "10s")
	v.SetDefault("server.shutdownTimeout", "10s")
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("wallet.seedBalance", 225925)
	v.SetDefault("wallet.bankName", "")
	v.SetDefault("wallet.bankAddress", "")

	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "./data/wallet.db")
	v.SetDefault("store.redis.addr", "")
	v.SetDefault("store.redis.password", "")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.redis.keyPrefix", "payledger:")

	v.SetDefault("sync.timeout", "10s")
	v.SetDefault("sync.debounce", "2s")
	v.SetDefault("sync.schedule", "@every 5m")
	v.SetDefault("sync.mirrorUrl", "")
	v.SetDefault("sync.echoLatency", "0s")

	v.SetDefault("mirror.server.host", "0.0.0.0")
	v.SetDefault("mirror.server.port", 8090)
	v.SetDefault("mirror.server.readTimeout", "15s")
	v.SetDefault("mirror.server.writeTimeout", "15s")
	v.SetDefault("mirror.server.idleTimeout", "60s")
	v.SetDefault("mirror.server.readHeaderTimeout", "10s")
	v.SetDefault("mirror.server.shutdownTimeout", "10s")

	v.SetDefault("mirror.database.driver", "postgres")
	v.SetDefault("mirror.database.host", "")
	v.SetDefault("mirror.database.port", 5432)
	v.SetDefault("mirror.database.username", "")
	v.SetDefault("mirror.database.password", "")
	v.SetDefault("mirror.database.database", "")
	v.SetDefault("mirror.database.sslMode", "disable")
	v.SetDefault("mirror.database.maxOpenConns", 25)
	v.SetDefault("mirror.database.maxIdleConns", 25)
	v.SetDefault("mirror.database.connMaxLifetime", "5m")
	v.SetDefault("mirror.database.connMaxIdleTime", "5m")
	v.SetDefault("mirror.database.queryTimeout", "10s")
	v.SetDefault("mirror.database.logLevel", "warn")
	v.SetDefault("mirror.database.retryAttempts", 3)
	v.SetDefault("mirror.database.retryDelay", "5s")
}

// getEnvironment determines the environment from PL_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the short secret variables onto their nested keys
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"PL_DB_HOST":        "mirror.database.host",
		"PL_DB_USERNAME":    "mirror.database.username",
		"PL_DB_PASSWORD":    "mirror.database.password",
		"PL_DB_NAME":        "mirror.database.database",
		"PL_DB_SSL_MODE":    "mirror.database.sslMode",
		"PL_REDIS_ADDR":     "store.redis.addr",
		"PL_REDIS_PASSWORD": "store.redis.password",
		"PL_MIRROR_URL":     "sync.mirrorUrl",
	}
	for env, key := range overrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}
}
