package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/payledger/internal/infrastructure/adapter/kvstore"
)

// Config holds all configuration for the wallet and mirror binaries
type Config struct {
	Environment string       `mapstructure:"environment"`
	Server      ServerConfig `mapstructure:"server"`
	Logger      LoggerConfig `mapstructure:"logger"`
	Wallet      WalletConfig `mapstructure:"wallet"`
	Store       StoreConfig  `mapstructure:"store"`
	Sync        SyncConfig   `mapstructure:"sync"`
	Mirror      MirrorConfig `mapstructure:"mirror"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port" validate:"gt=0,lte=65535"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout" validate:"gt=0"`
	WriteTimeout      time.Duration `mapstructure:"writeTimeout" validate:"gt=0"`
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout" validate:"gt=0"`
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// WalletConfig contains settings of the wallet core
type WalletConfig struct {
	SeedBalance int64  `mapstructure:"seedBalance" validate:"gte=0"`
	BankName    string `mapstructure:"bankName"`
	BankAddress string `mapstructure:"bankAddress" validate:"omitempty,contains=@"`
}

// StoreConfig selects the local key-value store
type StoreConfig struct {
	Driver string      `mapstructure:"driver" validate:"oneof=memory sqlite redis"`
	Path   string      `mapstructure:"path" validate:"required_if=Driver sqlite"`
	Redis  RedisConfig `mapstructure:"redis"`
}

// RedisConfig contains redis connection settings for the redis store driver
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db" validate:"gte=0"`
	KeyPrefix string `mapstructure:"keyPrefix"`
}

// KV converts the settings for kvstore.Open
func (s StoreConfig) KV() kvstore.Config {
	return kvstore.Config{
		Driver: s.Driver,
		Path:   s.Path,
		Redis: kvstore.RedisOptions{
			Addr:      s.Redis.Addr,
			Password:  s.Redis.Password,
			DB:        s.Redis.DB,
			KeyPrefix: s.Redis.KeyPrefix,
		},
	}
}

// SyncConfig contains sync engine settings
type SyncConfig struct {
	Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Debounce    time.Duration `mapstructure:"debounce"`
	Schedule    string        `mapstructure:"schedule"`
	MirrorURL   string        `mapstructure:"mirrorUrl" validate:"omitempty,url"`
	EchoLatency time.Duration `mapstructure:"echoLatency" validate:"gte=0"`
}

// MirrorConfig contains settings of the remote mirror binary
type MirrorConfig struct {
	Server   ServerConfig    `mapstructure:"server"`
	Database database.Config `mapstructure:"database"`
}

// ValidateWallet checks the sections used by the wallet binary
func (c *Config) ValidateWallet() error {
	v := validator.New()
	for name, section := range map[string]any{
		"server": c.Server,
		"logger": c.Logger,
		"wallet": c.Wallet,
		"store":  c.Store,
		"sync":   c.Sync,
	} {
		if err := v.Struct(section); err != nil {
			return fmt.Errorf("invalid %s configuration: %w", name, err)
		}
	}
	if c.Store.Driver == kvstore.DriverRedis && c.Store.Redis.Addr == "" {
		return fmt.Errorf("invalid store configuration: redis.addr is required for the redis driver")
	}
	return nil
}

// ValidateMirror checks the sections used by the mirror binary
func (c *Config) ValidateMirror() error {
	v := validator.New()
	if err := v.Struct(c.Mirror.Server); err != nil {
		return fmt.Errorf("invalid mirror server configuration: %w", err)
	}
	if err := v.Struct(c.Logger); err != nil {
		return fmt.Errorf("invalid logger configuration: %w", err)
	}
	if err := c.Mirror.Database.Validate(); err != nil {
		return fmt.Errorf("invalid mirror database configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether the production environment is selected
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
