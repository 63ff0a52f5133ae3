package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Registry RegistryConfig `mapstructure:"registry"`
	Exchange ExchangeConfig `mapstructure:"exchange"`
	Vault    VaultConfig    `mapstructure:"vault"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// LedgerConfig points at the external fungible-token ledger service.
type LedgerConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RegistryConfig points at the external card registry service.
type RegistryConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ExchangeConfig holds marketplace settlement configuration. The three
// system accounts are ledger principals owned by the platform.
type ExchangeConfig struct {
	FeePercent      int    `mapstructure:"fee_percent"`
	TreasuryAccount string `mapstructure:"treasury_account"`
	EscrowAccount   string `mapstructure:"escrow_account"`
	AdminAccount    string `mapstructure:"admin_account"`
}

// TreasuryAccountID parses the configured treasury principal.
func (e ExchangeConfig) TreasuryAccountID() (uuid.UUID, error) {
	return uuid.Parse(e.TreasuryAccount)
}

// EscrowAccountID parses the configured escrow principal.
func (e ExchangeConfig) EscrowAccountID() (uuid.UUID, error) {
	return uuid.Parse(e.EscrowAccount)
}

// AdminAccountID parses the configured administrator principal.
func (e ExchangeConfig) AdminAccountID() (uuid.UUID, error) {
	return uuid.Parse(e.AdminAccount)
}

// VaultConfig holds staking configuration. Tier multipliers are set once at
// startup and are immutable at runtime.
type VaultConfig struct {
	PoolAccount     string        `mapstructure:"pool_account"`
	LockPeriod      time.Duration `mapstructure:"lock_period"`
	BaseYieldRate   int64         `mapstructure:"base_yield_rate"`
	TierMultipliers map[int]int64 `mapstructure:"tier_multipliers"`
}

// PoolAccountID parses the configured yield pool principal.
func (v VaultConfig) PoolAccountID() (uuid.UUID, error) {
	return uuid.Parse(v.PoolAccount)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CEX_ (Card Exchange).
// Nested keys use underscore: CEX_DATABASE_HOST, CEX_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "card_exchange")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "card-exchange")
	v.SetDefault("ledger.base_url", "http://localhost:8090")
	v.SetDefault("ledger.timeout", "5s")
	v.SetDefault("registry.base_url", "http://localhost:8091")
	v.SetDefault("registry.timeout", "5s")
	v.SetDefault("exchange.fee_percent", 2)
	v.SetDefault("exchange.treasury_account", "")
	v.SetDefault("exchange.escrow_account", "")
	v.SetDefault("exchange.admin_account", "")
	v.SetDefault("vault.pool_account", "")
	v.SetDefault("vault.lock_period", "168h")
	v.SetDefault("vault.base_yield_rate", 50)
	v.SetDefault("vault.tier_multipliers", map[string]int64{"1": 10, "2": 20, "3": 30})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CEX_DATABASE_HOST -> database.host
	v.SetEnvPrefix("CEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Exchange.FeePercent < 0 || cfg.Exchange.FeePercent > 10 {
		return nil, fmt.Errorf("exchange.fee_percent must be in [0,10], got %d", cfg.Exchange.FeePercent)
	}

	return &cfg, nil
}
