package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "card_exchange", cfg.Database.DBName)
	assert.Equal(t, 2, cfg.Exchange.FeePercent)
	assert.Equal(t, 168*time.Hour, cfg.Vault.LockPeriod)
	assert.Equal(t, int64(50), cfg.Vault.BaseYieldRate)
	assert.Equal(t, int64(20), cfg.Vault.TierMultipliers[2])
	assert.Equal(t, "24h0m0s", cfg.JWT.Expiry.String())
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 9999
exchange:
  fee_percent: 5
  treasury_account: "11111111-1111-1111-1111-111111111111"
vault:
  lock_period: 72h
  tier_multipliers:
    1: 5
    2: 15
    3: 25
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Exchange.FeePercent)
	assert.Equal(t, 72*time.Hour, cfg.Vault.LockPeriod)
	assert.Equal(t, int64(15), cfg.Vault.TierMultipliers[2])

	treasury, err := cfg.Exchange.TreasuryAccountID()
	require.NoError(t, err)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", treasury.String())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CEX_SERVER_PORT", "7070")
	t.Setenv("CEX_EXCHANGE_FEE_PERCENT", "3")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Exchange.FeePercent)
}

func TestLoad_FeePercentOutOfRange(t *testing.T) {
	t.Setenv("CEX_EXCHANGE_FEE_PERCENT", "11")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fee_percent")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 5432, User: "u", Password: "p",
		DBName: "card_exchange", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5432/card_exchange?sslmode=disable", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6379}
	assert.Equal(t, "cache:6379", r.Addr())
}
