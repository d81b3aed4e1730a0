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

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "p2p_exchange", cfg.Database.DBName)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)

	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "p2p.notifications", cfg.Kafka.Topic)

	// Reference behavior knobs.
	assert.Equal(t, 300*time.Second, cfg.Balance.Freshness)
	assert.Equal(t, 60*time.Second, cfg.Price.CacheTTL)
	assert.Equal(t, time.Minute, cfg.Sweeper.Interval)
	assert.Equal(t, 15*time.Minute, cfg.Sweeper.DealTTL)
	assert.Equal(t, time.Hour, cfg.Compliance.CaseTTL)
	assert.Equal(t, int64(3), cfg.Compliance.DealsPerHour)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 9090
  mode: "release"
database:
  host: "db.example.com"
  dbname: "exchange"
sweeper:
  deal_ttl: "20m"
fees:
  platform_percent: "2.5"
currencies:
  - code: "BTC"
    family: "UTXO"
    base_divisor: 100000000
    fallback_rate: 25
    rpc_url: "http://btc-node:8332"
  - code: "USDT"
    family: "ACCOUNT"
    base_divisor: 1000000
    fixed_fee: "3.5"
    token_contract: "0xdac17f958d2ee523a2206206994597c13d831ec7"
    rpc_url: "http://eth-node:8545"
`)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.example.com", cfg.Database.Host)
	assert.Equal(t, 20*time.Minute, cfg.Sweeper.DealTTL)
	assert.Equal(t, "2.5", cfg.Fees.PlatformPercent)

	require.Len(t, cfg.Currencies, 2)
	assert.Equal(t, "BTC", cfg.Currencies[0].Code)
	assert.Equal(t, int64(1e8), cfg.Currencies[0].BaseDivisor)
	assert.Equal(t, "ACCOUNT", cfg.Currencies[1].Family)
	assert.Equal(t, "3.5", cfg.Currencies[1].FixedFee)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("P2P_DATABASE_HOST", "env-host")
	t.Setenv("P2P_SERVER_PORT", "7070")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p",
		DBName: "d", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/d?sslmode=disable", d.DSN())
}
