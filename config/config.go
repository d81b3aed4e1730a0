package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
	Vault      VaultConfig      `mapstructure:"vault"`
	Fees       FeeConfig        `mapstructure:"fees"`
	Compliance ComplianceConfig `mapstructure:"compliance"`
	Sweeper    SweeperConfig    `mapstructure:"sweeper"`
	Balance    BalanceConfig    `mapstructure:"balance"`
	Price      PriceConfig      `mapstructure:"price"`
	Currencies []CurrencyConfig `mapstructure:"currencies"`
	Log        LogConfig        `mapstructure:"log"`
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

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type VaultConfig struct {
	// MasterSecret seeds the HKDF-derived AES key protecting stored
	// signing secrets.
	MasterSecret string `mapstructure:"master_secret"`
}

type FeeConfig struct {
	// PlatformPercent is the operator's cut of every settlement.
	PlatformPercent string `mapstructure:"platform_percent"`
	// ReferralPercent is the share of the platform fee attributed to the
	// payer's referrer, when one exists.
	ReferralPercent string `mapstructure:"referral_percent"`
	PlatformWallets map[string]string `mapstructure:"platform_wallets"` // currency -> address
}

// ComplianceConfig carries the rolling-window thresholds. A zero threshold
// disables that rule.
type ComplianceConfig struct {
	DealsPerHour        int64         `mapstructure:"deals_per_hour"`
	DealsPerDay         int64         `mapstructure:"deals_per_day"`
	DealsPerWeek        int64         `mapstructure:"deals_per_week"`
	TransfersPerHour    int64         `mapstructure:"transfers_per_hour"`
	TransfersPerDay     int64         `mapstructure:"transfers_per_day"`
	TransfersPerWeek    int64         `mapstructure:"transfers_per_week"`
	DestinationsPerHour int64         `mapstructure:"destinations_per_hour"`
	DestinationsPerDay  int64         `mapstructure:"destinations_per_day"`
	DestinationsPerWeek int64         `mapstructure:"destinations_per_week"`
	CaseTTL             time.Duration `mapstructure:"case_ttl"`
}

type SweeperConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	// DealTTL is how long an unconfirmed deal may stay pending.
	DealTTL time.Duration `mapstructure:"deal_ttl"`
}

type BalanceConfig struct {
	// Freshness is the wallet cache window; older caches are re-queried
	// before any operation that spends funds.
	Freshness time.Duration `mapstructure:"freshness"`
}

type PriceConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// CurrencyConfig describes one supported currency and its chain endpoint.
type CurrencyConfig struct {
	Code          string `mapstructure:"code"`
	Family        string `mapstructure:"family"` // UTXO or ACCOUNT
	BaseDivisor   int64  `mapstructure:"base_divisor"`
	FixedFee      string `mapstructure:"fixed_fee"`      // account family flat network fee
	FallbackRate  int64  `mapstructure:"fallback_rate"`  // sat/byte when the fee quote is down
	TokenContract string `mapstructure:"token_contract"` // account family only
	RPCURL        string `mapstructure:"rpc_url"`
	RPCUser       string `mapstructure:"rpc_user"`     // UTXO node credentials
	RPCPassword   string `mapstructure:"rpc_password"` // UTXO node credentials
	ChainID       int64  `mapstructure:"chain_id"`     // account family only
	// TreasuryKey signs gas top-up swaps from the platform treasury.
	TreasuryKey string `mapstructure:"treasury_key"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: P2P.
// Nested keys use underscore: P2P_DATABASE_HOST, P2P_VAULT_MASTER_SECRET, etc.
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
	v.SetDefault("database.dbname", "p2p_exchange")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "p2p.notifications")
	v.SetDefault("vault.master_secret", "")
	v.SetDefault("fees.platform_percent", "1")
	v.SetDefault("fees.referral_percent", "20")
	v.SetDefault("compliance.deals_per_hour", 3)
	v.SetDefault("compliance.deals_per_day", 10)
	v.SetDefault("compliance.deals_per_week", 40)
	v.SetDefault("compliance.transfers_per_hour", 3)
	v.SetDefault("compliance.transfers_per_day", 10)
	v.SetDefault("compliance.transfers_per_week", 40)
	v.SetDefault("compliance.destinations_per_hour", 3)
	v.SetDefault("compliance.destinations_per_day", 5)
	v.SetDefault("compliance.destinations_per_week", 10)
	v.SetDefault("compliance.case_ttl", "1h")
	v.SetDefault("sweeper.interval", "1m")
	v.SetDefault("sweeper.deal_ttl", "15m")
	v.SetDefault("balance.freshness", "300s")
	v.SetDefault("price.base_url", "https://api.binance.com")
	v.SetDefault("price.cache_ttl", "60s")
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

	// Environment variables: P2P_DATABASE_HOST -> database.host
	v.SetEnvPrefix("P2P")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; env vars can supply everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
