package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string

	ApiServer ServerConfigs
	Session   SessionConfigs
	Database  DatabaseConfigs
	Redis     RedisConfigs
	Chain     ChainConfigs

	LogLevel string
}

type ServerConfigs struct {
	Host      string
	Port      string
	AllowCORS []string
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type SessionConfigs struct {
	Secret string
	Name   string
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type RedisConfigs struct {
	Addr string
}

// Duration lets toml files spell durations as strings like "30s" or "2m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// ChainConfigs describes the one collection contract this service mints
// against. Most fields come from a toml file; wallet secrets come from env.
type ChainConfigs struct {
	Name            string   `toml:"name"`
	ID              int64    `toml:"id"`
	Rpcs            []string `toml:"rpcs"`
	UseExternalRpcs bool     `toml:"use_external_rpcs"`

	ContractAddress string `toml:"contract_address"`

	// MintPrice is the per-unit price in the native token, as a decimal
	// string. It is converted to wei exactly once at startup.
	MintPrice       string `toml:"mint_price"`
	MinMintQuantity int    `toml:"min_mint_quantity"`
	MaxMintQuantity int    `toml:"max_mint_quantity"`

	RequiredConfirmations      int      `toml:"required_confirmations"`
	ConfirmationTimeout        Duration `toml:"confirmation_timeout"`
	ReceiptPollInterval        Duration `toml:"receipt_poll_interval"`
	RefreshConnectionFrequency Duration `toml:"refresh_connection_frequency"`

	ExplorerURL    string `toml:"explorer_url"`
	MarketplaceURL string `toml:"marketplace_url"`

	WalletSecret string `toml:"-"`
	WalletNonce  string `toml:"-"`
}

func Load() Configs {
	chain := ChainConfigs{
		MinMintQuantity:            1,
		MaxMintQuantity:            10,
		RequiredConfirmations:      1,
		ConfirmationTimeout:        Duration{time.Minute},
		ReceiptPollInterval:        Duration{2 * time.Second},
		RefreshConnectionFrequency: Duration{5 * time.Minute},
	}

	if path := getEnv("CHAIN_CONFIG", "configs/chain.toml"); path != "" {
		if _, err := toml.DecodeFile(path, &chain); err != nil {
			panic(fmt.Sprintf("cannot decode chain config %s: %v", path, err))
		}
	}

	chain.WalletSecret = os.Getenv("WALLET_SECRET")
	chain.WalletNonce = os.Getenv("WALLET_NONCE")

	return Configs{
		Env: getEnv("ENV", "local"),
		ApiServer: ServerConfigs{
			Host:      getEnv("API_HOST", ""),
			Port:      getEnv("API_PORT", "8080"),
			AllowCORS: []string{getEnv("ALLOW_CORS", "http://localhost:3000")},
		},
		Session: SessionConfigs{
			Secret: getEnv("SESSION_SECRET", "session-secret"),
			Name:   getEnv("SESSION_NAME", "mint_session"),
		},
		Database: DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     getEnv("MYSQL_USER", "mint"),
			Password: getEnv("MYSQL_PASSWORD", "mint"),
			Database: getEnv("MYSQL_DATABASE", "mint"),
		},
		Redis: RedisConfigs{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Chain:    chain,
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return def
}
