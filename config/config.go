package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Chain
	Chain  ChainConfig
	Events EventsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	// RequestsPerMin is the per-client budget on /tasks; 0 disables limiting.
	RequestsPerMin int
}

// ChainConfig points at the node and the TodoList contract.
type ChainConfig struct {
	RPCURL          string
	ContractAddress string
	// PrivateKey signs every write; hex, with or without 0x.
	PrivateKey string
	// ChainID is fetched from the node when zero.
	ChainID int64
}

type EventsConfig struct {
	Enabled      bool
	PollInterval time.Duration
}

var (
	errMissingRPCURL       = errors.New("chain.rpc_url is required")
	errInvalidContract     = errors.New("chain.contract_address must be a hex address")
	errMissingPrivateKey   = errors.New("chain.private_key is required")
	errInvalidPollInterval = errors.New("events.poll_interval must be positive")
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.CORS.AllowedOrigins = splitList(viper.GetStringSlice("cors.allowed_origins"))
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Chain
	cfg.Chain.RPCURL = viper.GetString("chain.rpc_url")
	cfg.Chain.ContractAddress = viper.GetString("chain.contract_address")
	cfg.Chain.PrivateKey = viper.GetString("chain.private_key")
	cfg.Chain.ChainID = viper.GetInt64("chain.chain_id")

	cfg.Events.Enabled = viper.GetBool("events.enabled")
	cfg.Events.PollInterval = viper.GetDuration("events.poll_interval")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Chain.RPCURL == "" {
		return errMissingRPCURL
	}
	if !common.IsHexAddress(cfg.Chain.ContractAddress) {
		return errInvalidContract
	}
	if cfg.Chain.PrivateKey == "" {
		return errMissingPrivateKey
	}
	if cfg.Events.Enabled && cfg.Events.PollInterval <= 0 {
		return errInvalidPollInterval
	}
	return nil
}

// Defaults target a local Anvil node with the contract at its first deployment address.
func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 3001)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	viper.SetDefault("rate_limit.requests_per_min", 120)

	viper.SetDefault("chain.rpc_url", "http://127.0.0.1:8545")
	viper.SetDefault("chain.contract_address", "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	viper.SetDefault("chain.private_key", "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	viper.SetDefault("chain.chain_id", 0)

	viper.SetDefault("events.enabled", true)
	viper.SetDefault("events.poll_interval", "2s")
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
