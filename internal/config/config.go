// Package config loads scanner configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// API keys and endpoints
	EtherscanAPIKey string
	SolanaRPCURL    string

	// Per-provider call timeouts
	ExplorerTimeout   time.Duration
	SecurityTimeout   time.Duration
	MarketTimeout     time.Duration
	ChainStateTimeout time.Duration

	// HTTP layer
	ListenAddr     string
	RateLimit      float64 // requests per second, process-wide
	RateBurst      int
	ResultCacheTTL time.Duration

	LogLevel string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		EtherscanAPIKey: os.Getenv("ETHERSCAN_API_KEY"),
		SolanaRPCURL:    getEnv("SOLANA_RPC_URL", "https://api.mainnet-beta.solana.com"),

		ExplorerTimeout:   getEnvSeconds("EXPLORER_TIMEOUT_SEC", 10),
		SecurityTimeout:   getEnvSeconds("SECURITY_TIMEOUT_SEC", 15),
		MarketTimeout:     getEnvSeconds("MARKET_TIMEOUT_SEC", 10),
		ChainStateTimeout: getEnvSeconds("CHAINSTATE_TIMEOUT_SEC", 8),

		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		RateLimit:      getEnvFloat("RATE_LIMIT_RPS", 5),
		RateBurst:      getEnvInt("RATE_LIMIT_BURST", 10),
		ResultCacheTTL: getEnvSeconds("RESULT_CACHE_TTL_SEC", 60),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvFloat(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func getEnvSeconds(key string, defaultVal int) time.Duration {
	return time.Duration(getEnvInt(key, defaultVal)) * time.Second
}
