package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	APIKey      string // API key for authentication
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// Ledger
	LedgerRPCURL          string
	LedgerTimeout         time.Duration
	LedgerRPS             float64
	SettlementContract    string
	TokenContract         string
	DiscountBurnSignature string

	// Rewards
	CatalogPath      string
	DistributionPath string
	BatchPolicy      string

	// Claim store
	ClaimStore        string
	ClaimCacheSize    int
	ClaimCacheTTL     time.Duration
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	MaxRequestBodyBytes int64
	TrustedProxies      []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		ServiceName: getEnv("SERVICE_NAME", "mine-rewards"),
		Version:     getEnv("VERSION", "dev"),

		LedgerRPCURL:          getEnv("LEDGER_RPC_URL", ""),
		LedgerTimeout:         getEnvAsDuration("LEDGER_TIMEOUT", DefaultLedgerTimeout),
		LedgerRPS:             getEnvAsFloat("LEDGER_RPS", DefaultLedgerRPS),
		SettlementContract:    getEnv("SETTLEMENT_CONTRACT", ""),
		TokenContract:         getEnv("TOKEN_CONTRACT", ""),
		DiscountBurnSignature: getEnv("DISCOUNT_BURN_SIGNATURE", DefaultDiscountBurnSignature),

		CatalogPath:      getEnv("CATALOG_PATH", ConfigPathCatalog),
		DistributionPath: getEnv("DISTRIBUTION_PATH", ConfigPathDistribution),
		BatchPolicy:      strings.ToLower(getEnv("BATCH_POLICY", DefaultBatchPolicy)),

		ClaimStore:        strings.ToLower(getEnv("CLAIM_STORE", ClaimStorePostgres)),
		ClaimCacheSize:    getEnvAsInt("CLAIM_CACHE_SIZE", DefaultClaimCacheSize),
		ClaimCacheTTL:     getEnvAsDuration("CLAIM_CACHE_TTL", DefaultClaimCacheTTL),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "minerewards"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		MaxRequestBodyBytes: int64(getEnvAsInt("MAX_REQUEST_BODY_BYTES", DefaultMaxRequestBodyBytes)),
		TrustedProxies:      getEnvAsList("TRUSTED_PROXIES"),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT value: %d out of range", port)
	}
	cfg.Port = port

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if c.LedgerRPCURL == "" {
		return fmt.Errorf("LEDGER_RPC_URL environment variable must be set")
	}
	for name, addr := range map[string]string{
		"SETTLEMENT_CONTRACT": c.SettlementContract,
		"TOKEN_CONTRACT":      c.TokenContract,
	} {
		if !common.IsHexAddress(addr) {
			return fmt.Errorf("%s must be a 0x-prefixed 20-byte hex address, got %q", name, addr)
		}
	}
	switch c.BatchPolicy {
	case "weighted", "diverse":
	default:
		return fmt.Errorf("invalid BATCH_POLICY %q: want weighted or diverse", c.BatchPolicy)
	}
	switch c.ClaimStore {
	case ClaimStorePostgres, ClaimStoreMemory:
	default:
		return fmt.Errorf("invalid CLAIM_STORE %q: want %s or %s", c.ClaimStore, ClaimStorePostgres, ClaimStoreMemory)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, falling back on a missing or bad value
func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

// getEnvAsFloat retrieves a float environment variable, falling back on a missing or bad value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return defaultValue
}

// getEnvAsDuration retrieves a duration environment variable, falling back on a missing or bad value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated environment variable, dropping empty items
func getEnvAsList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
