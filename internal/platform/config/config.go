package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends selectable with STORE_BACKEND.
const (
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	StoreBackend      string
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	LoginRateLimit    string // ulule/limiter formatted rate, e.g. "5-M"
	RequestTimeout    time.Duration

	CORSAllowedOrigins []string

	// Event publishing; empty brokers disables Kafka.
	KafkaBrokers         []string
	KafkaStatementsTopic string
	EventPublishTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORE_BACKEND", StoreBackendPostgres)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_EXPIRY_DURATION", "24h")
	v.SetDefault("JWT_ISSUER", "fin-api")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("REQUEST_TIMEOUT", "10s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_STATEMENTS_TOPIC", "statement_recorded")
	v.SetDefault("EVENT_PUBLISH_TIMEOUT", "2s")

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.StoreBackend = strings.ToLower(v.GetString("STORE_BACKEND"))
	if cfg.StoreBackend != StoreBackendPostgres && cfg.StoreBackend != StoreBackendMemory {
		log.Printf("Warning: Unknown STORE_BACKEND ('%s'). Defaulting to %s.\n", cfg.StoreBackend, StoreBackendPostgres)
		cfg.StoreBackend = StoreBackendPostgres
	}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" && cfg.StoreBackend == StoreBackendPostgres {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Tokens are valid for one day unless overridden (e.g. "12h")
	cfg.JWTExpiryDuration = parseDuration(v, "JWT_EXPIRY_DURATION", 24*time.Hour)
	cfg.RequestTimeout = parseDuration(v, "REQUEST_TIMEOUT", 10*time.Second)
	cfg.EventPublishTimeout = parseDuration(v, "EVENT_PUBLISH_TIMEOUT", 2*time.Second)

	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "fin-api"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.LoginRateLimit = v.GetString("LOGIN_RATE_LIMIT")
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.KafkaBrokers = splitList(v.GetString("KAFKA_BROKERS"))
	cfg.KafkaStatementsTopic = v.GetString("KAFKA_STATEMENTS_TOPIC")

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
