package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultJWTSecret is the development fallback signing secret. Load refuses
// to start a production process with it.
const DefaultJWTSecret = "your_jwt_secret"

// Config holds application configuration loaded from environment variables.
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Database
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBMaxConns    int32
	DBMinConns    int32
	DBMaxConnLife time.Duration

	// Redis (login rate limiting)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// JWT
	JWTSecret string
	TokenTTL  time.Duration

	// Uploads
	UploadDir     string
	UploadURLPath string
	MaxUploadSize int64 // bytes

	// Google Cloud Storage; when a bucket is set it replaces the local
	// disk backend for product images.
	GCSBucket              string
	GCSCredentialsJSONPath string

	// CORS
	CORSAllowedOrigins []string

	// Migrations
	MigrationsDir string

	// Order status flow: when true, only forward transitions (plus
	// cancellation of non-terminal orders) are accepted.
	OrderStrictFlow bool

	// Prometheus /metrics toggle
	MetricsEnabled bool

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getint64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

func getlist(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := make([]string, 0)
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		AppName: getenv("APP_NAME", "agrofix-storefront"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "5000"),
		GinMode: getenv("GIN_MODE", "release"),

		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    getenv("DB_PASSWORD", "postgres"),
		DBName:        getenv("DB_NAME", "agrofix"),
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),
		DBMaxConns:    int32(getint("DB_MAX_CONNS", 10)),
		DBMinConns:    int32(getint("DB_MIN_CONNS", 2)),
		DBMaxConnLife: getdur("DB_MAX_CONN_LIFETIME", time.Hour),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		JWTSecret: getenv("JWT_SECRET", DefaultJWTSecret),
		TokenTTL:  getdur("TOKEN_TTL", time.Hour),

		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
		UploadURLPath: getenv("UPLOAD_URL_PATH", "/uploads"),
		MaxUploadSize: getint64("MAX_UPLOAD_SIZE", 5<<20),

		GCSBucket:              getenv("GCS_BUCKET", ""),
		GCSCredentialsJSONPath: getenv("GCS_CREDENTIALS_JSON", ""),

		CORSAllowedOrigins: getlist("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:3001"}),

		MigrationsDir: getenv("MIGRATIONS_DIR", "db/migrations"),

		OrderStrictFlow: getbool("ORDER_STRICT_FLOW", false),
		MetricsEnabled:  getbool("METRICS_ENABLED", true),
		HTTPLogEnabled:  getbool("HTTP_LOG_ENABLED", false),
	}

	if cfg.Env == "production" && cfg.JWTSecret == DefaultJWTSecret {
		return nil, errors.New("config: JWT_SECRET must be set in production")
	}
	return cfg, nil
}

// PostgresDSN returns a DSN compatible with pgx.
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=" + c.DBSSLMode
}
