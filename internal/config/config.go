package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Port        string
	PostgresURL string
	LogLevel    string

	JWTSecret string
	JWTTTL    time.Duration

	MapboxToken string

	S3Endpoint      string
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string

	WizardSessionTTL time.Duration
}

// Load reads .env when present and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		zap.L().Debug("no .env file loaded", zap.Error(err))
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests can feed a map.
func FromEnv(getenv func(string) string) Config {
	get := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}
	minutes := func(key string, def int) time.Duration {
		n, err := strconv.Atoi(getenv(key))
		if err != nil || n <= 0 {
			n = def
		}
		return time.Duration(n) * time.Minute
	}

	return Config{
		Port:             get("PORT", "8080"),
		PostgresURL:      getenv("POSTGRES_URL"),
		LogLevel:         get("LOG_LEVEL", "info"),
		JWTSecret:        getenv("JWT_SECRET"),
		JWTTTL:           minutes("JWT_TTL_MINUTES", 60),
		MapboxToken:      getenv("MAPBOX_ACCESS_TOKEN"),
		S3Endpoint:       getenv("S3_ENDPOINT"),
		S3Region:         get("S3_REGION", "us-east-1"),
		S3Bucket:         get("S3_BUCKET", "listing-images"),
		S3AccessKey:      getenv("S3_ACCESS_KEY"),
		S3SecretKey:      getenv("S3_SECRET_KEY"),
		S3PublicBaseURL:  getenv("S3_PUBLIC_BASE_URL"),
		WizardSessionTTL: minutes("WIZARD_SESSION_TTL_MINUTES", 60),
	}
}
