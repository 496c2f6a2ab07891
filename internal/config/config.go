// Package config reads the service settings from the environment. A .env
// file is loaded by the binaries through godotenv/autoload before Load runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreBackendDynamoDB = "dynamodb"
	StoreBackendMemory   = "memory"

	BlobBackendS3     = "s3"
	BlobBackendMinIO  = "minio"
	BlobBackendGCS    = "gcs"
	BlobBackendMemory = "memory"

	EnvDevelopment = "development"
	EnvProduction  = "production"
)

const (
	defaultPort           = 8080
	defaultRegion         = "us-east-1"
	defaultBucket         = "pcg-cumplimiento"
	defaultSignedURLTTL   = 15 * time.Minute
	defaultMaxUploadBytes = 25 << 20
	defaultAllowedTypes   = "application/pdf,image/png,image/jpeg"
	defaultMaxPDFPages    = 500
	defaultRateLimitRPS   = 10
	defaultRateLimitBurst = 20
	defaultSchedulerCron  = "0 6 * * *"
	defaultJobTimeout     = 30 * time.Minute
	defaultShutdown       = 10 * time.Second
)

type Config struct {
	Env      string
	Port     int
	LogLevel string

	StoreBackend       string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	DevCompanies       []string

	BlobBackend    string
	BlobBucket     string
	BlobPrefix     string
	S3Endpoint     string
	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOUseSSL    bool
	SignedURLTTL   time.Duration
	MaxUploadBytes int64
	AllowedTypes   []string
	MaxPDFPages    int

	JWTSecret []byte
	JWTIssuer string

	RateLimitRPS   float64
	RateLimitBurst int

	SchedulerCron       string
	SchedulerJobTimeout time.Duration
	SchedulerInProcess  bool
	ShutdownTimeout     time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:      readEnv("APP_ENV", EnvDevelopment),
		Port:     parseInt("PORT", defaultPort),
		LogLevel: readEnv("LOG_LEVEL", "info"),

		StoreBackend:       strings.ToLower(readEnv("STORE_BACKEND", StoreBackendDynamoDB)),
		AWSRegion:          readEnv("AWS_REGION", defaultRegion),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		DevCompanies:       parseList("DEV_COMPANIES", ""),

		BlobBackend:    strings.ToLower(readEnv("BLOB_BACKEND", BlobBackendS3)),
		BlobBucket:     readEnv("BLOB_BUCKET", defaultBucket),
		BlobPrefix:     os.Getenv("BLOB_PREFIX"),
		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		MinIOEndpoint:  readEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinIOAccessKey: readEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinIOSecretKey: readEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinIOUseSSL:    parseBool("MINIO_USE_SSL", false),
		SignedURLTTL:   parseDuration("SIGNED_URL_TTL", defaultSignedURLTTL),
		MaxUploadBytes: parseInt64("MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
		AllowedTypes:   parseList("ALLOWED_CONTENT_TYPES", defaultAllowedTypes),
		MaxPDFPages:    parseInt("MAX_PDF_PAGES", defaultMaxPDFPages),

		JWTSecret: []byte(os.Getenv("AUTH_JWT_SECRET")),
		JWTIssuer: os.Getenv("AUTH_JWT_ISSUER"),

		RateLimitRPS:   parseFloat("RATE_LIMIT_RPS", defaultRateLimitRPS),
		RateLimitBurst: parseInt("RATE_LIMIT_BURST", defaultRateLimitBurst),

		SchedulerCron:       readEnv("SCHEDULER_CRON", defaultSchedulerCron),
		SchedulerJobTimeout: parseDuration("SCHEDULER_JOB_TIMEOUT", defaultJobTimeout),
		SchedulerInProcess:  parseBool("SCHEDULER_IN_PROCESS", false),
		ShutdownTimeout:     parseDuration("SHUTDOWN_TIMEOUT", defaultShutdown),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case StoreBackendDynamoDB, StoreBackendMemory:
	default:
		return fmt.Errorf("unsupported STORE_BACKEND %q", c.StoreBackend)
	}
	switch c.BlobBackend {
	case BlobBackendS3, BlobBackendMinIO, BlobBackendGCS, BlobBackendMemory:
	default:
		return fmt.Errorf("unsupported BLOB_BACKEND %q", c.BlobBackend)
	}
	if c.IsProduction() && len(c.JWTSecret) == 0 {
		return fmt.Errorf("AUTH_JWT_SECRET is required in production")
	}
	if c.IsProduction() && (c.StoreBackend == StoreBackendMemory || c.BlobBackend == BlobBackendMemory) {
		return fmt.Errorf("memory backends are not allowed in production")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = defaultMaxUploadBytes
	}
	if c.SignedURLTTL <= 0 {
		c.SignedURLTTL = defaultSignedURLTTL
	}
	if c.RateLimitBurst <= 0 {
		c.RateLimitBurst = defaultRateLimitBurst
	}
	return nil
}

func readEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func parseList(key, def string) []string {
	var out []string
	for _, v := range strings.Split(readEnv(key, def), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseInt(key string, def int) int {
	if v, err := strconv.Atoi(readEnv(key, "")); err == nil {
		return v
	}
	return def
}

func parseInt64(key string, def int64) int64 {
	if v, err := strconv.ParseInt(readEnv(key, ""), 10, 64); err == nil {
		return v
	}
	return def
}

func parseFloat(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(readEnv(key, ""), 64); err == nil {
		return v
	}
	return def
}

func parseBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(readEnv(key, "")); err == nil {
		return v
	}
	return def
}

func parseDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(readEnv(key, "")); err == nil {
		return v
	}
	return def
}
