package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const devJWTSecret = "dev-secret-change-in-production"

// Random source kinds accepted in RANDOM_SOURCE.
const (
	RandomSourceMath   = "math"
	RandomSourceCrypto = "crypto"
)

var ErrDevSecretInProduction = errors.New("JWT_SECRET must be set in production environment")

type Config struct {
	Port         string
	Env          string
	DatabaseDSN  string
	JWTSecret    string
	JWTExpiry    time.Duration
	RandomSource string
	// RandomSeed, when set, makes generation reproducible and overrides RandomSource.
	RandomSeed *uint64
	FormTTL    time.Duration
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/passform?parseTime=true"),
		JWTSecret:    getEnv("JWT_SECRET", devJWTSecret),
		RandomSource: getEnv("RANDOM_SOURCE", RandomSourceCrypto),
	}

	var err error
	if cfg.JWTExpiry, err = getDuration("JWT_EXPIRY", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.FormTTL, err = getDuration("FORM_TTL", 30*time.Minute); err != nil {
		return Config{}, err
	}

	if v := os.Getenv("RANDOM_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("RANDOM_SEED: %w", err)
		}
		cfg.RandomSeed = &seed
	}

	switch cfg.RandomSource {
	case RandomSourceMath, RandomSourceCrypto:
	default:
		return Config{}, fmt.Errorf("RANDOM_SOURCE: unknown source %q", cfg.RandomSource)
	}

	if cfg.Env == "production" && cfg.JWTSecret == devJWTSecret {
		return Config{}, ErrDevSecretInProduction
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
