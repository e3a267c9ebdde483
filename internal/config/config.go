package config

import (
	"os"
	"time"

	"github.com/joanna-bieganowska/Profilaktykarz/internal/utils"
)

const AppName = "users-api"

// Constants for time-based configuration defaults.
const (
	// DefaultTokenExpiry is the access token lifetime embedded in every
	// issued JWT.
	DefaultTokenExpiry = 90 * time.Minute

	// BlocklistRetention is how long a revoked token row is kept before the
	// nightly cleanup may drop it. Anything blocklisted longer ago than the
	// token lifetime has already expired on its own, so pruning it never
	// changes what the auth gate accepts.
	BlocklistRetention = DefaultTokenExpiry
)

// Config holds all application configuration.
type Config struct {
	AppName     string
	AppPort     string
	AppUrl      string
	DBUrl       string
	JWTSecret   []byte
	TokenExpiry time.Duration
}

// LoadConfig reads required settings from the environment and fails fast on
// anything missing.
func LoadConfig() *Config {
	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	appUrl := os.Getenv("APP_URL")
	if appUrl == "" {
		utils.Logger.Fatal("APP_URL env var is missing")
	}
	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		utils.Logger.Fatal("JWT_SECRET env var is missing")
	}

	utils.Logger.Debugf("App can be accessed at: %s", appUrl)

	return &Config{
		AppName:     AppName,
		AppPort:     appPort,
		AppUrl:      appUrl,
		DBUrl:       dbUrl,
		JWTSecret:   []byte(jwtSecret),
		TokenExpiry: DefaultTokenExpiry,
	}
}
