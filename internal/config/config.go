package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the service reads from the environment. A .env
// file is honored when present so local runs don't need exported variables.

type Config struct {
	ListenAddr  string
	Environment string

	// Access control.
	TrustedDomain string // email suffix granted access without a ledger record
	AdminEmail    string // the single identity allowed into the admin console

	// Access ledger (DynamoDB).
	AccessRequestsTable string

	// Local BOQ store (sqlite).
	BOQDBPath         string
	BOQDBMaxOpenConns int
	BOQDBMaxIdleConns int
	BOQDBMaxLifetime  time.Duration

	// Remote catalog sheet.
	CatalogSheetURL string
	CatalogTimeout  time.Duration

	// Identity provider.
	IdentityVerifyURL string
	IdentityTimeout   time.Duration

	SessionCookieName string
	SessionTTL        time.Duration
	CookieSecure      bool
}

func Load() (*Config, error) {
	// Missing .env is fine; the container/env provides everything then.
	_ = godotenv.Load(".env")

	cfg := &Config{
		ListenAddr:          env("LISTEN_ADDR", ":8080"),
		Environment:         env("ENV", "development"),
		TrustedDomain:       env("TRUSTED_DOMAIN", "hagerstone.com"),
		AdminEmail:          env("ADMIN_EMAIL", "global@hagerstone.com"),
		AccessRequestsTable: env("ACCESS_REQUESTS_TABLE", "access_requests"),
		BOQDBPath:           env("BOQ_DB_PATH", "./data/boq.db"),
		BOQDBMaxOpenConns:   envInt("BOQ_DB_MAX_OPEN_CONNS", 4),
		BOQDBMaxIdleConns:   envInt("BOQ_DB_MAX_IDLE_CONNS", 2),
		BOQDBMaxLifetime:    time.Duration(envInt("BOQ_DB_CONN_MAX_LIFETIME_MIN", 30)) * time.Minute,
		CatalogSheetURL:     os.Getenv("CATALOG_SHEET_URL"),
		CatalogTimeout:      time.Duration(envInt("CATALOG_TIMEOUT_SEC", 15)) * time.Second,
		IdentityVerifyURL:   os.Getenv("IDENTITY_VERIFY_URL"),
		IdentityTimeout:     time.Duration(envInt("IDENTITY_TIMEOUT_SEC", 10)) * time.Second,
		SessionCookieName:   env("SESSION_COOKIE_NAME", "boq_session"),
		SessionTTL:          time.Duration(envInt("SESSION_TTL_MIN", 12*60)) * time.Minute,
		CookieSecure:        envBool("COOKIE_SECURE", false),
	}

	if cfg.CatalogSheetURL == "" {
		return nil, fmt.Errorf("CATALOG_SHEET_URL is required but not set")
	}
	if cfg.IdentityVerifyURL == "" {
		return nil, fmt.Errorf("IDENTITY_VERIFY_URL is required but not set")
	}

	return cfg, nil
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
