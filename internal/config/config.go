package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultPort = "8080"

	// Rate defaults mirror the values the business quotes with today.
	// Every rate can be overridden through the environment so a tariff
	// revision does not require a code change.
	defaultPricePerUnit     = 6.0   // ₹ per kWh
	defaultSubsidyCap       = 78000 // ₹
	defaultInstallRatePerKW = 7000  // ₹ per kW
	defaultMiscRatePerKW    = 5000  // ₹ per kW, mounting and earthing
	defaultOffsetPerKW      = 1.2   // tons CO₂ per kW per year
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Port              string
	ChromeBin         string
	WebhookForwardURL string

	RenderTimeoutSec     int
	MaxConcurrentRenders int

	PricePerUnit     float64
	SubsidyCap       float64
	InstallRatePerKW float64
	MiscRatePerKW    float64
	OffsetPerKW      float64
}

// Load reads the .env file, if present, and returns a populated Config.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file found, using system env vars")
	}

	cfg := Config{
		Port:              getEnv("PORT", defaultPort),
		ChromeBin:         getEnv("CHROME_BIN", ""),
		WebhookForwardURL: getEnv("WEBHOOK_FORWARD_URL", ""),

		RenderTimeoutSec:     getEnvInt("RENDER_TIMEOUT_SEC", 30),
		MaxConcurrentRenders: getEnvInt("MAX_CONCURRENT_RENDERS", 4),

		PricePerUnit:     getEnvFloat("PRICE_PER_UNIT", defaultPricePerUnit),
		SubsidyCap:       getEnvFloat("SUBSIDY_CAP", defaultSubsidyCap),
		InstallRatePerKW: getEnvFloat("INSTALL_RATE_PER_KW", defaultInstallRatePerKW),
		MiscRatePerKW:    getEnvFloat("MISC_RATE_PER_KW", defaultMiscRatePerKW),
		OffsetPerKW:      getEnvFloat("OFFSET_PER_KW", defaultOffsetPerKW),
	}

	if cfg.PricePerUnit <= 0 {
		log.Printf("warning: PRICE_PER_UNIT %v is not positive, using default %v", cfg.PricePerUnit, defaultPricePerUnit)
		cfg.PricePerUnit = defaultPricePerUnit
	}
	if cfg.RenderTimeoutSec < 1 {
		cfg.RenderTimeoutSec = 30
	}
	if cfg.MaxConcurrentRenders < 1 {
		cfg.MaxConcurrentRenders = 1
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}
