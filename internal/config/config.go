package config

import (
	"os"
	"strings"
)

const (
	defaultAddr        = ":8080"
	defaultDatabaseURL = "tenine.db"
	defaultBaseURL     = "https://ten9-inky.vercel.app"
)

// Config carries everything the API server reads from the environment.
type Config struct {
	Addr        string
	DatabaseURL string

	// Gmail relay credentials. Both empty means mail is unconfigured and
	// the endpoint reports a configuration error after persisting.
	EmailUser     string
	EmailPassword string

	// Public origin of the marketing site, used for asset links in emails.
	PublicBaseURL string
}

// Load reads the configuration from environment variables, applying defaults.
func Load() *Config {
	return &Config{
		Addr:          getEnv("ADDR", defaultAddr),
		DatabaseURL:   getEnv("DATABASE_URL", defaultDatabaseURL),
		EmailUser:     strings.TrimSpace(os.Getenv("EMAIL_USER")),
		EmailPassword: strings.TrimSpace(os.Getenv("EMAIL_PASSWORD")),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", defaultBaseURL), "/"),
	}
}

func getEnv(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}
