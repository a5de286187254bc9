package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the GeoStory backend.
type Config struct {
	Port        string
	DatabaseURL string
	CORSOrigins []string
	Debug       bool
}

// LoadConfig reads settings from the environment, loading a .env file
// first when one is present. DATABASE_URL wins over the discrete DB_*
// variables; the latter are kept for docker-compose style deployments.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := &Config{
		Port:        getenvDefault("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Debug:       os.Getenv("DEBUG") == "true",
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			getenvDefault("DB_HOST", "localhost"),
			getenvDefault("DB_USER", "geostory"),
			os.Getenv("DB_PASSWORD"),
			getenvDefault("DB_NAME", "geostory"),
			getenvDefault("DB_PORT", "5432"),
		)
	}

	origins := getenvDefault("CORS_ORIGINS", "http://localhost:5173")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	return cfg
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
