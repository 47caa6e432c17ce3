package config

import (
	"os"
)

// Config holds the application configuration
type Config struct {
	Port                 string
	OpenAIAPIKey         string
	OpenAIModel          string
	OpenAIBaseURL        string
	OpenWeatherMapAPIKey string
	NewsAPIKey           string
	AllowedOrigin        string
	CatalogFile          string
	Environment          string
}

// LoadConfig loads configuration from environment variables.
// Every key has a usable default; a missing credential degrades the
// dependent component to its fallback path instead of failing startup.
func LoadConfig() *Config {
	return &Config{
		Port:                 getEnv("PORT", "5000"),
		OpenAIAPIKey:         getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:          getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:        getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenWeatherMapAPIKey: getEnv("OPENWEATHERMAP_API_KEY", ""),
		NewsAPIKey:           getEnv("NEWS_API_KEY", ""),
		AllowedOrigin:        getEnv("ALLOWED_ORIGIN", "*"),
		CatalogFile:          getEnv("CATALOG_FILE", "catalog.xlsx"),
		Environment:          getEnv("ENVIRONMENT", "development"),
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
