package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	Timezone    string
	StoreDriver string // file|sqlite
	DataDir     string
	DBPath      string
	WeatherKey  string
	WeatherCity string
	WeatherUnit string
	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:        get("PORT", "3001"),
		Timezone:    get("TZ", "UTC"),
		StoreDriver: get("STORE_DRIVER", "file"),
		DataDir:     get("DATA_DIR", "./data"),
		DBPath:      get("DB_PATH", "garden.db"),
		WeatherKey:  get("WEATHER_API_KEY", ""),
		WeatherCity: get("WEATHER_CITY", "Seattle"),
		WeatherUnit: get("WEATHER_UNITS", "metric"),
		LLMEndpoint: get("LLM_ENDPOINT", ""),
		LLMAPIKey:   get("LLM_API_KEY", ""),
		LLMModel:    get("LLM_MODEL", "gpt-4o-mini"),
	}
	log.Printf("[cfg] port=%s store=%s data=%s weather_city=%s llm=%t",
		cfg.Port, cfg.StoreDriver, cfg.DataDir, cfg.WeatherCity, cfg.LLMEndpoint != "")
	return cfg
}
