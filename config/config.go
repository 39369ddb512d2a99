package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

const (
	DefaultSourceURL = "https://covid19.who.int/WHO-COVID-19-global-data.csv"
	DefaultMetric    = "new_cases"
	DefaultWindow    = 7
	DefaultOutputDir = "output"
)

// DefaultCountries is the comparison set plotted when COUNTRIES is unset.
var DefaultCountries = []string{"United States", "India", "Brazil"}

type Config struct {
	SourceURL string
	Countries []string
	Metric    string
	Window    int
	OutputDir string
	TgToken   string
	TgChatID  int64
}

var (
	config *Config
	once   sync.Once
)

// GetConfig возвращает singleton экземпляр конфигурации
func GetConfig() *Config {
	once.Do(func() {
		// .env is optional here, plain environment variables and the
		// defaults below are enough to run
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file loaded (%v), using environment and defaults", err)
		}

		config = &Config{
			SourceURL: envOr("SOURCE_URL", DefaultSourceURL),
			Countries: splitCountries(os.Getenv("COUNTRIES")),
			Metric:    envOr("METRIC", DefaultMetric),
			Window:    envInt("WINDOW", DefaultWindow),
			OutputDir: envOr("OUTPUT_DIR", DefaultOutputDir),
			TgToken:   os.Getenv("TG_TOKEN"),
			TgChatID:  envInt64("TG_CHAT_ID", 0),
		}
	})
	return config
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Cannot parse %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("Cannot parse %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func splitCountries(value string) []string {
	if strings.TrimSpace(value) == "" {
		return DefaultCountries
	}
	parts := strings.Split(value, ",")
	countries := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			countries = append(countries, p)
		}
	}
	return countries
}
