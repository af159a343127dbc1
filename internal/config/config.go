package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

// AppConfig holds everything the process needs, resolved once at startup
// and passed explicitly to the components that use it.
type AppConfig struct {
	// OpenWeatherAPIKey authenticates outbound weather API calls.
	OpenWeatherAPIKey string `validate:"required"`

	// BucketName is the S3 bucket the archive is written to.
	BucketName string `validate:"required"`

	// Cities to archive, processed strictly in this order.
	Cities []string `validate:"required,min=1,dive,required"`

	// HTTPTimeout bounds each outbound weather API call.
	HTTPTimeout time.Duration
}

// defaultCities matches the original deployment's fixed list.
var defaultCities = []string{"Atlanta", "San Diego", "Bahia"}

// Load reads configuration from the environment. A missing required secret
// fails here, before any network or storage call is attempted. AWS
// credentials and region are not read by this program; the storage client
// resolves them from its own discovery chain.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		BucketName:        os.Getenv("AWS_BUCKET_NAME"),
		Cities:            loadCities(),
	}

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func loadCities() []string {
	raw := os.Getenv("WEATHER_CITIES")
	if raw == "" {
		return defaultCities
	}

	var cities []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cities = append(cities, c)
		}
	}
	return cities
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
