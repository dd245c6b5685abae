package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Environment   string `mapstructure:"ENVIRONMENT"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	DBSource      string `mapstructure:"DB_SOURCE"`

	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`
	// Requests per second allowed per client IP on the public API.
	RateLimit float64 `mapstructure:"RATE_LIMIT"`
	RateBurst int     `mapstructure:"RATE_BURST"`

	JWTSecret string `mapstructure:"JWT_SECRET"`

	HTTPTimeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
	UserAgent   string        `mapstructure:"USER_AGENT"`

	NominatimURL      string  `mapstructure:"NOMINATIM_URL"`
	NominatimRate     float64 `mapstructure:"NOMINATIM_RATE"`
	CountryCode       string  `mapstructure:"COUNTRY_CODE"`
	AcceptLanguage    string  `mapstructure:"ACCEPT_LANGUAGE"`
	OverpassURL       string  `mapstructure:"OVERPASS_URL"`
	OverpassResultCap int     `mapstructure:"OVERPASS_RESULT_CAP"`
	SearchRadius      float64 `mapstructure:"SEARCH_RADIUS"`

	WeatherURL      string `mapstructure:"WEATHER_URL"`
	WeatherAPIKey   string `mapstructure:"WEATHER_API_KEY"`
	WeatherLanguage string `mapstructure:"WEATHER_LANGUAGE"`
	TranslateURL    string `mapstructure:"TRANSLATE_URL"`

	WorkspaceTTL time.Duration `mapstructure:"WORKSPACE_TTL"`
}

var defaults = map[string]any{
	"ENVIRONMENT":         "development",
	"LOG_LEVEL":           "info",
	"SERVER_ADDRESS":      "0.0.0.0:8000",
	"DB_SOURCE":           "",
	"CORS_ORIGINS":        []string{"http://localhost:5173"},
	"RATE_LIMIT":          5.0,
	"RATE_BURST":          10,
	"JWT_SECRET":          "",
	"HTTP_TIMEOUT":        30 * time.Second,
	"USER_AGENT":          "poi-finder-api/1.0",
	"NOMINATIM_URL":       "https://nominatim.openstreetmap.org/search",
	"NOMINATIM_RATE":      1.0,
	"COUNTRY_CODE":        "vn",
	"ACCEPT_LANGUAGE":     "vi",
	"OVERPASS_URL":        "https://overpass-api.de/api/interpreter",
	"OVERPASS_RESULT_CAP": 100,
	"SEARCH_RADIUS":       1000.0,
	"WEATHER_URL":         "https://api.openweathermap.org/data/2.5/weather",
	"WEATHER_API_KEY":     "",
	"WEATHER_LANGUAGE":    "vi",
	"TRANSLATE_URL":       "https://translate.googleapis.com/translate_a/single",
	"WORKSPACE_TTL":       30 * time.Minute,
}

// LoadConfig reads configuration from app.env in path, then applies
// environment overrides. A missing file is not an error.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}
