package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvProduction = "production"

var ErrMissingSessionSecret = errors.New("SESSION_SECRET is required in production")

// developmentSessionSecret signs wizard sessions outside production only.
const developmentSessionSecret = "chauffeur-hub-development-secret"

type Config struct {
	Port                string        `mapstructure:"PORT"`
	Env                 string        `mapstructure:"ENV"`
	LogLevel            string        `mapstructure:"LOG_LEVEL"`
	QuoteCacheTTLSec    int           `mapstructure:"QUOTE_CACHE_TTL_SEC"`
	CORSAllowedOrigins  string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	IdempotencyRedisURI string        `mapstructure:"IDEMPOTENCY_REDIS_URI"`
	SessionSecret       string        `mapstructure:"SESSION_SECRET"`
	SessionTTL          time.Duration `mapstructure:"SESSION_TTL"`
	OpenAPILocation     string        `mapstructure:"OPENAPI_LOCATION"`
}

func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas. Empty means any origin.
func (c Config) AllowedOrigins() []string {
	origins := []string{}
	for _, origin := range strings.Split(c.CORSAllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func defaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("QUOTE_CACHE_TTL_SEC", 300)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("IDEMPOTENCY_REDIS_URI", "")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_TTL", "2h")
	v.SetDefault("OPENAPI_LOCATION", "./api/openapi.json")
}

// Load reads the environment. Call godotenv first to pick up a local .env.
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	defaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			return Config{}, ErrMissingSessionSecret
		}
		cfg.SessionSecret = developmentSessionSecret
	}

	return cfg, nil
}
