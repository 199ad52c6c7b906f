package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gameatlas/backend/internal/match"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	JWTSecret      string `mapstructure:"JWT_SECRET"`
	Port           string `mapstructure:"PORT"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`

	MatchGenreWeight    int `mapstructure:"MATCH_GENRE_WEIGHT"`
	MatchTagWeight      int `mapstructure:"MATCH_TAG_WEIGHT"`
	MatchPlatformWeight int `mapstructure:"MATCH_PLATFORM_WEIGHT"`
	MatchMinScore       int `mapstructure:"MATCH_MIN_SCORE"`
	MatchLimit          int `mapstructure:"MATCH_LIMIT"`

	CatalogRefreshInterval time.Duration `mapstructure:"CATALOG_REFRESH_INTERVAL"`
}

var AppConfig *Config

// defaults also registers every key with viper so AutomaticEnv can fill it.
var defaults = map[string]any{
	"DATABASE_URL":             "",
	"JWT_SECRET":               "",
	"PORT":                     "8080",
	"ALLOWED_ORIGINS":          "http://localhost:3000",
	"MATCH_GENRE_WEIGHT":       match.DefaultGenreWeight,
	"MATCH_TAG_WEIGHT":         match.DefaultTagWeight,
	"MATCH_PLATFORM_WEIGHT":    match.DefaultPlatformWeight,
	"MATCH_MIN_SCORE":          match.DefaultMinScore,
	"MATCH_LIMIT":              match.DefaultLimit,
	"CATALOG_REFRESH_INTERVAL": 5 * time.Minute,
}

// Load reads configuration from a .env file in path (if present) and the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Msg(".env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig loads the configuration into AppConfig, exiting on failure.
func LoadConfig() {
	cfg, err := Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to load configuration")
	}
	AppConfig = cfg
}

// Validate checks values that would make auth, the matcher or the scheduler misbehave.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if err := c.MatchWeights().Validate(); err != nil {
		return err
	}
	if c.CatalogRefreshInterval <= 0 {
		return fmt.Errorf("CATALOG_REFRESH_INTERVAL must be positive, got %s", c.CatalogRefreshInterval)
	}
	return nil
}

// MatchWeights returns the configured overlap weights.
func (c *Config) MatchWeights() match.Weights {
	return match.Weights{
		Genre:    c.MatchGenreWeight,
		Tag:      c.MatchTagWeight,
		Platform: c.MatchPlatformWeight,
	}
}

// Scorer builds the match scorer described by the configuration.
func (c *Config) Scorer() match.Scorer {
	return match.Scorer{
		Weights:  c.MatchWeights(),
		MinScore: c.MatchMinScore,
		Limit:    c.MatchLimit,
	}
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
