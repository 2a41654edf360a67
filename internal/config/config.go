package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	EnvVars EnvVars  `json:"env"`
	Scoring *Scoring `json:"-"`
}

// EnvVars holds environment variables required by the application.
// Fields tagged `optional:"true"` are skipped by CheckConfigEnvFields.
type EnvVars struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	GoogleSearchKey string        `env:"GOOGLE_SEARCH_KEY" optional:"true"`
	GoogleSearchCX  string        `env:"GOOGLE_SEARCH_CX" optional:"true"`
	SearchTimeout   time.Duration `env:"SEARCH_TIMEOUT" envDefault:"5s"`
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	RateLimitRPS    int           `env:"RATE_LIMIT_RPS" envDefault:"10"`
	ContentFilter   bool          `env:"CONTENT_FILTER" optional:"true"`
	ScoringFile     string        `env:"SCORING_FILE" optional:"true"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:"," optional:"true"`
}

// LoadConfig parses environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	var config Config
	if err := env.Parse(&config.EnvVars); err != nil {
		return nil, err
	}
	return &config, nil
}

// HasSearchCredentials reports whether both Google CSE credentials are set.
func (c *Config) HasSearchCredentials() bool {
	return c.EnvVars.GoogleSearchKey != "" && c.EnvVars.GoogleSearchCX != ""
}

// CheckConfigEnvFields validates that all required EnvVars fields are set.
func (c *Config) CheckConfigEnvFields() error {
	return checkFieldsRecursive(reflect.ValueOf(c.EnvVars))
}

func checkFieldsRecursive(v reflect.Value) error {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := v.Type().Field(i)
		if fieldType.Tag.Get("optional") == "true" {
			continue
		}
		if field.IsZero() {
			return fmt.Errorf("$%s must be set", fieldType.Name)
		}
		if field.Kind() == reflect.Struct {
			if err := checkFieldsRecursive(field); err != nil {
				return err
			}
		}
	}
	return nil
}
