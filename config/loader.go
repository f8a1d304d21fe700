package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPaths are searched when LoadAppConfig is called without paths.
var DefaultPaths = []string{"fiveoneone.yml", "config.yml"}

// LoadAppConfig loads, completes and validates the configuration. The first
// readable path wins; when none exists the zero configuration is used, so a
// bare environment variable is enough to run. A .env file in the working
// directory is loaded first and never overrides variables already set.
func LoadAppConfig(paths ...string) (AppConfig, error) {
	_ = godotenv.Load() // ignore missing file

	if len(paths) == 0 {
		paths = DefaultPaths
	}

	var cfg AppConfig
	for _, p := range paths {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return AppConfig{}, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse %s: %w", p, err)
		}
		break
	}

	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	cfg.Client.ApplyDefaults()
	if cfg.Output.Format == "" {
		cfg.Output.Format = "json"
	}
	return cfg, nil
}

// Validate checks struct tags on every section.
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg.Client); err != nil {
		return err
	}
	return v.Struct(cfg.Output)
}

// ApplyDefaults fills unset fields. The API key falls back to APIKeyEnv; an
// empty key is left as is and only surfaces as a 401 from the server.
func (c *ClientConfig) ApplyDefaults() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv(APIKeyEnv)
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(c.BaseURL, "/") {
		c.BaseURL += "/"
	}
	if c.ChunkSize <= 0 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.ConvertTimestamps == nil {
		enabled := true
		c.ConvertTimestamps = &enabled
	}
}
