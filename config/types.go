package config

import "time"

const (
	// APIKeyEnv supplies the API key when none is configured explicitly.
	APIKeyEnv = "FIVEONEONE_API_KEY"

	DefaultBaseURL   = "http://api.511.org/"
	DefaultChunkSize = 8192
)

// ClientConfig configures a fiveoneone.Client.
type ClientConfig struct {
	APIKey           string `yaml:"apiKey"`
	BaseURL          string `yaml:"baseURL" validate:"omitempty,url"`
	ChunkSize        int    `yaml:"chunkSize" validate:"gte=0"`
	ConnectTimeoutMS int    `yaml:"connectTimeoutMS" validate:"gte=0"`
	ReadTimeoutMS    int    `yaml:"readTimeoutMS" validate:"gte=0"`
	// nil means enabled
	ConvertTimestamps *bool `yaml:"convertTimestamps"`
}

// OutputConfig controls how the CLI renders results.
type OutputConfig struct {
	Format string `yaml:"format" validate:"omitempty,oneof=json csv"`
	Indent bool   `yaml:"indent"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Client ClientConfig `yaml:"client"`
	Output OutputConfig `yaml:"output"`
}

func (c ClientConfig) ConnectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeoutMS) * time.Millisecond
}

func (c ClientConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutMS) * time.Millisecond
}

// TimestampConversion reports whether decoded feeds get ISO8601 timestamps.
func (c ClientConfig) TimestampConversion() bool {
	return c.ConvertTimestamps == nil || *c.ConvertTimestamps
}
