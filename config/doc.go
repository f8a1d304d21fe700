// Package config handles client configuration loading and validation.
//
// Configuration is read from an optional YAML file, then completed from the
// environment (FIVEONEONE_API_KEY, also picked up from a .env file) and
// validated using struct tags.
package config
