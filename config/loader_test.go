package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

// TestLoadAppConfig_FromFile tests loading a complete config file
func TestLoadAppConfig_FromFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(APIKeyEnv, "from-env")

	p := writeFile(t, ".", "custom.yml", `
client:
  apiKey: from-file
  baseURL: https://example.test/api
  chunkSize: 1024
  connectTimeoutMS: 2000
  readTimeoutMS: 5000
  convertTimestamps: false
output:
  format: csv
  indent: true
`)

	cfg, err := LoadAppConfig(p)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Client.APIKey, "explicit key wins over the environment")
	assert.Equal(t, "https://example.test/api/", cfg.Client.BaseURL)
	assert.Equal(t, 1024, cfg.Client.ChunkSize)
	assert.Equal(t, "2s", cfg.Client.ConnectTimeout().String())
	assert.Equal(t, "5s", cfg.Client.ReadTimeout().String())
	assert.False(t, cfg.Client.TimestampConversion())
	assert.Equal(t, "csv", cfg.Output.Format)
	assert.True(t, cfg.Output.Indent)
}

// TestLoadAppConfig_MissingFileUsesDefaults tests the zero-config path
func TestLoadAppConfig_MissingFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(APIKeyEnv, "env-key")

	cfg, err := LoadAppConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Client.APIKey)
	assert.Equal(t, DefaultBaseURL, cfg.Client.BaseURL)
	assert.Equal(t, DefaultChunkSize, cfg.Client.ChunkSize)
	assert.True(t, cfg.Client.TimestampConversion())
	assert.Equal(t, "json", cfg.Output.Format)
}

// TestLoadAppConfig_DotEnv tests that .env supplies the key without overriding the environment
func TestLoadAppConfig_DotEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(APIKeyEnv, "")
	os.Unsetenv(APIKeyEnv)
	writeFile(t, ".", ".env", APIKeyEnv+"=dotenv-key\n")

	cfg, err := LoadAppConfig()
	require.NoError(t, err)
	assert.Equal(t, "dotenv-key", cfg.Client.APIKey)
}

// TestLoadAppConfig_InvalidYAML tests error handling for invalid YAML
func TestLoadAppConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "config.yml", "invalid: yaml: content: [[[")

	_, err := LoadAppConfig(p)
	assert.Error(t, err)
}

// TestLoadAppConfig_ValidationFailure tests struct tag validation
func TestLoadAppConfig_ValidationFailure(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"bad url":        "client:\n  baseURL: not a url\n",
		"negative chunk": "client:\n  chunkSize: -1\n",
		"bad format":     "output:\n  format: xml\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			p := writeFile(t, dir, "config.yml", content)
			_, err := LoadAppConfig(p)
			assert.Error(t, err)
		})
	}
}

// TestLoadAppConfig_EmptyFile tests handling of an empty config file
func TestLoadAppConfig_EmptyFile(t *testing.T) {
	chdir(t, t.TempDir())
	p := writeFile(t, ".", "config.yml", "")

	cfg, err := LoadAppConfig(p)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.Client.BaseURL)
}

func TestApplyDefaults_EmptyKeyNotRejected(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	var c ClientConfig
	c.ApplyDefaults()
	assert.Empty(t, c.APIKey)
	assert.Equal(t, DefaultBaseURL, c.BaseURL)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			panic("testing: chdir back to " + old + ": " + err.Error())
		}
	})
}
