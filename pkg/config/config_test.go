package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	pkgerrors "github.com/gopu-inc/initpkg/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultHTTPTimeout, cfg.Settings.HTTPTimeout)
	assert.Equal(t, "info", cfg.Settings.LogLevel)
	assert.Equal(t, "text", cfg.Settings.OutputFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromReader(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "full config",
			yaml: `settings:
  http_timeout: 5s
  log_level: debug
  output_format: json
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 5*time.Second, cfg.Settings.HTTPTimeout)
				assert.Equal(t, "debug", cfg.Settings.LogLevel)
				assert.Equal(t, "json", cfg.Settings.OutputFormat)
			},
		},
		{
			name: "partial config gets defaults",
			yaml: `settings:
  log_level: warn
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultHTTPTimeout, cfg.Settings.HTTPTimeout)
				assert.Equal(t, "warn", cfg.Settings.LogLevel)
				assert.Equal(t, "text", cfg.Settings.OutputFormat)
			},
		},
		{
			name:    "malformed yaml",
			yaml:    "settings: [not a mapping",
			wantErr: true,
		},
		{
			name: "invalid log level",
			yaml: `settings:
  log_level: loud
`,
			wantErr: true,
		},
		{
			name: "invalid output format",
			yaml: `settings:
  output_format: xml
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfigFromReader(strings.NewReader(tt.yaml))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, pkgerrors.ErrConfigParse))
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Settings.HTTPTimeout = 7 * time.Second
	cfg.Settings.LogLevel = "debug"
	require.NoError(t, cfg.SaveConfig(path))

	// No temp file left behind.
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
