package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfigFile(t *testing.T, dir, name string, contents interface{}) {
	t.Helper()
	data, err := yaml.Marshal(contents)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
}

func TestNewConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "meta.yaml", map[string]interface{}{
		"files": []string{"base.yaml", "local.yaml"},
	})
	writeConfigFile(t, dir, "base.yaml", map[string]interface{}{
		"jsonrpc": map[string]string{"address": "127.0.0.1:27542"},
		"logging": map[string]interface{}{"level": "info"},
	})
	// local.yaml intentionally absent; optional overlays are skipped.

	t.Setenv("EXTHOST_CONFIG_DIR", dir)

	provider, err := NewConfig()
	require.NoError(t, err)

	var address string
	require.NoError(t, provider.Get("jsonrpc.address").Populate(&address))
	assert.Equal(t, "127.0.0.1:27542", address)
}

func TestNewConfigShippedFiles(t *testing.T) {
	t.Setenv("EXTHOST_CONFIG_DIR", "../../config")

	tests := []struct {
		name         string
		env          string
		wantLevel    string
		wantEncoding string
	}{
		{
			name:         "default environment overlay",
			wantLevel:    "info",
			wantEncoding: "console",
		},
		{
			name:         "development overlay",
			env:          "development",
			wantLevel:    "debug",
			wantEncoding: "console",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("EXTHOST_ENVIRONMENT", tt.env)
			}

			provider, err := NewConfig()
			require.NoError(t, err)

			var logging LoggingConfig
			require.NoError(t, provider.Get("logging").Populate(&logging))
			assert.Equal(t, tt.wantLevel, logging.Level)
			assert.Equal(t, tt.wantEncoding, logging.Encoding)

			var maxFileSizeBytes int64
			require.NoError(t, provider.Get("maxFileSizeBytes").Populate(&maxFileSizeBytes))
			assert.NotZero(t, maxFileSizeBytes)
		})
	}
}

func TestNewConfigMissingMeta(t *testing.T) {
	t.Setenv("EXTHOST_CONFIG_DIR", t.TempDir())

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestNewConfigNoValidFiles(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "meta.yaml", map[string]interface{}{
		"files": []string{"missing.yaml"},
	})
	t.Setenv("EXTHOST_CONFIG_DIR", dir)

	_, err := NewConfig()
	assert.Error(t, err)
}
