package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileIsEmptyConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "site2c.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site2c.yaml")
	content := `
source: ./dist
output: firmware/web
target: espidf
author: Jane Doe
exclude:
  - "**/*.map"
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./dist", cfg.Source)
	assert.Equal(t, "firmware/web", cfg.Output)
	assert.Equal(t, TargetEspidf, cfg.Target)
	assert.Equal(t, "Jane Doe", cfg.Author)
	assert.Equal(t, []string{"**/*.map"}, cfg.Exclude)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site2c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Source: "./dist"}
	ApplyDefaults(cfg)

	assert.Equal(t, "lib", cfg.Output)
	assert.Equal(t, TargetArduino, cfg.Target)
	assert.Equal(t, "site2c users", cfg.Author)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Source:  "./dist",
		Output:  "web",
		Target:  TargetEspidf,
		Author:  "Jane Doe",
		Logging: LoggingConfig{Level: "warn"},
	}
	ApplyDefaults(cfg)

	assert.Equal(t, "web", cfg.Output)
	assert.Equal(t, TargetEspidf, cfg.Target)
	assert.Equal(t, "Jane Doe", cfg.Author)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	valid := &Config{Source: "./dist", Target: TargetArduino}
	assert.NoError(t, Validate(valid))

	missingSource := &Config{Target: TargetArduino}
	assert.ErrorContains(t, Validate(missingSource), "source directory is required")

	badTarget := &Config{Source: "./dist", Target: "zephyr"}
	assert.ErrorContains(t, Validate(badTarget), "invalid target")

	badPattern := &Config{Source: "./dist", Target: TargetArduino, Exclude: []string{"[unclosed"}}
	assert.ErrorContains(t, Validate(badPattern), "invalid exclude pattern")

	badLevel := &Config{Source: "./dist", Target: TargetArduino, Logging: LoggingConfig{Level: "verbose"}}
	assert.ErrorContains(t, Validate(badLevel), "invalid logging level")
}
