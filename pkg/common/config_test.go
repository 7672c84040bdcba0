package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
llmProvider: anthropic
responseRetryCount: 5
llmTemperature: 0.4
llmMaxTokens: 1
llmResponseTimeout: 1500
logDebug: true
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "anthropic", config.GetString("llmProvider"))
	assert.Equal(t, "openai", config.GetStringOrDefault("missing", "openai"))
	assert.Equal(t, 5, config.GetIntOrDefault("responseRetryCount", 3))
	assert.Equal(t, 3, config.GetIntOrDefault("llmProvider", 3))
	assert.InDelta(t, 0.4, config.GetFloatOrDefault("llmTemperature", 0.7), 1e-9)
	assert.InDelta(t, 1.0, config.GetFloatOrDefault("llmMaxTokens", 0.7), 1e-9)
	assert.Equal(t, 1500*time.Millisecond, config.GetDurationOrDefault("llmResponseTimeout", time.Minute))
	assert.Equal(t, time.Minute, config.GetDurationOrDefault("missing", time.Minute))
	assert.True(t, config.GetBoolOrDefault("logDebug", false))
	assert.False(t, config.GetBoolOrDefault("llmProvider", false))
}

func TestLoadConfigOrEmpty(t *testing.T) {
	config, err := LoadConfigOrEmpty(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "fallback", config.GetStringOrDefault("anything", "fallback"))

	_, err = LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: [b"), 0644))

	_, err := LoadConfigOrEmpty(path)
	assert.Error(t, err)
}

func TestGetStringOrEnv(t *testing.T) {
	t.Setenv("MUSE_TEST_KEY", "from-env")

	config := NewConfig(map[string]any{"apiKey": "from-config"})
	assert.Equal(t, "from-config", config.GetStringOrEnv("apiKey", "MUSE_TEST_KEY"))
	assert.Equal(t, "from-env", config.GetStringOrEnv("otherKey", "MUSE_TEST_KEY"))
}
