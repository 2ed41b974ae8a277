package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "maestro.yaml"), []byte(content), 0o600))
	return dir
}

func TestInitialize(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Initialize(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "localhost:50051", cfg.LLM.Addr)
		assert.Equal(t, 100, cfg.Orchestrator.QueueSize)
		assert.Equal(t, 24*time.Hour, cfg.Retention.OperationalTTL)
	})

	t.Run("partial file merges over defaults", func(t *testing.T) {
		dir := writeConfig(t, `
server:
  port: 9090
distributed:
  stale_after: 10m
`)
		cfg, err := Initialize(dir)
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, 10*time.Minute, cfg.Distributed.StaleAfter)
		// Untouched sections keep their defaults.
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Equal(t, 100, cfg.Monitor.BufferSize)
	})

	t.Run("environment variables expand", func(t *testing.T) {
		t.Setenv("MAESTRO_LLM_ADDR", "llm.internal:50051")
		dir := writeConfig(t, `
llm:
  addr: "{{.MAESTRO_LLM_ADDR}}"
`)
		cfg, err := Initialize(dir)
		require.NoError(t, err)
		assert.Equal(t, "llm.internal:50051", cfg.LLM.Addr)
	})

	t.Run("invalid port is rejected", func(t *testing.T) {
		dir := writeConfig(t, "server:\n  port: 70000\n")
		_, err := Initialize(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.port")
	})

	t.Run("malformed yaml is rejected", func(t *testing.T) {
		dir := writeConfig(t, "server: [not a map\n")
		_, err := Initialize(dir)
		require.Error(t, err)
	})
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("EXPAND_TEST_VALUE", "abc")

	t.Run("expands known variables", func(t *testing.T) {
		out := ExpandEnv([]byte("value: {{.EXPAND_TEST_VALUE}}"))
		assert.Equal(t, "value: abc", string(out))
	})

	t.Run("missing variables become empty", func(t *testing.T) {
		out := ExpandEnv([]byte("value: {{.NO_SUCH_VARIABLE_SET}}"))
		assert.Equal(t, "value: ", string(out))
	})

	t.Run("dollar signs pass through", func(t *testing.T) {
		out := ExpandEnv([]byte(`pattern: "^secret.*$"`))
		assert.Equal(t, `pattern: "^secret.*$"`, string(out))
	})
}
