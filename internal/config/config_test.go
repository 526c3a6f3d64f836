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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  url: https://rss.example.com
  username: alice
  password: secret
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://rss.example.com", cfg.Server.URL)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 3, cfg.Server.Retry.MaxAttempts)
	assert.Equal(t, "ttrss.db", cfg.Database.Path)
	assert.Equal(t, 15*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 5*time.Minute, cfg.Sync.PassTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Sync.RefreshInterval)
	assert.Equal(t, 5*time.Minute, cfg.Sync.CountersInterval)
	assert.Equal(t, 24*time.Hour, cfg.Sync.FreshWindow)
	assert.Equal(t, int64(1000), cfg.Sync.ArticleLimit)
	assert.Equal(t, "All Articles", cfg.Sync.VirtualTitles.All)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.RabbitMQ.Enabled)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("TTRSS_PASSWORD", "from-env")
	path := writeConfig(t, `
server:
  url: https://rss.example.com
  username: alice
  password: ${TTRSS_PASSWORD}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Server.Password)
}

func TestLoad_CountersIntervalFollowsRefresh(t *testing.T) {
	path := writeConfig(t, `
server:
  url: https://rss.example.com
sync:
  refresh_interval: 30m
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.Sync.CountersInterval)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
