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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
builder:
  base_url: "https://builder.example/api/"
  timeout: 3s
chain_id: "osmosis-1"
journal:
  directory: "data/bids"
nats:
  url: "nats://localhost:4222"
  subject_prefix: "searcher"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://builder.example/api/", cfg.Builder.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Builder.Timeout)
	assert.Equal(t, "osmosis-1", cfg.ChainID)
	assert.Equal(t, "data/bids", cfg.Journal.Directory)
	assert.Equal(t, DefaultJournalPrefix, cfg.Journal.Prefix)
	assert.Equal(t, "searcher", cfg.NATS.SubjectPrefix)
	assert.True(t, cfg.NATS.Enabled())
	assert.True(t, cfg.Journal.Enabled())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "builder:\n  base_url: http://127.0.0.1:8080\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultTimeout, cfg.Builder.Timeout)
	assert.Equal(t, DefaultSubjectPrefix, cfg.NATS.SubjectPrefix)
	assert.False(t, cfg.NATS.Enabled())
	assert.False(t, cfg.Journal.Enabled())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing base url", "chain_id: osmosis-1\n"},
		{"relative base url", "builder:\n  base_url: not a url\n"},
		{"negative timeout", "builder:\n  base_url: http://x\n  timeout: -1s\n"},
		{"bad yaml", "builder: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
