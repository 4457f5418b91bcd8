package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhanx03/go-eventqueue/pkg/common/apperr"
)

const sampleConfig = `
server:
  port: 9090
logger:
  log_level: debug
entitlement:
  min_capacity: 4096
queues:
  - name: keyboard
    entries: 5
    entry_size: 16
    start: true
    aliases: [hid/keyboard, input/0]
  - name: pointer
    capacity: 65536
    entitled: true
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, defaultServerHost, cfg.Server.Host)
	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, uint32(4096), cfg.Entitlement.MinCapacity)
	assert.Equal(t, defaultRedisChannel, cfg.Redis.Channel)
	assert.Equal(t, defaultNatsSubject, cfg.Nats.Subject)
	assert.Equal(t, defaultNatsName, cfg.Nats.Name)

	require.Len(t, cfg.Queues, 2)
	assert.Equal(t, uint32(5), cfg.Queues[0].Entries)
	assert.Equal(t, uint32(16), cfg.Queues[0].EntrySize)
	assert.Equal(t, []string{"hid/keyboard", "input/0"}, cfg.Queues[0].Aliases)
	assert.True(t, cfg.Queues[1].Entitled)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad_yaml", "queues: [\n"},
		{"missing_name", "queues:\n  - capacity: 10\n"},
		{"capacity_and_entries", "queues:\n  - name: a\n    capacity: 10\n    entries: 2\n    entry_size: 4\n"},
		{"entries_without_size", "queues:\n  - name: a\n    entries: 2\n"},
		{"duplicate_alias", "queues:\n  - name: a\n  - name: b\n    aliases: [a]\n"},
		{"bad_log_level", "logger:\n  log_level: loud\n"},
		{"redis_without_host", "redis:\n  enabled: true\n"},
		{"nats_without_url", "nats:\n  enabled: true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Equal(t, CodeInvalidConfig, apperr.CodeOf(err))
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Queues, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_ShippedConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "config.yaml"))
	require.NoError(t, err)
	assert.Len(t, cfg.Queues, 3)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.Kafka.Enabled)
	assert.False(t, cfg.Nats.Enabled)
}
