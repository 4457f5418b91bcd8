package nats

import (
	"testing"
	"time"

	natsio "github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhanx03/go-eventqueue/pkg/settings"
)

func TestOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		o := natsio.GetDefaultOptions()
		for _, opt := range Options(settings.Nats{Name: "eventqueued"}, nil) {
			require.NoError(t, opt(&o))
		}
		assert.Equal(t, "eventqueued", o.Name)
		assert.Equal(t, defaultMaxReconnects, o.MaxReconnect)
		assert.Equal(t, 2*time.Second, o.ReconnectWait)
		assert.Equal(t, 5*time.Second, o.Timeout)
		assert.Empty(t, o.Token)
	})

	t.Run("overrides", func(t *testing.T) {
		o := natsio.GetDefaultOptions()
		cfg := settings.Nats{MaxReconnects: 3, ReconnectWait: 250, Timeout: 1, Token: "secret"}
		for _, opt := range Options(cfg, nil) {
			require.NoError(t, opt(&o))
		}
		assert.Equal(t, 3, o.MaxReconnect)
		assert.Equal(t, 250*time.Millisecond, o.ReconnectWait)
		assert.Equal(t, time.Second, o.Timeout)
		assert.Equal(t, "secret", o.Token)
	})
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect(settings.Nats{URL: "nats://127.0.0.1:1", Timeout: 1}, nil)
	assert.Error(t, err)
}
