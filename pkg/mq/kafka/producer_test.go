package kafka

import (
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhanx03/go-eventqueue/pkg/settings"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := NewConfig(settings.Kafka{})
		require.NoError(t, c.Validate())
		assert.Equal(t, 100*time.Millisecond, c.Producer.Flush.Frequency)
		assert.Equal(t, defaultMaxRetries, c.Producer.Retry.Max)
		assert.True(t, c.Producer.Return.Errors)
		assert.Equal(t, sarama.WaitForLocal, c.Producer.RequiredAcks)
	})

	t.Run("overrides", func(t *testing.T) {
		c := NewConfig(settings.Kafka{
			FlushFrequency:  250,
			FlushBytes:      4096,
			MaxMessageBytes: 2048,
			Timeout:         3,
			MaxRetries:      7,
			RetryBackoff:    50,
		})
		require.NoError(t, c.Validate())
		assert.Equal(t, 250*time.Millisecond, c.Producer.Flush.Frequency)
		assert.Equal(t, 4096, c.Producer.Flush.Bytes)
		assert.Equal(t, 2048, c.Producer.MaxMessageBytes)
		assert.Equal(t, 3*time.Second, c.Producer.Timeout)
		assert.Equal(t, 7, c.Producer.Retry.Max)
		assert.Equal(t, 50*time.Millisecond, c.Producer.Retry.Backoff)
	})
}
