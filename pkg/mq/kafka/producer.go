package kafka

import (
	"github.com/IBM/sarama"

	"github.com/huynhanx03/go-eventqueue/pkg/settings"
	"github.com/huynhanx03/go-eventqueue/pkg/utils"
)

const (
	defaultFlushFrequency  = 100 // Milliseconds
	defaultMaxMessageBytes = 1 << 20
	defaultTimeout         = 10 // Seconds
	defaultMaxRetries      = 3
	defaultRetryBackoff    = 100 // Milliseconds
)

// NewConfig builds a sarama producer configuration from settings.
// Errors are returned on the producer's Errors channel; successes are not.
func NewConfig(cfg settings.Kafka) *sarama.Config {
	c := sarama.NewConfig()
	c.ClientID = "eventqueue"

	c.Producer.RequiredAcks = sarama.WaitForLocal
	c.Producer.Compression = sarama.CompressionSnappy
	c.Producer.Partitioner = sarama.NewHashPartitioner
	c.Producer.Return.Errors = true
	c.Producer.Return.Successes = false

	c.Producer.Flush.Frequency = utils.ToDurationMs(orDefault(cfg.FlushFrequency, defaultFlushFrequency))
	c.Producer.Flush.Bytes = cfg.FlushBytes
	c.Producer.MaxMessageBytes = orDefault(cfg.MaxMessageBytes, defaultMaxMessageBytes)
	c.Producer.Timeout = utils.ToDuration(orDefault(cfg.Timeout, defaultTimeout))
	c.Producer.Retry.Max = orDefault(cfg.MaxRetries, defaultMaxRetries)
	c.Producer.Retry.Backoff = utils.ToDurationMs(orDefault(cfg.RetryBackoff, defaultRetryBackoff))

	return c
}

// NewAsyncProducer connects an asynchronous producer to the configured brokers.
func NewAsyncProducer(cfg settings.Kafka) (sarama.AsyncProducer, error) {
	return sarama.NewAsyncProducer(cfg.Brokers, NewConfig(cfg))
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
