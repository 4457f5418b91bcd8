package notify

import (
	"context"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// KafkaSink hands notices to a sarama AsyncProducer, keyed by queue name so
// notices for one queue stay ordered within a partition.
type KafkaSink struct {
	producer sarama.AsyncProducer
	topic    string
}

var _ Sink = (*KafkaSink)(nil)

// NewKafkaSink returns a sink producing to topic.
func NewKafkaSink(producer sarama.AsyncProducer, topic string) *KafkaSink {
	return &KafkaSink{producer: producer, topic: topic}
}

// Deliver implements Sink. It blocks only while the producer's input is full.
func (s *KafkaSink) Deliver(ctx context.Context, n Notice, payload []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(n.Queue),
		Value: sarama.ByteEncoder(payload),
	}

	select {
	case s.producer.Input() <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DrainErrors logs producer errors until the producer is closed.
func (s *KafkaSink) DrainErrors(log *zap.Logger) {
	for err := range s.producer.Errors() {
		log.Warn("kafka produce failed", zap.String("topic", s.topic), zap.Error(err.Err))
	}
}

// NewKafkaPublisher wires a KafkaSink behind an Async publisher.
func NewKafkaPublisher(producer sarama.AsyncProducer, topic string, opts ...AsyncOption) (*Async, *KafkaSink) {
	sink := NewKafkaSink(producer, topic)
	return NewAsync("kafka", sink, opts...), sink
}
