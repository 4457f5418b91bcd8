package notify

import (
	"context"
)

// Publisher is the subset of a Redis client used to publish notices.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// RedisSink publishes each notice as JSON on a Redis pub/sub channel.
type RedisSink struct {
	pub     Publisher
	channel string
}

var _ Sink = (*RedisSink)(nil)

// NewRedisSink returns a sink publishing on channel.
func NewRedisSink(pub Publisher, channel string) *RedisSink {
	return &RedisSink{pub: pub, channel: channel}
}

// Deliver implements Sink.
func (s *RedisSink) Deliver(ctx context.Context, _ Notice, payload []byte) error {
	return s.pub.Publish(ctx, s.channel, payload)
}

// NewRedisPublisher wires a RedisSink behind an Async publisher.
func NewRedisPublisher(pub Publisher, channel string, opts ...AsyncOption) *Async {
	return NewAsync("redis", NewRedisSink(pub, channel), opts...)
}
