package notify

import (
	"context"
)

// SubjectPublisher is the subset of a NATS connection used to publish notices.
type SubjectPublisher interface {
	Publish(subject string, data []byte) error
}

// NatsSink publishes each notice as JSON on a NATS subject.
type NatsSink struct {
	pub     SubjectPublisher
	subject string
}

var _ Sink = (*NatsSink)(nil)

// NewNatsSink returns a sink publishing on subject.
func NewNatsSink(pub SubjectPublisher, subject string) *NatsSink {
	return &NatsSink{pub: pub, subject: subject}
}

// Deliver implements Sink. Publish only buffers in the client, so ctx is not
// consulted.
func (s *NatsSink) Deliver(_ context.Context, _ Notice, payload []byte) error {
	return s.pub.Publish(s.subject, payload)
}

// NewNatsPublisher wires a NatsSink behind an Async publisher.
func NewNatsPublisher(pub SubjectPublisher, subject string, opts ...AsyncOption) *Async {
	return NewAsync("nats", NewNatsSink(pub, subject), opts...)
}
