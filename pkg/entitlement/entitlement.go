// Package entitlement supplies the capacity bounds a caller may request for a
// shared event queue, based on its privilege level.
package entitlement

import (
	"fmt"

	"github.com/huynhanx03/go-eventqueue/pkg/settings"
)

// Level is the privilege level of the queue's consumer.
type Level int

const (
	// Standard consumers get the default ceiling.
	Standard Level = iota
	// Entitled consumers hold the extended-capacity entitlement.
	Entitled
)

func (l Level) String() string {
	switch l {
	case Standard:
		return "standard"
	case Entitled:
		return "entitled"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Default byte bounds.
const (
	DefaultMinCapacity         = 16 * 1024
	DefaultMaxCapacity         = 128 * 1024
	DefaultMaxCapacityEntitled = 3 * 1024 * 1024
)

// Bounds is the closed byte range a queue's capacity is clamped to.
type Bounds struct {
	Min uint32
	Max uint32
}

// Policy returns capacity bounds for a privilege level.
type Policy interface {
	Bounds(level Level) Bounds
}

// StaticPolicy is a Policy with fixed values.
type StaticPolicy struct {
	MinCapacity         uint32
	MaxCapacity         uint32
	MaxCapacityEntitled uint32
}

var _ Policy = StaticPolicy{}

// Default returns the built-in policy.
func Default() StaticPolicy {
	return StaticPolicy{
		MinCapacity:         DefaultMinCapacity,
		MaxCapacity:         DefaultMaxCapacity,
		MaxCapacityEntitled: DefaultMaxCapacityEntitled,
	}
}

// FromSettings builds a policy from configuration, falling back to the
// defaults for unset fields.
func FromSettings(cfg settings.Entitlement) StaticPolicy {
	p := Default()
	if cfg.MinCapacity > 0 {
		p.MinCapacity = cfg.MinCapacity
	}
	if cfg.MaxCapacity > 0 {
		p.MaxCapacity = cfg.MaxCapacity
	}
	if cfg.MaxCapacityEntitled > 0 {
		p.MaxCapacityEntitled = cfg.MaxCapacityEntitled
	}
	return p
}

// Bounds implements Policy. Max is never below Min; an unknown level gets the
// standard ceiling.
func (p StaticPolicy) Bounds(level Level) Bounds {
	max := p.MaxCapacity
	if level == Entitled {
		max = p.MaxCapacityEntitled
	}
	if max < p.MinCapacity {
		max = p.MinCapacity
	}
	return Bounds{Min: p.MinCapacity, Max: max}
}
