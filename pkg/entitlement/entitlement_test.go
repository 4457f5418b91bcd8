package entitlement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/huynhanx03/go-eventqueue/pkg/settings"
)

func TestStaticPolicy_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		policy StaticPolicy
		level  Level
		want   Bounds
	}{
		{"default_standard", Default(), Standard, Bounds{DefaultMinCapacity, DefaultMaxCapacity}},
		{"default_entitled", Default(), Entitled, Bounds{DefaultMinCapacity, DefaultMaxCapacityEntitled}},
		{"unknown_level", Default(), Level(9), Bounds{DefaultMinCapacity, DefaultMaxCapacity}},
		{"max_below_min", StaticPolicy{MinCapacity: 64, MaxCapacity: 32, MaxCapacityEntitled: 16}, Entitled, Bounds{64, 64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.Bounds(tt.level))
		})
	}
}

func TestFromSettings(t *testing.T) {
	p := FromSettings(settings.Entitlement{MinCapacity: 1024})
	assert.Equal(t, uint32(1024), p.MinCapacity)
	assert.Equal(t, uint32(DefaultMaxCapacity), p.MaxCapacity)
	assert.Equal(t, uint32(DefaultMaxCapacityEntitled), p.MaxCapacityEntitled)
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "standard", Standard.String())
	assert.Equal(t, "entitled", Entitled.String())
	assert.Equal(t, "Level(5)", Level(5).String())
}
