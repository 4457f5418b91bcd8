package redis

import (
	"fmt"

	"github.com/huynhanx03/go-eventqueue/pkg/settings"
)

// NewConnection creates and returns a new Redis client
func NewConnection(cfg *settings.Redis) (*Engine, error) {
	engine := &Engine{
		config: cfg,
	}

	if err := engine.connect(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	return engine, nil
}
