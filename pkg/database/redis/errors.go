package redis

import "errors"

var (
	ErrConnectionFailed = errors.New("redis: connection failed")
	ErrPingFailed       = errors.New("redis: ping failed")
)
