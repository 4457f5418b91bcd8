package nats

import (
	natsio "github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-eventqueue/pkg/settings"
	"github.com/huynhanx03/go-eventqueue/pkg/utils"
)

const (
	defaultMaxReconnects = 60
	defaultReconnectWait = 2000 // Milliseconds
	defaultTimeout       = 5    // Seconds
)

// Options builds connection options from settings. Connection state changes
// are logged on log.
func Options(cfg settings.Nats, log *zap.Logger) []natsio.Option {
	if log == nil {
		log = zap.NewNop()
	}

	opts := []natsio.Option{
		natsio.Name(cfg.Name),
		natsio.MaxReconnects(orDefault(cfg.MaxReconnects, defaultMaxReconnects)),
		natsio.ReconnectWait(utils.ToDurationMs(orDefault(cfg.ReconnectWait, defaultReconnectWait))),
		natsio.Timeout(utils.ToDuration(orDefault(cfg.Timeout, defaultTimeout))),
		natsio.DisconnectErrHandler(func(_ *natsio.Conn, err error) {
			log.Warn("nats disconnected", zap.Error(err))
		}),
		natsio.ReconnectHandler(func(c *natsio.Conn) {
			log.Info("nats reconnected", zap.String("url", c.ConnectedUrl()))
		}),
	}
	if cfg.Token != "" {
		opts = append(opts, natsio.Token(cfg.Token))
	}
	return opts
}

// Connect dials the configured server.
func Connect(cfg settings.Nats, log *zap.Logger) (*natsio.Conn, error) {
	return natsio.Connect(cfg.URL, Options(cfg, log)...)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
