package settings

import (
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/huynhanx03/go-eventqueue/pkg/common/apperr"
)

const serviceName = "settings"

// CodeInvalidConfig is the apperr code for configuration errors.
const CodeInvalidConfig = 1100

const (
	defaultServerHost      = "127.0.0.1"
	defaultServerPort      = 8086
	defaultServerMode      = "release"
	defaultShutdownTimeout = 5
	defaultLogLevel        = "info"
	defaultRedisChannel    = "eventqueue.notifications"
	defaultKafkaTopic      = "eventqueue.notifications"
	defaultNatsSubject     = "eventqueue.notifications"
	defaultNatsName        = "eventqueued"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads a YAML config file, applies defaults and validates it.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.MapError(serviceName, err, CodeInvalidConfig, apperr.MsgLoadFailed, http.StatusInternalServerError)
	}
	return Parse(raw)
}

// Parse decodes YAML bytes, applies defaults and validates the result.
func Parse(raw []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, apperr.MapError(serviceName, err, CodeInvalidConfig, apperr.MsgLoadFailed, http.StatusBadRequest)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct tags and cross-field rules that tags cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return apperr.MapError(serviceName, err, CodeInvalidConfig, apperr.MsgInvalidConfig, http.StatusBadRequest)
	}

	seen := make(map[string]struct{})
	for _, q := range c.Queues {
		for _, name := range append([]string{q.Name}, q.Aliases...) {
			if _, dup := seen[name]; dup {
				return apperr.NewError(serviceName, CodeInvalidConfig, "duplicate queue name "+name, http.StatusBadRequest, nil)
			}
			seen[name] = struct{}{}
		}
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = defaultServerHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaultServerPort
	}
	if c.Server.Mode == "" {
		c.Server.Mode = defaultServerMode
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaultLogLevel
	}
	if c.Redis.Channel == "" {
		c.Redis.Channel = defaultRedisChannel
	}
	if c.Kafka.Topic == "" {
		c.Kafka.Topic = defaultKafkaTopic
	}
	if c.Nats.Subject == "" {
		c.Nats.Subject = defaultNatsSubject
	}
	if c.Nats.Name == "" {
		c.Nats.Name = defaultNatsName
	}
}
