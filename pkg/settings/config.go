package settings

type Config struct {
	Server      Server      `mapstructure:"server" yaml:"server"`
	Logger      Logger      `mapstructure:"logger" yaml:"logger"`
	Redis       Redis       `mapstructure:"redis" yaml:"redis"`
	Kafka       Kafka       `mapstructure:"kafka" yaml:"kafka"`
	Nats        Nats        `mapstructure:"nats" yaml:"nats"`
	Entitlement Entitlement `mapstructure:"entitlement" yaml:"entitlement"`
	Queues      []Queue     `mapstructure:"queues" yaml:"queues" validate:"dive"`
}

// Server is the configuration for the introspection server
type Server struct {
	Mode            string `mapstructure:"mode" yaml:"mode" validate:"omitempty,oneof=debug release test"`
	Host            string `mapstructure:"host" yaml:"host"`
	Port            int    `mapstructure:"port" yaml:"port" validate:"gte=0,lte=65535"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"` // Seconds
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name" yaml:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// Redis is the configuration for the Redis notification publisher
type Redis struct {
	Enabled         bool   `mapstructure:"enabled" yaml:"enabled"`
	Host            string `mapstructure:"host" yaml:"host" validate:"required_if=Enabled true"`
	Port            int    `mapstructure:"port" yaml:"port"`
	Password        string `mapstructure:"password" yaml:"password"`
	Database        int    `mapstructure:"database" yaml:"database"`
	Channel         string `mapstructure:"channel" yaml:"channel"`
	PoolSize        int    `mapstructure:"pool_size" yaml:"pool_size"`
	MinIdleConns    int    `mapstructure:"min_idle_conns" yaml:"min_idle_conns"`
	PoolTimeout     int    `mapstructure:"pool_timeout" yaml:"pool_timeout"`
	DialTimeout     int    `mapstructure:"dial_timeout" yaml:"dial_timeout"`
	ReadTimeout     int    `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout" yaml:"write_timeout"`
	MaxRetries      int    `mapstructure:"max_retries" yaml:"max_retries"`
	MaxRetryBackoff int    `mapstructure:"max_retry_backoff" yaml:"max_retry_backoff"`
	MinRetryBackoff int    `mapstructure:"min_retry_backoff" yaml:"min_retry_backoff"`
}

// Kafka is the configuration for the Kafka notification publisher
type Kafka struct {
	Enabled         bool     `mapstructure:"enabled" yaml:"enabled"`
	Brokers         []string `mapstructure:"brokers" yaml:"brokers" validate:"required_if=Enabled true"`
	Topic           string   `mapstructure:"topic" yaml:"topic"`
	FlushFrequency  int      `mapstructure:"flush_frequency" yaml:"flush_frequency"`     // Milliseconds
	FlushBytes      int      `mapstructure:"flush_bytes" yaml:"flush_bytes"`             // Bytes
	MaxMessageBytes int      `mapstructure:"max_message_bytes" yaml:"max_message_bytes"` // Bytes
	Timeout         int      `mapstructure:"timeout" yaml:"timeout"`                     // Seconds
	MaxRetries      int      `mapstructure:"max_retries" yaml:"max_retries"`             // Number of retries
	RetryBackoff    int      `mapstructure:"retry_backoff" yaml:"retry_backoff"`         // Milliseconds
}

// Nats is the configuration for the NATS notification publisher
type Nats struct {
	Enabled       bool   `mapstructure:"enabled" yaml:"enabled"`
	URL           string `mapstructure:"url" yaml:"url" validate:"required_if=Enabled true"`
	Subject       string `mapstructure:"subject" yaml:"subject"`
	Name          string `mapstructure:"name" yaml:"name"`
	Token         string `mapstructure:"token" yaml:"token"`
	MaxReconnects int    `mapstructure:"max_reconnects" yaml:"max_reconnects"`
	ReconnectWait int    `mapstructure:"reconnect_wait" yaml:"reconnect_wait"` // Milliseconds
	Timeout       int    `mapstructure:"timeout" yaml:"timeout"`               // Seconds
}

// Entitlement holds the byte bounds applied to queue capacities
type Entitlement struct {
	MinCapacity         uint32 `mapstructure:"min_capacity" yaml:"min_capacity"`
	MaxCapacity         uint32 `mapstructure:"max_capacity" yaml:"max_capacity"`
	MaxCapacityEntitled uint32 `mapstructure:"max_capacity_entitled" yaml:"max_capacity_entitled"`
}

// Queue describes one named event queue. Either Capacity or Entries and
// EntrySize is set, not both.
type Queue struct {
	Name      string   `mapstructure:"name" yaml:"name" validate:"required"`
	Capacity  uint32   `mapstructure:"capacity" yaml:"capacity" validate:"excluded_with=Entries"`
	Entries   uint32   `mapstructure:"entries" yaml:"entries" validate:"required_with=EntrySize"`
	EntrySize uint32   `mapstructure:"entry_size" yaml:"entry_size" validate:"required_with=Entries"`
	Entitled  bool     `mapstructure:"entitled" yaml:"entitled"`
	Start     bool     `mapstructure:"start" yaml:"start"`
	Aliases   []string `mapstructure:"aliases" yaml:"aliases" validate:"dive,required"`
}
