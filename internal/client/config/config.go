package config

import "time"

// Storage backends understood by storage.Open.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds runtime settings for the gophsocial client.
//
// Delays stand in for network latency of the operations that would talk to
// a backend in a real deployment.
type Config struct {
	StorageBackend string
	DataDir        string
	DatabaseFile   string

	RedisAddr     string
	RedisPassword string
	RedisPrefix   string

	LoginDelay    time.Duration
	RegisterDelay time.Duration
	PostDelay     time.Duration
	FeedDelay     time.Duration

	DemoUserName string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageBackend = BackendSQLite
	c.DataDir = ".gophsocial"
	c.DatabaseFile = "storage.db"

	c.RedisAddr = ""
	c.RedisPassword = ""
	c.RedisPrefix = "gophsocial:"

	c.LoginDelay = 1000 * time.Millisecond
	c.RegisterDelay = 1500 * time.Millisecond
	c.PostDelay = 1000 * time.Millisecond
	c.FeedDelay = 500 * time.Millisecond

	c.DemoUserName = "Amr Mahmoud"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
