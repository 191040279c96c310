package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/gophsocial/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-s string   storage backend: sqlite, redis or memory
//	-d string   data directory for the SQLite file
//	-r string   redis address (host:port)
//	-l string   log level: debug, info, warn, error
//
// Only these flags are looked at; see flagx.FilterArgs.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend (sqlite, redis, memory)")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
